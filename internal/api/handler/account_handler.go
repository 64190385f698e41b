package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Maleklabbaci/DARI-WEBSITE-sub000/internal/core/domain"
	"github.com/Maleklabbaci/DARI-WEBSITE-sub000/internal/core/ports"
)

// AccountHandler serves the profile, wallet, favorites and alert endpoints.
type AccountHandler struct {
	wallet        ports.WalletService
	sessions      ports.SessionStore
	notifications ports.NotificationStore
}

func NewAccountHandler(wallet ports.WalletService, sessions ports.SessionStore, notifications ports.NotificationStore) *AccountHandler {
	return &AccountHandler{wallet: wallet, sessions: sessions, notifications: notifications}
}

// Me returns the account record plus the derived session counters.
//
// @Summary      Current account
// @Tags         account
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  meResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/me [get]
func (h *AccountHandler) Me(c echo.Context) error {
	accountID, err := ctxAccountID(c)
	if err != nil {
		return err
	}

	account, session, err := h.wallet.Me(c.Request().Context(), accountID)
	if err != nil {
		return err
	}
	locale, err := h.sessions.GetLocale(c.Request().Context(), accountID)
	if err != nil {
		return err
	}
	if locale == "" {
		locale, _ = c.Get("locale").(string)
	}

	return c.JSON(http.StatusOK, meResponse{
		User:            account,
		BoostsRemaining: session.BoostsRemaining,
		PhoneUnlocks:    session.PhoneUnlocksUsed,
		Locale:          locale,
	})
}

// Patch shallow-merges profile fields into the account.
//
// @Summary      Update profile
// @Tags         account
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      patchProfileRequest  true  "Fields to merge"
// @Success      200   {object}  domain.Account
// @Failure      400   {object}  map[string]string
// @Router       /v1/me [patch]
func (h *AccountHandler) Patch(c echo.Context) error {
	accountID, err := ctxAccountID(c)
	if err != nil {
		return err
	}

	var req patchProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	account, err := h.wallet.PatchProfile(c.Request().Context(), accountID, ports.ProfilePatch{
		Name:  req.Name,
		Phone: req.Phone,
		Kind:  req.Kind,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, account)
}

// PutLocale persists the preferred locale for the account.
//
// @Summary      Set preferred locale
// @Tags         account
// @Accept       json
// @Security     BearerAuth
// @Param        body  body  localeRequest  true  "Locale (fr, ar, en)"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Router       /v1/me/locale [put]
func (h *AccountHandler) PutLocale(c echo.Context) error {
	accountID, err := ctxAccountID(c)
	if err != nil {
		return err
	}

	var req localeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.sessions.PutLocale(c.Request().Context(), accountID, req.Lang); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Wallet returns the balance and entitlement counters.
//
// @Summary      Wallet state
// @Tags         wallet
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  walletResponse
// @Router       /v1/me/wallet [get]
func (h *AccountHandler) Wallet(c echo.Context) error {
	accountID, err := ctxAccountID(c)
	if err != nil {
		return err
	}

	account, session, err := h.wallet.Me(c.Request().Context(), accountID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, walletResponse{
		Balance:         account.Balance,
		Subscription:    string(account.Subscription),
		BoostsRemaining: session.BoostsRemaining,
		PhoneUnlocks:    session.PhoneUnlocksUsed,
	})
}

// Recharge credits the wallet after the simulated transaction delay.
//
// @Summary      Recharge the wallet
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      rechargeRequest  true  "Amount to credit"
// @Success      200   {object}  domain.Account
// @Failure      400   {object}  map[string]string
// @Router       /v1/me/wallet/recharge [post]
func (h *AccountHandler) Recharge(c echo.Context) error {
	accountID, err := ctxAccountID(c)
	if err != nil {
		return err
	}

	var req rechargeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	account, err := h.wallet.Recharge(c.Request().Context(), accountID, req.Amount)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, account)
}

// Subscribe switches the subscription tier and re-derives boost credits.
//
// @Summary      Change subscription tier
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      subscribeRequest  true  "Target tier"
// @Success      200   {object}  meResponse
// @Failure      400   {object}  map[string]string
// @Router       /v1/me/subscription [put]
func (h *AccountHandler) Subscribe(c echo.Context) error {
	accountID, err := ctxAccountID(c)
	if err != nil {
		return err
	}

	var req subscribeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	account, session, err := h.wallet.SetSubscription(c.Request().Context(), accountID, domain.SubscriptionTier(req.Tier))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, meResponse{
		User:            account,
		BoostsRemaining: session.BoostsRemaining,
		PhoneUnlocks:    session.PhoneUnlocksUsed,
	})
}

// ToggleFavorite adds or removes a listing from the favorites set.
//
// @Summary      Toggle a favorite
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Param        listing_id  path      string  true  "Listing id"
// @Success      200         {object}  favoriteToggleResponse
// @Router       /v1/me/favorites/{listing_id} [post]
func (h *AccountHandler) ToggleFavorite(c echo.Context) error {
	accountID, err := ctxAccountID(c)
	if err != nil {
		return err
	}

	result, err := h.wallet.ToggleFavorite(c.Request().Context(), accountID, c.Param("listing_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, favoriteToggleResponse{Added: result.Added, Favorites: result.Favorites})
}

// Favorites lists the favorite listing ids.
//
// @Summary      List favorites
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  string
// @Router       /v1/me/favorites [get]
func (h *AccountHandler) Favorites(c echo.Context) error {
	accountID, err := ctxAccountID(c)
	if err != nil {
		return err
	}

	account, _, err := h.wallet.Me(c.Request().Context(), accountID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, account.Favorites)
}

// AddAlert saves a search, active by default.
//
// @Summary      Create a saved search
// @Tags         alerts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      alertRequest  true  "Search criteria"
// @Success      201   {object}  domain.Alert
// @Failure      400   {object}  map[string]string
// @Router       /v1/me/alerts [post]
func (h *AccountHandler) AddAlert(c echo.Context) error {
	accountID, err := ctxAccountID(c)
	if err != nil {
		return err
	}

	var req alertRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	alert, err := h.wallet.AddAlert(c.Request().Context(), accountID, ports.AlertInput{
		PropertyType: domain.PropertyType(req.PropertyType),
		Transaction:  domain.TransactionType(req.Transaction),
		Wilaya:       req.Wilaya,
		MaxPrice:     req.MaxPrice,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, alert)
}

// Alerts lists the saved searches.
//
// @Summary      List saved searches
// @Tags         alerts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Alert
// @Router       /v1/me/alerts [get]
func (h *AccountHandler) Alerts(c echo.Context) error {
	accountID, err := ctxAccountID(c)
	if err != nil {
		return err
	}

	account, _, err := h.wallet.Me(c.Request().Context(), accountID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, account.Alerts)
}

// ToggleAlert flips the active flag of a saved search.
//
// @Summary      Toggle a saved search
// @Tags         alerts
// @Produce      json
// @Security     BearerAuth
// @Param        alert_id  path      string  true  "Alert id"
// @Success      200       {object}  domain.Alert
// @Failure      404       {object}  map[string]string
// @Router       /v1/me/alerts/{alert_id} [patch]
func (h *AccountHandler) ToggleAlert(c echo.Context) error {
	accountID, err := ctxAccountID(c)
	if err != nil {
		return err
	}

	result, err := h.wallet.ToggleAlert(c.Request().Context(), accountID, c.Param("alert_id"))
	if err != nil {
		return err
	}
	if result.Outcome == ports.OutcomeNotFound {
		return echo.NewHTTPError(http.StatusNotFound, "alert not found")
	}
	return c.JSON(http.StatusOK, result.Alert)
}

// RemoveAlert deletes a saved search.
//
// @Summary      Delete a saved search
// @Tags         alerts
// @Security     BearerAuth
// @Param        alert_id  path  string  true  "Alert id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /v1/me/alerts/{alert_id} [delete]
func (h *AccountHandler) RemoveAlert(c echo.Context) error {
	accountID, err := ctxAccountID(c)
	if err != nil {
		return err
	}

	result, err := h.wallet.RemoveAlert(c.Request().Context(), accountID, c.Param("alert_id"))
	if err != nil {
		return err
	}
	if result.Outcome == ports.OutcomeNotFound {
		return echo.NewHTTPError(http.StatusNotFound, "alert not found")
	}
	return c.NoContent(http.StatusNoContent)
}

// Notifications lists alert notifications, newest first.
//
// @Summary      List alert notifications
// @Tags         alerts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  notificationsResponse
// @Router       /v1/me/notifications [get]
func (h *AccountHandler) Notifications(c echo.Context) error {
	accountID, err := ctxAccountID(c)
	if err != nil {
		return err
	}

	notifications, err := h.notifications.List(c.Request().Context(), accountID, 50)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notificationsResponse{Data: notifications})
}
