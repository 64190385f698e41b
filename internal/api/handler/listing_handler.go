package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Maleklabbaci/DARI-WEBSITE-sub000/internal/core/domain"
	"github.com/Maleklabbaci/DARI-WEBSITE-sub000/internal/core/ports"
)

// ListingHandler serves catalogue search, publication and the phone unlock
// and description endpoints.
type ListingHandler struct {
	listings ports.ListingService
	wallet   ports.WalletService
}

func NewListingHandler(listings ports.ListingService, wallet ports.WalletService) *ListingHandler {
	return &ListingHandler{listings: listings, wallet: wallet}
}

// Search filters the catalogue with the active criteria.
//
// @Summary      Search listings
// @Tags         listings
// @Produce      json
// @Param        wilaya       query  string  false  "Wilaya, exact match"
// @Param        transaction  query  string  false  "buy, rent or all"
// @Param        type         query  string  false  "Property type or all"
// @Param        price_min    query  int     false  "Minimum price"
// @Param        price_max    query  int     false  "Maximum price"
// @Param        surface_min  query  int     false  "Minimum surface in m2"
// @Param        surface_max  query  int     false  "Maximum surface in m2"
// @Param        rooms        query  int     false  "Exact room count"
// @Success      200  {object}  listListingsResponse
// @Failure      400  {object}  map[string]string
// @Router       /v1/listings [get]
func (h *ListingHandler) Search(c echo.Context) error {
	var q searchQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}
	if err := c.Validate(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	results, err := h.listings.Search(c.Request().Context(), domain.FilterCriteria{
		Wilaya:      q.Wilaya,
		Transaction: domain.TransactionType(q.Transaction),
		Type:        domain.PropertyType(q.Type),
		PriceMin:    q.PriceMin,
		PriceMax:    q.PriceMax,
		SurfaceMin:  q.SurfaceMin,
		SurfaceMax:  q.SurfaceMax,
		Rooms:       q.Rooms,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listListingsResponse{Data: results, Total: len(results)})
}

// Get returns a single listing.
//
// @Summary      Get listing
// @Tags         listings
// @Produce      json
// @Param        id  path  string  true  "Listing id"
// @Success      200  {object}  domain.Listing
// @Failure      404  {object}  map[string]string
// @Router       /v1/listings/{id} [get]
func (h *ListingHandler) Get(c echo.Context) error {
	listing, err := h.listings.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listing)
}

// Publish creates a listing owned by the authenticated account and hands it
// to the alert dispatcher.
//
// @Summary      Publish listing
// @Tags         listings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      publishListingRequest  true  "Listing draft"
// @Success      201   {object}  domain.Listing
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /v1/listings [post]
func (h *ListingHandler) Publish(c echo.Context) error {
	accountID, err := ctxAccountID(c)
	if err != nil {
		return err
	}

	var req publishListingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// The seller block is stamped from the account record, never from the
	// request body.
	account, _, err := h.wallet.Me(c.Request().Context(), accountID)
	if err != nil {
		return err
	}

	listing, err := h.listings.Publish(c.Request().Context(), ports.PublishListingInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Surface:     req.Surface,
		Type:        domain.PropertyType(req.Type),
		Transaction: domain.TransactionType(req.Transaction),
		City:        req.City,
		Wilaya:      req.Wilaya,
		Rooms:       req.Rooms,
		Bedrooms:    req.Bedrooms,
		Floor:       req.Floor,
		Amenities:   req.Amenities,
		Images:      req.Images,
		SellerID:    account.ID,
		SellerName:  account.Name,
		SellerKind:  account.Kind,
		SellerPhone: account.Phone,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, listing)
}

// RevealPhone unlocks the seller's number, consuming the free quota or the
// subscription first and charging the wallet only as a fallback.
//
// @Summary      Reveal seller phone
// @Tags         listings
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Listing id"
// @Success      200  {object}  phoneRevealResponse
// @Failure      402  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/listings/{id}/phone [post]
func (h *ListingHandler) RevealPhone(c echo.Context) error {
	accountID, err := ctxAccountID(c)
	if err != nil {
		return err
	}

	reveal, err := h.listings.RevealPhone(c.Request().Context(), accountID, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, phoneRevealResponse{
		Phone:          reveal.Phone,
		Source:         reveal.Source,
		Charged:        reveal.Charged,
		QuotaRemaining: reveal.QuotaRemaining,
	})
}

// Describe generates listing prose from structured attributes. The endpoint
// never fails on generator errors; callers always get usable text.
//
// @Summary      Generate description
// @Tags         listings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      describeRequest  true  "Listing attributes"
// @Success      200   {object}  describeResponse
// @Failure      400   {object}  map[string]string
// @Router       /v1/listings/describe [post]
func (h *ListingHandler) Describe(c echo.Context) error {
	if _, err := ctxAccountID(c); err != nil {
		return err
	}

	var req describeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	text, err := h.listings.Describe(c.Request().Context(), ports.DescribeInput{
		Type:     domain.PropertyType(req.Type),
		Rooms:    req.Rooms,
		Surface:  req.Surface,
		City:     req.City,
		Wilaya:   req.Wilaya,
		Features: req.Features,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, describeResponse{Description: text})
}
