package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Maleklabbaci/DARI-WEBSITE-sub000/internal/core/ports"
)

type messageRequest struct {
	Body string `json:"body" validate:"required,max=2000"`
}

type threadSummaryResponse struct {
	ID          string    `json:"id"`
	ListingID   string    `json:"listing_id"`
	WithAccount string    `json:"with_account"`
	LastMessage string    `json:"last_message"`
	Unread      int       `json:"unread"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type inboxResponse struct {
	Data  []threadSummaryResponse `json:"data"`
	Total int                     `json:"total"`
}

// InboxHandler serves the buyer/seller messaging endpoints.
type InboxHandler struct {
	messaging ports.MessagingService
}

func NewInboxHandler(messaging ports.MessagingService) *InboxHandler {
	return &InboxHandler{messaging: messaging}
}

// Contact opens a conversation with a listing's seller.
//
// @Summary      Contact seller
// @Tags         inbox
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string          true  "Listing id"
// @Param        body  body  messageRequest  true  "First message"
// @Success      201   {object}  domain.Thread
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/listings/{id}/contact [post]
func (h *InboxHandler) Contact(c echo.Context) error {
	accountID, err := ctxAccountID(c)
	if err != nil {
		return err
	}

	var req messageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	thread, err := h.messaging.Contact(c.Request().Context(), accountID, c.Param("id"), req.Body)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, thread)
}

// Inbox lists the caller's conversations, most recently active first.
//
// @Summary      Inbox
// @Tags         inbox
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  inboxResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/inbox [get]
func (h *InboxHandler) Inbox(c echo.Context) error {
	accountID, err := ctxAccountID(c)
	if err != nil {
		return err
	}

	summaries, err := h.messaging.Inbox(c.Request().Context(), accountID)
	if err != nil {
		return err
	}

	out := make([]threadSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, threadSummaryResponse{
			ID:          s.ID,
			ListingID:   s.ListingID,
			WithAccount: s.WithAccount,
			LastMessage: s.LastMessage,
			Unread:      s.Unread,
			UpdatedAt:   s.UpdatedAt,
		})
	}

	return c.JSON(http.StatusOK, inboxResponse{Data: out, Total: len(out)})
}

// Thread returns a full conversation and marks it read for the caller.
//
// @Summary      Read thread
// @Tags         inbox
// @Produce      json
// @Security     BearerAuth
// @Param        thread_id  path  string  true  "Thread id"
// @Success      200  {object}  domain.Thread
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/inbox/{thread_id} [get]
func (h *InboxHandler) Thread(c echo.Context) error {
	accountID, err := ctxAccountID(c)
	if err != nil {
		return err
	}

	thread, err := h.messaging.Thread(c.Request().Context(), accountID, c.Param("thread_id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, thread)
}

// Reply appends a message to an existing conversation.
//
// @Summary      Reply in thread
// @Tags         inbox
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        thread_id  path  string          true  "Thread id"
// @Param        body       body  messageRequest  true  "Message"
// @Success      201  {object}  domain.Thread
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/inbox/{thread_id}/messages [post]
func (h *InboxHandler) Reply(c echo.Context) error {
	accountID, err := ctxAccountID(c)
	if err != nil {
		return err
	}

	var req messageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	thread, err := h.messaging.Reply(c.Request().Context(), accountID, c.Param("thread_id"), req.Body)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, thread)
}
