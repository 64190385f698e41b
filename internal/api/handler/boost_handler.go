package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Maleklabbaci/DARI-WEBSITE-sub000/internal/core/domain"
	"github.com/Maleklabbaci/DARI-WEBSITE-sub000/internal/core/ports"
)

type boostReceiptResponse struct {
	Boost       *domain.Boost `json:"boost"`
	Source      string        `json:"source"`
	Charged     int           `json:"charged,omitempty"`
	CreditsLeft int           `json:"credits_left"`
}

type boostListResponse struct {
	Data  []domain.Boost `json:"data"`
	Total int            `json:"total"`
}

// BoostHandler serves the listing promotion endpoints.
type BoostHandler struct {
	boosts ports.BoostService
}

func NewBoostHandler(boosts ports.BoostService) *BoostHandler {
	return &BoostHandler{boosts: boosts}
}

// Boost promotes one of the caller's listings, spending a tier credit or the
// wallet balance.
//
// @Summary      Boost listing
// @Tags         boosts
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Listing id"
// @Success      201  {object}  boostReceiptResponse
// @Failure      402  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /v1/listings/{id}/boost [post]
func (h *BoostHandler) Boost(c echo.Context) error {
	accountID, err := ctxAccountID(c)
	if err != nil {
		return err
	}

	receipt, err := h.boosts.Boost(c.Request().Context(), accountID, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, boostReceiptResponse{
		Boost:       receipt.Boost,
		Source:      receipt.Source,
		Charged:     receipt.Charged,
		CreditsLeft: receipt.CreditsLeft,
	})
}

// Analytics lists the caller's promotion records with their reach and result
// counters, newest first.
//
// @Summary      Boost analytics
// @Tags         boosts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  boostListResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/boosts [get]
func (h *BoostHandler) Analytics(c echo.Context) error {
	accountID, err := ctxAccountID(c)
	if err != nil {
		return err
	}

	boosts, err := h.boosts.Analytics(c.Request().Context(), accountID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, boostListResponse{Data: boosts, Total: len(boosts)})
}
