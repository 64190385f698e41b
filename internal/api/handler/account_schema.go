package handler

import "github.com/Maleklabbaci/DARI-WEBSITE-sub000/internal/core/domain"

type patchProfileRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Kind  string `json:"kind" validate:"omitempty,oneof=individual agency"`
}

type rechargeRequest struct {
	Amount int `json:"amount" validate:"required,gt=0"`
}

type subscribeRequest struct {
	Tier string `json:"tier" validate:"required,oneof=free premium ultime"`
}

type localeRequest struct {
	Lang string `json:"lang" validate:"required,oneof=fr ar en"`
}

type alertRequest struct {
	PropertyType string `json:"property_type" validate:"omitempty,oneof=all apartment house studio commercial office warehouse land"`
	Transaction  string `json:"transaction" validate:"omitempty,oneof=all buy rent"`
	Wilaya       string `json:"wilaya" validate:"required"`
	MaxPrice     int    `json:"max_price" validate:"omitempty,gt=0"`
}

// meResponse couples the durable account record with the derived session
// counters so clients never have to compute entitlements themselves.
type meResponse struct {
	User            *domain.Account `json:"user"`
	BoostsRemaining int             `json:"boosts_remaining"`
	PhoneUnlocks    int             `json:"phone_unlocks_used"`
	Locale          string          `json:"locale"`
}

type walletResponse struct {
	Balance         int    `json:"balance"`
	Subscription    string `json:"subscription"`
	BoostsRemaining int    `json:"boosts_remaining"`
	PhoneUnlocks    int    `json:"phone_unlocks_used"`
}

type favoriteToggleResponse struct {
	Added     bool     `json:"added"`
	Favorites []string `json:"favorites"`
}

type notificationsResponse struct {
	Data []domain.Notification `json:"data"`
}
