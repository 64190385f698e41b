package domain

import (
	"errors"
	"time"
)

const (
	KindIndividual = "individual"
	KindAgency     = "agency"
)

// SubscriptionTier is the entitlement level of an account.
type SubscriptionTier string

const (
	TierFree    SubscriptionTier = "free"
	TierPremium SubscriptionTier = "premium"
	TierUltime  SubscriptionTier = "ultime"
)

const (
	// WelcomeBalance is credited to every new account at signup.
	WelcomeBalance = 1000
	// FreeUnlockQuota is the number of phone reveals a free account gets per session.
	FreeUnlockQuota = 3
	// PhoneUnlockCost is charged when no free quota is available.
	PhoneUnlockCost = 100
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidTier = errors.New("invalid subscription tier")
var ErrInsufficientFunds = errors.New("insufficient funds")
var ErrNegativeBalance = errors.New("operation would make balance negative")
var ErrForbidden = errors.New("access forbidden")

// Valid reports whether t is one of the three known tiers.
func (t SubscriptionTier) Valid() bool {
	return t == TierFree || t == TierPremium || t == TierUltime
}

// BoostAllowance returns the boost credits granted when switching to tier t.
func (t SubscriptionTier) BoostAllowance() int {
	switch t {
	case TierPremium:
		return 2
	case TierUltime:
		return 10
	default:
		return 0
	}
}

// Alert is a saved search the account owner can activate or deactivate.
// PropertyType and Transaction accept the "all" wildcard.
type Alert struct {
	ID           string           `json:"id" bson:"id"`
	PropertyType PropertyType     `json:"property_type" bson:"property_type"`
	Transaction  TransactionType  `json:"transaction" bson:"transaction"`
	Wilaya       string           `json:"wilaya" bson:"wilaya"`
	MaxPrice     int              `json:"max_price,omitempty" bson:"max_price,omitempty"`
	IsActive     bool             `json:"is_active" bson:"is_active"`
}

// Matches reports whether listing l satisfies the saved search.
func (a Alert) Matches(l *Listing) bool {
	if !a.IsActive {
		return false
	}
	if a.Wilaya != "" && l.Location.Wilaya != a.Wilaya {
		return false
	}
	if a.Transaction != TransactionAll && l.Transaction != a.Transaction {
		return false
	}
	if a.PropertyType != PropertyAll && l.Type != a.PropertyType {
		return false
	}
	if a.MaxPrice > 0 && l.Price > a.MaxPrice {
		return false
	}
	return true
}

// Account is the marketplace user record. Wallet balance, subscription tier,
// favorites and saved alerts are all owned here; every mutation persists the
// full record so storage never lags the in-memory state.
type Account struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Email        string           `json:"email"`
	Phone        string           `json:"phone,omitempty"`
	Kind         string           `json:"kind"`
	PasswordHash string           `json:"-"`
	Balance      int              `json:"balance"`
	Subscription SubscriptionTier `json:"subscription"`
	Favorites    []string         `json:"favorites"`
	Alerts       []Alert          `json:"alerts"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// HasFavorite reports whether listingID is in the favorites set.
func (a *Account) HasFavorite(listingID string) bool {
	for _, id := range a.Favorites {
		if id == listingID {
			return true
		}
	}
	return false
}

// FindAlert returns the alert with the given id, or nil.
func (a *Account) FindAlert(alertID string) *Alert {
	for i := range a.Alerts {
		if a.Alerts[i].ID == alertID {
			return &a.Alerts[i]
		}
	}
	return nil
}

// Session holds the per-session counters derived from the subscription tier.
// They are never part of the durable account record and reset on login or
// subscription change.
type Session struct {
	BoostsRemaining  int `json:"boosts_remaining"`
	PhoneUnlocksUsed int `json:"phone_unlocks_used"`
}

// NewSession derives fresh counters for the given tier.
func NewSession(tier SubscriptionTier) Session {
	return Session{BoostsRemaining: tier.BoostAllowance()}
}
