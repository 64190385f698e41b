package domain

import (
	"errors"
	"time"
)

// BoostStatus is the lifecycle state of a promotion.
type BoostStatus string

const (
	BoostActive    BoostStatus = "active"
	BoostCompleted BoostStatus = "completed"
)

const (
	// BoostCost is charged when no boost credit is available.
	BoostCost = 500
	// BoostDuration is the fixed promotion window.
	BoostDuration = 7 * 24 * time.Hour
)

var ErrBoostNotFound = errors.New("boost not found")
var ErrAlreadyBoosted = errors.New("listing already boosted")

// ReachRange is the estimated audience for a boost.
type ReachRange struct {
	Min int `json:"min" bson:"min"`
	Max int `json:"max" bson:"max"`
}

// BoostResults aggregates the outcome counters of a promotion. The record is
// display-only reporting data; the core never mutates it after creation.
type BoostResults struct {
	Impressions  int `json:"impressions" bson:"impressions"`
	Clicks       int `json:"clicks" bson:"clicks"`
	Messages     int `json:"messages" bson:"messages"`
	PhoneReveals int `json:"phone_reveals" bson:"phone_reveals"`
}

// Boost is a paid or credit-funded promotion of a listing.
type Boost struct {
	ID             string       `json:"id" bson:"_id"`
	ListingID      string       `json:"listing_id" bson:"listing_id"`
	AccountID      string       `json:"account_id" bson:"account_id"`
	Status         BoostStatus  `json:"status" bson:"status"`
	StartsAt       time.Time    `json:"starts_at" bson:"starts_at"`
	EndsAt         time.Time    `json:"ends_at" bson:"ends_at"`
	SpentBudget    int          `json:"spent_budget" bson:"spent_budget"`
	EstimatedReach ReachRange   `json:"estimated_reach" bson:"estimated_reach"`
	Results        BoostResults `json:"results" bson:"results"`
}
