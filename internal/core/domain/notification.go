package domain

import "time"

// Notification tells an account that a newly published listing matched one
// of its active saved searches.
type Notification struct {
	ID        string    `json:"id"`
	AccountID string    `json:"account_id"`
	AlertID   string    `json:"alert_id"`
	ListingID string    `json:"listing_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}
