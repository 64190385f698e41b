package domain

import (
	"errors"
	"time"
)

var ErrThreadNotFound = errors.New("thread not found")

// Message is a single entry in a conversation thread.
type Message struct {
	ID       string    `json:"id" bson:"id"`
	SenderID string    `json:"sender_id" bson:"sender_id"`
	Body     string    `json:"body" bson:"body"`
	SentAt   time.Time `json:"sent_at" bson:"sent_at"`
}

// Thread is a buyer/seller conversation about one listing. Unread counts are
// tracked per participant and cleared when that participant reads the thread.
type Thread struct {
	ID        string         `json:"id" bson:"_id"`
	ListingID string         `json:"listing_id" bson:"listing_id"`
	BuyerID   string         `json:"buyer_id" bson:"buyer_id"`
	SellerID  string         `json:"seller_id" bson:"seller_id"`
	Messages  []Message      `json:"messages" bson:"messages"`
	Unread    map[string]int `json:"unread" bson:"unread"`
	CreatedAt time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time      `json:"updated_at" bson:"updated_at"`
}

// HasParticipant reports whether accountID is a member of the thread.
func (t *Thread) HasParticipant(accountID string) bool {
	return t.BuyerID == accountID || t.SellerID == accountID
}

// OtherParticipant returns the id of the counterpart of accountID.
func (t *Thread) OtherParticipant(accountID string) string {
	if t.BuyerID == accountID {
		return t.SellerID
	}
	return t.BuyerID
}
