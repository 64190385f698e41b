package ports

import (
	"context"
	"time"

	"github.com/Maleklabbaci/DARI-WEBSITE-sub000/internal/core/domain"
)

// ThreadRepository defines persistence for conversation threads. Replace
// writes the full thread document.
type ThreadRepository interface {
	Insert(ctx context.Context, thread *domain.Thread) error
	FindByID(ctx context.Context, id string) (*domain.Thread, error)
	FindByListingAndBuyer(ctx context.Context, listingID, buyerID string) (*domain.Thread, error)
	ListByParticipant(ctx context.Context, accountID string) ([]domain.Thread, error)
	Replace(ctx context.Context, thread *domain.Thread) error
}

// ThreadSummary is the lightweight inbox view of a thread.
type ThreadSummary struct {
	ID          string
	ListingID   string
	WithAccount string
	LastMessage string
	Unread      int
	UpdatedAt   time.Time
}

// MessagingService defines the simulated inbox use cases. Plain
// request/response CRUD; there is no real-time transport.
type MessagingService interface {
	// Contact opens (or reuses) the buyer's thread on a listing and appends
	// the first message.
	Contact(ctx context.Context, accountID, listingID, body string) (*domain.Thread, error)
	Inbox(ctx context.Context, accountID string) ([]ThreadSummary, error)
	// Thread returns the full conversation and clears the caller's unread
	// counter.
	Thread(ctx context.Context, accountID, threadID string) (*domain.Thread, error)
	Reply(ctx context.Context, accountID, threadID, body string) (*domain.Thread, error)
}
