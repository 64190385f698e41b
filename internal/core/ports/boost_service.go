package ports

import (
	"context"

	"github.com/Maleklabbaci/DARI-WEBSITE-sub000/internal/core/domain"
)

// BoostRepository defines persistence for promotion records.
type BoostRepository interface {
	Insert(ctx context.Context, boost *domain.Boost) error
	ListByAccount(ctx context.Context, accountID string) ([]domain.Boost, error)
	FindActiveByListing(ctx context.Context, listingID string) (*domain.Boost, error)
}

// BoostReceipt reports a boost purchase: the created record plus how it was
// funded.
type BoostReceipt struct {
	Boost       *domain.Boost
	Source      string // credit | balance
	Charged     int
	CreditsLeft int
}

// BoostService defines the promotion use cases.
type BoostService interface {
	// Boost promotes a listing via the two-step spend protocol: consume a
	// boost credit first, and only on denial verify the balance and charge it.
	Boost(ctx context.Context, accountID, listingID string) (*BoostReceipt, error)
	// Analytics returns the account's promotion records, newest first.
	Analytics(ctx context.Context, accountID string) ([]domain.Boost, error)
}
