package ports

import (
	"context"

	"github.com/Maleklabbaci/DARI-WEBSITE-sub000/internal/core/domain"
)

// ListingRepository defines persistence for the property catalogue.
// Listings are immutable after publication except for the boosted flag.
type ListingRepository interface {
	Insert(ctx context.Context, listing *domain.Listing) error
	FindByID(ctx context.Context, id string) (*domain.Listing, error)
	// All returns the full catalogue in creation order. The filter engine
	// narrows it in memory so results preserve that order.
	All(ctx context.Context) ([]domain.Listing, error)
	SetBoosted(ctx context.Context, id string, boosted bool) error
}
