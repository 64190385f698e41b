package ports

import (
	"context"

	"github.com/Maleklabbaci/DARI-WEBSITE-sub000/internal/core/domain"
)

// PublishListingInput carries a new listing draft.
type PublishListingInput struct {
	Title       string
	Description string
	Price       int
	Surface     int
	Type        domain.PropertyType
	Transaction domain.TransactionType
	City        string
	Wilaya      string
	Rooms       int
	Bedrooms    int
	Floor       int
	Amenities   []string
	Images      []string
	SellerID    string
	SellerName  string
	SellerKind  string
	SellerPhone string
}

// PhoneReveal is the result of the unlock flow: the seller's number plus how
// the reveal was funded.
type PhoneReveal struct {
	Phone          string
	Source         string // quota | subscription | balance
	Charged        int
	QuotaRemaining int
}

// DescribeInput is the structured prompt material for the description
// generator.
type DescribeInput struct {
	Type     domain.PropertyType
	Rooms    int
	Surface  int
	City     string
	Wilaya   string
	Features []string
}

// ListingService defines the catalogue use cases.
type ListingService interface {
	Search(ctx context.Context, criteria domain.FilterCriteria) ([]domain.Listing, error)
	Get(ctx context.Context, id string) (*domain.Listing, error)
	Publish(ctx context.Context, input PublishListingInput) (*domain.Listing, error)
	// RevealPhone runs the two-step unlock protocol: consume quota first, and
	// only on denial verify the balance and charge it.
	RevealPhone(ctx context.Context, accountID, listingID string) (*PhoneReveal, error)
	// Describe asks the external generator for listing prose. Generator
	// failures are never fatal; a static fallback is returned instead.
	Describe(ctx context.Context, input DescribeInput) (string, error)
}
