package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Maleklabbaci/DARI-WEBSITE-sub000/internal/api/metrics"
	"github.com/Maleklabbaci/DARI-WEBSITE-sub000/internal/core/domain"
	"github.com/Maleklabbaci/DARI-WEBSITE-sub000/internal/core/ports"
)

// describeFallback is returned whenever the generator fails; generation
// errors never propagate to the caller.
const describeFallback = "Description indisponible pour le moment, veuillez saisir la vôtre."

// AlertQueue hands freshly published listings to the alert-match workers.
type AlertQueue interface {
	Enqueue(listing domain.Listing)
}

type ListingService struct {
	repo      ports.ListingRepository
	wallet    ports.WalletService
	generator ports.DescriptionGenerator
	queue     AlertQueue
	log       zerolog.Logger
}

func NewListingService(repo ports.ListingRepository, wallet ports.WalletService, generator ports.DescriptionGenerator, queue AlertQueue, log zerolog.Logger) *ListingService {
	return &ListingService{repo: repo, wallet: wallet, generator: generator, queue: queue, log: log}
}

// Search narrows the catalogue by sequential predicate elimination. The
// result preserves catalogue order; identical criteria over an unchanged
// catalogue always yield the identical result.
func (s *ListingService) Search(ctx context.Context, criteria domain.FilterCriteria) ([]domain.Listing, error) {
	listings, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	matched := domain.Filter(listings, criteria)
	metrics.SearchesTotal.Inc()
	return matched, nil
}

func (s *ListingService) Get(ctx context.Context, id string) (*domain.Listing, error) {
	return s.repo.FindByID(ctx, id)
}

// Publish stores a new listing and hands it to the alert-match workers.
func (s *ListingService) Publish(ctx context.Context, input ports.PublishListingInput) (*domain.Listing, error) {
	listing := &domain.Listing{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Surface:     input.Surface,
		Type:        input.Type,
		Transaction: input.Transaction,
		Location:    domain.Location{City: input.City, Wilaya: input.Wilaya},
		Rooms:       input.Rooms,
		Bedrooms:    input.Bedrooms,
		Floor:       input.Floor,
		Amenities:   input.Amenities,
		Images:      input.Images,
		Seller: domain.Seller{
			ID:    input.SellerID,
			Name:  input.SellerName,
			Kind:  input.SellerKind,
			Phone: input.SellerPhone,
		},
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, listing); err != nil {
		s.log.Error().Err(err).Msg("failed to publish listing")
		return nil, err
	}

	s.queue.Enqueue(*listing)
	s.log.Info().Str("listing_id", listing.ID).Str("wilaya", listing.Location.Wilaya).Msg("listing published")
	return listing, nil
}

// RevealPhone runs the two-step unlock protocol. Quota or tier entitlement
// is consumed first; only when that is denied is the balance checked and
// charged, so "insufficient funds" is only ever reported after confirming no
// free entitlement was available.
func (s *ListingService) RevealPhone(ctx context.Context, accountID, listingID string) (*ports.PhoneReveal, error) {
	listing, err := s.repo.FindByID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	consume, err := s.wallet.ConsumePhoneUnlock(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if consume.Allowed {
		metrics.PhoneUnlocksTotal.WithLabelValues(consume.Source).Inc()
		return &ports.PhoneReveal{
			Phone:          listing.Seller.Phone,
			Source:         consume.Source,
			QuotaRemaining: consume.Remaining,
		}, nil
	}

	account, _, err := s.wallet.Me(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.Balance < domain.PhoneUnlockCost {
		metrics.InsufficientFundsTotal.WithLabelValues("phone_unlock").Inc()
		return nil, domain.ErrInsufficientFunds
	}
	if _, err := s.wallet.AdjustBalance(ctx, accountID, -domain.PhoneUnlockCost); err != nil {
		return nil, err
	}

	metrics.PhoneUnlocksTotal.WithLabelValues(ports.SourceBalance).Inc()
	return &ports.PhoneReveal{
		Phone:   listing.Seller.Phone,
		Source:  ports.SourceBalance,
		Charged: domain.PhoneUnlockCost,
	}, nil
}

// Describe builds the structured prompt and asks the external generator for
// prose. Any failure falls back to a static string.
func (s *ListingService) Describe(ctx context.Context, input ports.DescribeInput) (string, error) {
	text, err := s.generator.Generate(ctx, buildPrompt(input))
	if err != nil {
		metrics.GenerateFailuresTotal.Inc()
		s.log.Warn().Err(err).Msg("description generation failed, using fallback")
		return describeFallback, nil
	}
	return text, nil
}

func buildPrompt(in ports.DescribeInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Rédige une description attrayante pour une annonce immobilière: %s", in.Type)
	if in.Rooms > 0 {
		fmt.Fprintf(&b, ", %d pièces", in.Rooms)
	}
	if in.Surface > 0 {
		fmt.Fprintf(&b, ", %d m²", in.Surface)
	}
	if in.City != "" || in.Wilaya != "" {
		fmt.Fprintf(&b, ", située à %s", strings.TrimSpace(in.City+" "+in.Wilaya))
	}
	if len(in.Features) > 0 {
		fmt.Fprintf(&b, ". Atouts: %s", strings.Join(in.Features, ", "))
	}
	return b.String()
}
