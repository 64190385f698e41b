package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Maleklabbaci/DARI-WEBSITE-sub000/internal/api/metrics"
	"github.com/Maleklabbaci/DARI-WEBSITE-sub000/internal/core/domain"
	"github.com/Maleklabbaci/DARI-WEBSITE-sub000/internal/core/ports"
)

type BoostService struct {
	boosts   ports.BoostRepository
	listings ports.ListingRepository
	wallet   ports.WalletService
	delay    TxDelay
	log      zerolog.Logger
}

func NewBoostService(boosts ports.BoostRepository, listings ports.ListingRepository, wallet ports.WalletService, delay TxDelay, log zerolog.Logger) *BoostService {
	return &BoostService{boosts: boosts, listings: listings, wallet: wallet, delay: delay, log: log}
}

// Boost promotes a listing through the two-step spend protocol: a boost
// credit is consumed first, and only when none remains is the balance
// verified and charged.
func (s *BoostService) Boost(ctx context.Context, accountID, listingID string) (*ports.BoostReceipt, error) {
	listing, err := s.listings.FindByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if active, err := s.boosts.FindActiveByListing(ctx, listingID); err != nil && !errors.Is(err, domain.ErrBoostNotFound) {
		return nil, err
	} else if active != nil {
		return nil, domain.ErrAlreadyBoosted
	}

	if err := s.delay.Wait(ctx); err != nil {
		return nil, err
	}

	consume, err := s.wallet.ConsumeBoostCredit(ctx, accountID)
	if err != nil {
		return nil, err
	}

	source := consume.Source
	charged := 0
	creditsLeft := consume.Remaining
	if !consume.Allowed {
		account, _, err := s.wallet.Me(ctx, accountID)
		if err != nil {
			return nil, err
		}
		if account.Balance < domain.BoostCost {
			metrics.InsufficientFundsTotal.WithLabelValues("boost").Inc()
			return nil, domain.ErrInsufficientFunds
		}
		if _, err := s.wallet.AdjustBalance(ctx, accountID, -domain.BoostCost); err != nil {
			return nil, err
		}
		source = ports.SourceBalance
		charged = domain.BoostCost
	}

	now := time.Now().UTC()
	boost := &domain.Boost{
		ID:             uuid.NewString(),
		ListingID:      listingID,
		AccountID:      accountID,
		Status:         domain.BoostActive,
		StartsAt:       now,
		EndsAt:         now.Add(domain.BoostDuration),
		SpentBudget:    domain.BoostCost,
		EstimatedReach: estimateReach(listing),
	}
	if err := s.boosts.Insert(ctx, boost); err != nil {
		return nil, err
	}
	if err := s.listings.SetBoosted(ctx, listingID, true); err != nil {
		return nil, err
	}

	metrics.BoostsAppliedTotal.WithLabelValues(source).Inc()
	s.log.Info().Str("listing_id", listingID).Str("account_id", accountID).Str("source", source).Msg("listing boosted")

	return &ports.BoostReceipt{
		Boost:       boost,
		Source:      source,
		Charged:     charged,
		CreditsLeft: creditsLeft,
	}, nil
}

// Analytics returns the account's promotion records. Status is derived on
// read; records past their end date report as completed without a write.
func (s *BoostService) Analytics(ctx context.Context, accountID string) ([]domain.Boost, error) {
	boosts, err := s.boosts.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	for i := range boosts {
		if boosts[i].Status == domain.BoostActive && boosts[i].EndsAt.Before(now) {
			boosts[i].Status = domain.BoostCompleted
		}
	}
	return boosts, nil
}

// estimateReach derives a deterministic audience estimate from the listing.
func estimateReach(l *domain.Listing) domain.ReachRange {
	base := 800 + l.Surface*10
	if l.Transaction == domain.TransactionRent {
		base += 400
	}
	return domain.ReachRange{Min: base, Max: base * 3}
}
