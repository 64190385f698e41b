package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Maleklabbaci/DARI-WEBSITE-sub000/internal/api/metrics"
	"github.com/Maleklabbaci/DARI-WEBSITE-sub000/internal/core/domain"
	"github.com/Maleklabbaci/DARI-WEBSITE-sub000/internal/core/ports"
)

// AlertService matches published listings against every active saved search.
// It runs on the publish dispatcher workers, off the request path.
type AlertService struct {
	accounts      ports.AccountRepository
	notifications ports.NotificationStore
	log           zerolog.Logger
}

func NewAlertService(accounts ports.AccountRepository, notifications ports.NotificationStore, log zerolog.Logger) *AlertService {
	return &AlertService{accounts: accounts, notifications: notifications, log: log}
}

// Notify records one notification per active alert the listing satisfies.
// The seller never gets notified about their own listing. A failed push is
// logged and skipped; remaining matches still go through.
func (s *AlertService) Notify(ctx context.Context, listing *domain.Listing) error {
	accounts, err := s.accounts.ListWithActiveAlerts(ctx)
	if err != nil {
		return err
	}

	for _, account := range accounts {
		if account.ID == listing.Seller.ID {
			continue
		}
		for _, alert := range account.Alerts {
			if !alert.Matches(listing) {
				continue
			}
			n := &domain.Notification{
				ID:        uuid.NewString(),
				AccountID: account.ID,
				AlertID:   alert.ID,
				ListingID: listing.ID,
				Title:     listing.Title,
				CreatedAt: time.Now().UTC(),
			}
			if err := s.notifications.Push(ctx, n); err != nil {
				s.log.Warn().Err(err).Str("account_id", account.ID).Msg("failed to store alert notification")
				continue
			}
			metrics.AlertMatchesTotal.Inc()
		}
	}
	return nil
}
