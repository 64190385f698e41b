package ports

import (
	"context"

	"github.com/Maleklabbaci/DARI-WEBSITE-sub000/internal/core/domain"
)

// NotificationStore keeps per-account alert notifications, newest first.
type NotificationStore interface {
	Push(ctx context.Context, notification *domain.Notification) error
	List(ctx context.Context, accountID string, limit int) ([]domain.Notification, error)
}

// AlertNotifier matches a freshly published listing against every active
// saved search and records a notification per hit. Invoked by the publish
// dispatcher workers, never on the request path.
type AlertNotifier interface {
	Notify(ctx context.Context, listing *domain.Listing) error
}
