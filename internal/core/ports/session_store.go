package ports

import (
	"context"

	"github.com/Maleklabbaci/DARI-WEBSITE-sub000/internal/core/domain"
)

// SessionStore persists the derived per-session counters and the locale
// preference. Absence of a snapshot means logged out.
type SessionStore interface {
	Put(ctx context.Context, accountID string, session domain.Session) error
	Get(ctx context.Context, accountID string) (*domain.Session, error)
	Delete(ctx context.Context, accountID string) error
	PutLocale(ctx context.Context, accountID, locale string) error
	GetLocale(ctx context.Context, accountID string) (string, error)
}
