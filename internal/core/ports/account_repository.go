package ports

import (
	"context"

	"github.com/Maleklabbaci/DARI-WEBSITE-sub000/internal/core/domain"
)

// AccountRepository defines persistence for marketplace accounts. Replace
// writes the full record so the stored snapshot never lags the in-memory one.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	Replace(ctx context.Context, account *domain.Account) error
	// ListWithActiveAlerts returns every account holding at least one active
	// saved search. Used by the alert matcher when a listing is published.
	ListWithActiveAlerts(ctx context.Context) ([]*domain.Account, error)
}
