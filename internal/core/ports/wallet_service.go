package ports

import (
	"context"

	"github.com/Maleklabbaci/DARI-WEBSITE-sub000/internal/core/domain"
)

// Outcome tells callers whether a convenience mutation actually applied.
// The original behaviour for unknown ids is a silent no-op; the explicit
// kind lets tests distinguish "not applicable" from "applied trivially".
type Outcome string

const (
	OutcomeApplied  Outcome = "applied"
	OutcomeNotFound Outcome = "not_found"
)

// Funding sources reported by the consume operations and spend flows.
const (
	SourceQuota        = "quota"        // free-tier unlock quota
	SourceSubscription = "subscription" // unlimited paid tier
	SourceCredit       = "credit"       // boost credit from the tier allowance
	SourceBalance      = "balance"      // wallet debit
)

// ProfilePatch is a shallow merge into the account record; empty fields are
// left untouched.
type ProfilePatch struct {
	Name  string
	Phone string
	Kind  string
}

// AlertInput carries a new saved search; id and active flag are assigned by
// the service.
type AlertInput struct {
	PropertyType domain.PropertyType
	Transaction  domain.TransactionType
	Wilaya       string
	MaxPrice     int
}

// AlertResult reports the outcome of an alert mutation.
type AlertResult struct {
	Outcome Outcome
	Alert   *domain.Alert
}

// FavoriteResult reports a favorite toggle.
type FavoriteResult struct {
	Added     bool
	Favorites []string
}

// ConsumeResult reports a credit/quota consumption attempt. When Allowed is
// false the caller must fall back to charging the wallet balance.
type ConsumeResult struct {
	Allowed   bool
	Source    string
	Remaining int
}

// WalletService is the single source of truth for the account's financial
// and entitlement state. Every mutation re-persists the full account record
// and, where counters are involved, the session snapshot.
type WalletService interface {
	Me(ctx context.Context, accountID string) (*domain.Account, *domain.Session, error)
	PatchProfile(ctx context.Context, accountID string, patch ProfilePatch) (*domain.Account, error)
	// AdjustBalance applies delta to the wallet. Negative results are allowed
	// or rejected depending on the configured balance policy.
	AdjustBalance(ctx context.Context, accountID string, delta int) (*domain.Account, error)
	// Recharge credits the wallet after the simulated transaction delay.
	Recharge(ctx context.Context, accountID string, amount int) (*domain.Account, error)
	// SetSubscription switches the tier and re-derives the boost counter from
	// the tier allowance, discarding any partially used count.
	SetSubscription(ctx context.Context, accountID string, tier domain.SubscriptionTier) (*domain.Account, *domain.Session, error)
	ToggleFavorite(ctx context.Context, accountID, listingID string) (*FavoriteResult, error)
	IsFavorite(ctx context.Context, accountID, listingID string) (bool, error)
	AddAlert(ctx context.Context, accountID string, input AlertInput) (*domain.Alert, error)
	ToggleAlert(ctx context.Context, accountID, alertID string) (*AlertResult, error)
	RemoveAlert(ctx context.Context, accountID, alertID string) (*AlertResult, error)
	// ConsumePhoneUnlock and ConsumeBoostCredit implement the first half of
	// the two-step spend protocol. They never touch the wallet; on denial the
	// caller checks the balance and charges it as a separate step.
	ConsumePhoneUnlock(ctx context.Context, accountID string) (*ConsumeResult, error)
	ConsumeBoostCredit(ctx context.Context, accountID string) (*ConsumeResult, error)
}
