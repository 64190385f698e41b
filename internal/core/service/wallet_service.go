package service

import (
	"context"
	"hash/fnv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Maleklabbaci/DARI-WEBSITE-sub000/internal/api/metrics"
	"github.com/Maleklabbaci/DARI-WEBSITE-sub000/internal/core/domain"
	"github.com/Maleklabbaci/DARI-WEBSITE-sub000/internal/core/ports"
)

const lockStripes = 64

// WalletService is the entitlement and wallet store. Every mutation runs
// under the per-account lock and re-persists the full account record, so the
// stored snapshot and the served state can never diverge.
type WalletService struct {
	accounts      ports.AccountRepository
	sessions      ports.SessionStore
	delay         TxDelay
	allowNegative bool
	locks         [lockStripes]sync.Mutex
	log           zerolog.Logger
}

// NewWalletService builds the store. allowNegative selects the balance
// policy: permissive debits may drive the balance below zero, the strict
// policy rejects them with ErrNegativeBalance.
func NewWalletService(accounts ports.AccountRepository, sessions ports.SessionStore, delay TxDelay, allowNegative bool, log zerolog.Logger) *WalletService {
	return &WalletService{
		accounts:      accounts,
		sessions:      sessions,
		delay:         delay,
		allowNegative: allowNegative,
		log:           log,
	}
}

// lock returns the stripe guarding accountID. All read-modify-write cycles
// on one account serialize on the same mutex.
func (s *WalletService) lock(accountID string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(accountID))
	return &s.locks[h.Sum32()%lockStripes]
}

// session loads the counters for accountID, re-deriving them from the
// subscription tier when no snapshot exists.
func (s *WalletService) session(ctx context.Context, account *domain.Account) (domain.Session, error) {
	sess, err := s.sessions.Get(ctx, account.ID)
	if err != nil {
		return domain.Session{}, err
	}
	if sess == nil {
		fresh := domain.NewSession(account.Subscription)
		if err := s.sessions.Put(ctx, account.ID, fresh); err != nil {
			return domain.Session{}, err
		}
		return fresh, nil
	}
	return *sess, nil
}

func (s *WalletService) Me(ctx context.Context, accountID string) (*domain.Account, *domain.Session, error) {
	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, nil, err
	}
	sess, err := s.session(ctx, account)
	if err != nil {
		return nil, nil, err
	}
	return account, &sess, nil
}

// PatchProfile shallow-merges the non-empty patch fields into the account.
func (s *WalletService) PatchProfile(ctx context.Context, accountID string, patch ports.ProfilePatch) (*domain.Account, error) {
	mu := s.lock(accountID)
	mu.Lock()
	defer mu.Unlock()

	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if patch.Name != "" {
		account.Name = patch.Name
	}
	if patch.Phone != "" {
		account.Phone = patch.Phone
	}
	if patch.Kind != "" {
		if patch.Kind != domain.KindIndividual && patch.Kind != domain.KindAgency {
			return nil, domain.ErrInvalidCredentials
		}
		account.Kind = patch.Kind
	}
	account.UpdatedAt = time.Now().UTC()

	if err := s.accounts.Replace(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// AdjustBalance applies delta to the wallet under the configured policy.
func (s *WalletService) AdjustBalance(ctx context.Context, accountID string, delta int) (*domain.Account, error) {
	mu := s.lock(accountID)
	mu.Lock()
	defer mu.Unlock()

	return s.adjustBalanceLocked(ctx, accountID, delta)
}

// adjustBalanceLocked is AdjustBalance without taking the stripe; callers
// already holding the account lock use it to keep the cycle atomic.
func (s *WalletService) adjustBalanceLocked(ctx context.Context, accountID string, delta int) (*domain.Account, error) {
	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	next := account.Balance + delta
	if next < 0 && !s.allowNegative {
		return nil, domain.ErrNegativeBalance
	}
	account.Balance = next
	account.UpdatedAt = time.Now().UTC()

	if err := s.accounts.Replace(ctx, account); err != nil {
		return nil, err
	}

	kind := "credit"
	if delta < 0 {
		kind = "debit"
	}
	metrics.WalletTransactionsTotal.WithLabelValues(kind).Inc()
	s.log.Info().Str("account_id", accountID).Int("delta", delta).Int("balance", next).Msg("balance adjusted")
	return account, nil
}

// Recharge credits the wallet after the simulated transaction delay.
func (s *WalletService) Recharge(ctx context.Context, accountID string, amount int) (*domain.Account, error) {
	if err := s.delay.Wait(ctx); err != nil {
		return nil, err
	}
	return s.AdjustBalance(ctx, accountID, amount)
}

// SetSubscription switches the tier and re-derives the boost counter from
// the tier allowance. Any partially used count is discarded; the phone
// unlock counter survives, it only resets with the session.
func (s *WalletService) SetSubscription(ctx context.Context, accountID string, tier domain.SubscriptionTier) (*domain.Account, *domain.Session, error) {
	if !tier.Valid() {
		return nil, nil, domain.ErrInvalidTier
	}
	if err := s.delay.Wait(ctx); err != nil {
		return nil, nil, err
	}

	mu := s.lock(accountID)
	mu.Lock()
	defer mu.Unlock()

	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, nil, err
	}
	account.Subscription = tier
	account.UpdatedAt = time.Now().UTC()
	if err := s.accounts.Replace(ctx, account); err != nil {
		return nil, nil, err
	}

	sess, err := s.session(ctx, account)
	if err != nil {
		return nil, nil, err
	}
	sess.BoostsRemaining = tier.BoostAllowance()
	if err := s.sessions.Put(ctx, accountID, sess); err != nil {
		return nil, nil, err
	}

	metrics.WalletTransactionsTotal.WithLabelValues("subscription").Inc()
	s.log.Info().Str("account_id", accountID).Str("tier", string(tier)).Msg("subscription changed")
	return account, &sess, nil
}

// ToggleFavorite adds the listing when absent and removes it when present.
// Toggling twice restores the original set.
func (s *WalletService) ToggleFavorite(ctx context.Context, accountID, listingID string) (*ports.FavoriteResult, error) {
	mu := s.lock(accountID)
	mu.Lock()
	defer mu.Unlock()

	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	added := true
	next := make([]string, 0, len(account.Favorites)+1)
	for _, id := range account.Favorites {
		if id == listingID {
			added = false
			continue
		}
		next = append(next, id)
	}
	if added {
		next = append(next, listingID)
	}
	account.Favorites = next
	account.UpdatedAt = time.Now().UTC()

	if err := s.accounts.Replace(ctx, account); err != nil {
		return nil, err
	}
	return &ports.FavoriteResult{Added: added, Favorites: account.Favorites}, nil
}

func (s *WalletService) IsFavorite(ctx context.Context, accountID, listingID string) (bool, error) {
	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return false, err
	}
	return account.HasFavorite(listingID), nil
}

// AddAlert appends a saved search with a fresh id, active by default.
func (s *WalletService) AddAlert(ctx context.Context, accountID string, input ports.AlertInput) (*domain.Alert, error) {
	mu := s.lock(accountID)
	mu.Lock()
	defer mu.Unlock()

	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	alert := domain.Alert{
		ID:           uuid.NewString(),
		PropertyType: input.PropertyType,
		Transaction:  input.Transaction,
		Wilaya:       input.Wilaya,
		MaxPrice:     input.MaxPrice,
		IsActive:     true,
	}
	if alert.PropertyType == "" {
		alert.PropertyType = domain.PropertyAll
	}
	if alert.Transaction == "" {
		alert.Transaction = domain.TransactionAll
	}
	account.Alerts = append(account.Alerts, alert)
	account.UpdatedAt = time.Now().UTC()

	if err := s.accounts.Replace(ctx, account); err != nil {
		return nil, err
	}
	return &alert, nil
}

// ToggleAlert flips the active flag. Unknown ids are reported as not found,
// never as an error.
func (s *WalletService) ToggleAlert(ctx context.Context, accountID, alertID string) (*ports.AlertResult, error) {
	mu := s.lock(accountID)
	mu.Lock()
	defer mu.Unlock()

	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	alert := account.FindAlert(alertID)
	if alert == nil {
		return &ports.AlertResult{Outcome: ports.OutcomeNotFound}, nil
	}
	alert.IsActive = !alert.IsActive
	account.UpdatedAt = time.Now().UTC()

	if err := s.accounts.Replace(ctx, account); err != nil {
		return nil, err
	}
	return &ports.AlertResult{Outcome: ports.OutcomeApplied, Alert: alert}, nil
}

// RemoveAlert filters the saved search out of the account.
func (s *WalletService) RemoveAlert(ctx context.Context, accountID, alertID string) (*ports.AlertResult, error) {
	mu := s.lock(accountID)
	mu.Lock()
	defer mu.Unlock()

	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	found := false
	next := account.Alerts[:0]
	for _, a := range account.Alerts {
		if a.ID == alertID {
			found = true
			continue
		}
		next = append(next, a)
	}
	if !found {
		return &ports.AlertResult{Outcome: ports.OutcomeNotFound}, nil
	}
	account.Alerts = next
	account.UpdatedAt = time.Now().UTC()

	if err := s.accounts.Replace(ctx, account); err != nil {
		return nil, err
	}
	return &ports.AlertResult{Outcome: ports.OutcomeApplied}, nil
}

// ConsumePhoneUnlock grants a reveal from the free quota or the paid tier.
// It never charges the wallet: on denial the caller verifies the balance and
// debits it as a separate step.
func (s *WalletService) ConsumePhoneUnlock(ctx context.Context, accountID string) (*ports.ConsumeResult, error) {
	mu := s.lock(accountID)
	mu.Lock()
	defer mu.Unlock()

	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.Subscription != domain.TierFree {
		// Unlimited tiers bypass the counter entirely.
		return &ports.ConsumeResult{Allowed: true, Source: ports.SourceSubscription}, nil
	}

	sess, err := s.session(ctx, account)
	if err != nil {
		return nil, err
	}
	if sess.PhoneUnlocksUsed >= domain.FreeUnlockQuota {
		return &ports.ConsumeResult{Allowed: false}, nil
	}
	sess.PhoneUnlocksUsed++
	if err := s.sessions.Put(ctx, accountID, sess); err != nil {
		return nil, err
	}
	return &ports.ConsumeResult{
		Allowed:   true,
		Source:    ports.SourceQuota,
		Remaining: domain.FreeUnlockQuota - sess.PhoneUnlocksUsed,
	}, nil
}

// ConsumeBoostCredit takes one credit from the session allowance when any
// remains. Like ConsumePhoneUnlock, it never touches the wallet.
func (s *WalletService) ConsumeBoostCredit(ctx context.Context, accountID string) (*ports.ConsumeResult, error) {
	mu := s.lock(accountID)
	mu.Lock()
	defer mu.Unlock()

	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	sess, err := s.session(ctx, account)
	if err != nil {
		return nil, err
	}
	if sess.BoostsRemaining <= 0 {
		return &ports.ConsumeResult{Allowed: false}, nil
	}
	sess.BoostsRemaining--
	if err := s.sessions.Put(ctx, accountID, sess); err != nil {
		return nil, err
	}
	return &ports.ConsumeResult{
		Allowed:   true,
		Source:    ports.SourceCredit,
		Remaining: sess.BoostsRemaining,
	}, nil
}
