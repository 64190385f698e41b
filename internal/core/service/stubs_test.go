package service

import (
	"context"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Maleklabbaci/DARI-WEBSITE-sub000/internal/core/domain"
)

// In-memory doubles for the repositories and stores. They clone on the way
// in and out so tests catch missing Replace calls.

type stubAccountRepo struct {
	mu       sync.Mutex
	accounts map[string]*domain.Account
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{accounts: make(map[string]*domain.Account)}
}

func cloneAccount(a *domain.Account) *domain.Account {
	if a == nil {
		return nil
	}
	clone := *a
	clone.Favorites = append([]string(nil), a.Favorites...)
	clone.Alerts = append([]domain.Alert(nil), a.Alerts...)
	return &clone
}

func (r *stubAccountRepo) Create(_ context.Context, account *domain.Account) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.Email == account.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.accounts[account.ID] = cloneAccount(account)
	return cloneAccount(account), nil
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.Email == email {
			return cloneAccount(a), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubAccountRepo) FindByID(_ context.Context, id string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneAccount(a), nil
}

func (r *stubAccountRepo) Replace(_ context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[account.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.accounts[account.ID] = cloneAccount(account)
	return nil
}

func (r *stubAccountRepo) ListWithActiveAlerts(_ context.Context) ([]*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Account, 0)
	for _, a := range r.accounts {
		for _, alert := range a.Alerts {
			if alert.IsActive {
				out = append(out, cloneAccount(a))
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type stubSessionStore struct {
	mu       sync.Mutex
	sessions map[string]domain.Session
	locales  map[string]string
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{
		sessions: make(map[string]domain.Session),
		locales:  make(map[string]string),
	}
}

func (s *stubSessionStore) Put(_ context.Context, accountID string, session domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[accountID] = session
	return nil
}

func (s *stubSessionStore) Get(_ context.Context, accountID string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[accountID]
	if !ok {
		return nil, nil
	}
	return &sess, nil
}

func (s *stubSessionStore) Delete(_ context.Context, accountID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, accountID)
	return nil
}

func (s *stubSessionStore) PutLocale(_ context.Context, accountID, locale string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locales[accountID] = locale
	return nil
}

func (s *stubSessionStore) GetLocale(_ context.Context, accountID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locales[accountID], nil
}

type stubListingRepo struct {
	mu       sync.Mutex
	listings []domain.Listing
}

func newStubListingRepo(listings ...domain.Listing) *stubListingRepo {
	return &stubListingRepo{listings: listings}
}

func (r *stubListingRepo) Insert(_ context.Context, listing *domain.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listings = append(r.listings, *listing)
	return nil
}

func (r *stubListingRepo) FindByID(_ context.Context, id string) (*domain.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.listings {
		if r.listings[i].ID == id {
			l := r.listings[i]
			return &l, nil
		}
	}
	return nil, domain.ErrListingNotFound
}

func (r *stubListingRepo) All(_ context.Context) ([]domain.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Listing(nil), r.listings...), nil
}

func (r *stubListingRepo) SetBoosted(_ context.Context, id string, boosted bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.listings {
		if r.listings[i].ID == id {
			r.listings[i].IsBoosted = boosted
			return nil
		}
	}
	return domain.ErrListingNotFound
}

type stubBoostRepo struct {
	mu     sync.Mutex
	boosts []domain.Boost
}

func newStubBoostRepo() *stubBoostRepo {
	return &stubBoostRepo{}
}

func (r *stubBoostRepo) Insert(_ context.Context, boost *domain.Boost) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.boosts = append(r.boosts, *boost)
	return nil
}

func (r *stubBoostRepo) ListByAccount(_ context.Context, accountID string) ([]domain.Boost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Boost, 0)
	for _, b := range r.boosts {
		if b.AccountID == accountID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *stubBoostRepo) FindActiveByListing(_ context.Context, listingID string) (*domain.Boost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.boosts {
		if r.boosts[i].ListingID == listingID && r.boosts[i].Status == domain.BoostActive {
			b := r.boosts[i]
			return &b, nil
		}
	}
	return nil, nil
}

type stubThreadRepo struct {
	mu      sync.Mutex
	threads map[string]*domain.Thread
}

func newStubThreadRepo() *stubThreadRepo {
	return &stubThreadRepo{threads: make(map[string]*domain.Thread)}
}

func cloneThread(t *domain.Thread) *domain.Thread {
	if t == nil {
		return nil
	}
	clone := *t
	clone.Messages = append([]domain.Message(nil), t.Messages...)
	clone.Unread = make(map[string]int, len(t.Unread))
	for k, v := range t.Unread {
		clone.Unread[k] = v
	}
	return &clone
}

func (r *stubThreadRepo) Insert(_ context.Context, thread *domain.Thread) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.threads[thread.ID] = cloneThread(thread)
	return nil
}

func (r *stubThreadRepo) FindByID(_ context.Context, id string) (*domain.Thread, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.threads[id]
	if !ok {
		return nil, domain.ErrThreadNotFound
	}
	return cloneThread(t), nil
}

func (r *stubThreadRepo) FindByListingAndBuyer(_ context.Context, listingID, buyerID string) (*domain.Thread, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.threads {
		if t.ListingID == listingID && t.BuyerID == buyerID {
			return cloneThread(t), nil
		}
	}
	return nil, domain.ErrThreadNotFound
}

func (r *stubThreadRepo) ListByParticipant(_ context.Context, accountID string) ([]domain.Thread, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Thread, 0)
	for _, t := range r.threads {
		if t.HasParticipant(accountID) {
			out = append(out, *cloneThread(t))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

func (r *stubThreadRepo) Replace(_ context.Context, thread *domain.Thread) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.threads[thread.ID]; !ok {
		return domain.ErrThreadNotFound
	}
	r.threads[thread.ID] = cloneThread(thread)
	return nil
}

type stubNotificationStore struct {
	mu            sync.Mutex
	notifications map[string][]domain.Notification
}

func newStubNotificationStore() *stubNotificationStore {
	return &stubNotificationStore{notifications: make(map[string][]domain.Notification)}
}

func (s *stubNotificationStore) Push(_ context.Context, n *domain.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications[n.AccountID] = append([]domain.Notification{*n}, s.notifications[n.AccountID]...)
	return nil
}

func (s *stubNotificationStore) List(_ context.Context, accountID string, limit int) ([]domain.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.notifications[accountID]
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return append([]domain.Notification(nil), out...), nil
}

type stubGenerator struct {
	text string
	err  error
}

func (g *stubGenerator) Generate(_ context.Context, _ string) (string, error) {
	return g.text, g.err
}

type stubQueue struct {
	mu       sync.Mutex
	enqueued []domain.Listing
}

func (q *stubQueue) Enqueue(listing domain.Listing) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.enqueued = append(q.enqueued, listing)
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}
