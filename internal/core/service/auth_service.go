package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Maleklabbaci/DARI-WEBSITE-sub000/internal/core/domain"
	"github.com/Maleklabbaci/DARI-WEBSITE-sub000/internal/core/ports"
)

// minPasswordLen is the minimal credential length policy.
const minPasswordLen = 6

// AuthService implements registration, login and logout.
type AuthService struct {
	accounts  ports.AccountRepository
	sessions  ports.SessionStore
	delay     TxDelay
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(accounts ports.AccountRepository, sessions ports.SessionStore, delay TxDelay, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{accounts: accounts, sessions: sessions, delay: delay, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Register creates a new account seeded with the welcome balance, an empty
// favorites set and no alerts, on the free tier.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.Account, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	if email == "" || len(input.Password) < minPasswordLen {
		return nil, domain.ErrInvalidCredentials
	}
	kind := input.Kind
	if kind == "" {
		kind = domain.KindIndividual
	}
	if kind != domain.KindIndividual && kind != domain.KindAgency {
		return nil, domain.ErrInvalidCredentials
	}

	if err := s.delay.Wait(ctx); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := &domain.Account{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Email:        email,
		Phone:        input.Phone,
		Kind:         kind,
		PasswordHash: string(hash),
		Balance:      domain.WelcomeBalance,
		Subscription: domain.TierFree,
		Favorites:    []string{},
		Alerts:       []domain.Alert{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.accounts.Create(ctx, account)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Put(ctx, created.ID, domain.NewSession(created.Subscription)); err != nil {
		return nil, err
	}
	return created, nil
}

// Login authenticates by email and password and re-initialises the session
// counters, resetting the phone-unlock count and re-deriving boost credits.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Account, error) {
	if email == "" || len(password) < minPasswordLen {
		return "", nil, domain.ErrInvalidCredentials
	}

	if err := s.delay.Wait(ctx); err != nil {
		return "", nil, err
	}

	account, err := s.accounts.FindByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Unknown emails and bad passwords are indistinguishable to callers.
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	if err := s.sessions.Put(ctx, account.ID, domain.NewSession(account.Subscription)); err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(account)
	if err != nil {
		return "", nil, err
	}
	return token, account, nil
}

// Logout discards the session snapshot. Deleting an absent session is fine.
func (s *AuthService) Logout(ctx context.Context, accountID string) error {
	return s.sessions.Delete(ctx, accountID)
}

func (s *AuthService) generateToken(account *domain.Account) (string, error) {
	claims := jwt.MapClaims{
		"sub":   account.ID,
		"email": account.Email,
		"kind":  account.Kind,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
