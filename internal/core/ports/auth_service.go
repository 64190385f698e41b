package ports

import (
	"context"

	"github.com/Maleklabbaci/DARI-WEBSITE-sub000/internal/core/domain"
)

// RegisterInput carries the signup profile.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Kind     string // individual | agency
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.Account, error)
	// Login resolves an account by email/password and re-initialises its
	// session counters. Returns a signed token alongside the account.
	Login(ctx context.Context, email, password string) (string, *domain.Account, error)
	// Logout discards the session snapshot. Irreversible, and never fails on
	// an already-absent session.
	Logout(ctx context.Context, accountID string) error
}
