package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Maleklabbaci/DARI-WEBSITE-sub000/internal/core/domain"
)

// sessionTTL bounds how long derived counters outlive the last login.
const sessionTTL = 24 * time.Hour

// SessionStore keeps the per-account session snapshot and locale preference.
// Key format: session:<account_id> (JSON counters), lang:<account_id>.
type SessionStore struct {
	client *redis.Client
}

func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Put replaces the whole snapshot; counters are never patched in place.
func (s *SessionStore) Put(ctx context.Context, accountID string, session domain.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return s.client.Set(ctx, s.sessionKey(accountID), payload, sessionTTL).Err()
}

// Get returns the snapshot, or nil when the account has no live session.
func (s *SessionStore) Get(ctx context.Context, accountID string) (*domain.Session, error) {
	raw, err := s.client.Get(ctx, s.sessionKey(accountID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	var session domain.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &session, nil
}

func (s *SessionStore) Delete(ctx context.Context, accountID string) error {
	return s.client.Del(ctx, s.sessionKey(accountID)).Err()
}

// PutLocale stores the preferred locale without expiry; the preference
// survives logout.
func (s *SessionStore) PutLocale(ctx context.Context, accountID, locale string) error {
	return s.client.Set(ctx, s.localeKey(accountID), locale, 0).Err()
}

// GetLocale returns the stored preference, or "" when none was saved.
func (s *SessionStore) GetLocale(ctx context.Context, accountID string) (string, error) {
	locale, err := s.client.Get(ctx, s.localeKey(accountID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("get locale: %w", err)
	}
	return locale, nil
}

func (s *SessionStore) sessionKey(accountID string) string {
	return "session:" + accountID
}

func (s *SessionStore) localeKey(accountID string) string {
	return "lang:" + accountID
}
