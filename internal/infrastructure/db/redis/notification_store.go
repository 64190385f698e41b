package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Maleklabbaci/DARI-WEBSITE-sub000/internal/core/domain"
)

// notificationCap bounds the per-account notification backlog.
const notificationCap = 100

// NotificationStore keeps alert notifications per account as a capped Redis
// list, newest first. Key format: notifications:<account_id>.
type NotificationStore struct {
	client *redis.Client
}

func NewNotificationStore(client *redis.Client) *NotificationStore {
	return &NotificationStore{client: client}
}

func (s *NotificationStore) Push(ctx context.Context, notification *domain.Notification) error {
	payload, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	key := s.key(notification.AccountID)
	pipe := s.client.TxPipeline()
	pipe.LPush(ctx, key, payload)
	pipe.LTrim(ctx, key, 0, notificationCap-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("push notification: %w", err)
	}
	return nil
}

func (s *NotificationStore) List(ctx context.Context, accountID string, limit int) ([]domain.Notification, error) {
	if limit <= 0 || limit > notificationCap {
		limit = notificationCap
	}

	raw, err := s.client.LRange(ctx, s.key(accountID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	notifications := make([]domain.Notification, 0, len(raw))
	for _, item := range raw {
		var n domain.Notification
		if err := json.Unmarshal([]byte(item), &n); err != nil {
			return nil, fmt.Errorf("decode notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	return notifications, nil
}

func (s *NotificationStore) key(accountID string) string {
	return "notifications:" + accountID
}
