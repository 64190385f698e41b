package service

import (
	"context"
	"time"
)

// TxDelay emulates the latency of a backend transaction before a
// state-changing operation resolves. The business content is what happens at
// resolution, not the delay itself, so the duration is injected: production
// wiring uses the configured value, tests use zero.
type TxDelay time.Duration

// Wait blocks for the configured delay. Unlike the original fire-and-forget
// pending mutation, cancelling ctx aborts the wait before the mutation runs.
func (d TxDelay) Wait(ctx context.Context) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(time.Duration(d))
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
