package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/smsportal/console-gateway/internal/core/domain"
)

const defaultDedupWindow = time.Minute

// DecisionDedup remembers recently audited gate decisions in Redis.
// Key format: dedup:gate:<session_id>:<state>:<route>
type DecisionDedup struct {
	client *redis.Client
	window time.Duration
}

// NewDecisionDedup creates a DecisionDedup wrapping the given Redis client.
// A non-positive window falls back to one minute.
func NewDecisionDedup(client *redis.Client, window time.Duration) *DecisionDedup {
	if window <= 0 {
		window = defaultDedupWindow
	}
	return &DecisionDedup{client: client, window: window}
}

// IsDuplicate reports whether the same decision was recorded within the window.
func (d *DecisionDedup) IsDuplicate(ctx context.Context, decision domain.AuthorizationDecision) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(decision)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records the decision (expires after the window).
func (d *DecisionDedup) Mark(ctx context.Context, decision domain.AuthorizationDecision) error {
	return d.client.Set(ctx, d.key(decision), "1", d.window).Err()
}

func (d *DecisionDedup) key(decision domain.AuthorizationDecision) string {
	return fmt.Sprintf("dedup:gate:%s:%s:%s", decision.SessionID, decision.State, decision.Route)
}
