package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// fraudCounterTTL keeps stale daily totals from accumulating. Two days
// covers the active window plus clock skew around the day boundary.
const fraudCounterTTL = 48 * time.Hour

// FraudCounterStore implements ports.FraudCounterStore using per-day
// INCRBY counters.
type FraudCounterStore struct {
	client *goredis.Client
	prefix string
}

// NewFraudCounterStore creates a new Redis-backed fraud counter store.
func NewFraudCounterStore(client *goredis.Client) *FraudCounterStore {
	return &FraudCounterStore{
		client: client,
		prefix: "fraud:daily:",
	}
}

// AddDailyTotal adds amount to the running total for a user and day,
// returning the new total.
func (s *FraudCounterStore) AddDailyTotal(ctx context.Context, user string, dayID int64, amount int64) (int64, error) {
	key := fmt.Sprintf("%s%s:%d", s.prefix, user, dayID)

	total, err := s.client.IncrBy(ctx, key, amount).Result()
	if err != nil {
		return 0, fmt.Errorf("redis fraud counter incr: %w", err)
	}

	// Set expiry only when the counter is fresh
	if total == amount {
		s.client.Expire(ctx, key, fraudCounterTTL)
	}

	return total, nil
}
