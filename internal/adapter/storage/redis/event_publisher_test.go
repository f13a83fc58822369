package redis

import (
	"context"
	"encoding/json"
	"testing"

	"spendguard/internal/core/domain"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventPublisher_Publish(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	pub := NewEventPublisher(client, "spendguard:events", 0, zerolog.Nop())
	ctx := context.Background()

	event := domain.LimitUpdated(12, domain.SpendingLimit{
		User:         "alice",
		MonthlyLimit: 5000,
		Category:     "groceries",
	})
	require.NoError(t, pub.Publish(ctx, event))

	entries, err := client.XRange(ctx, "spendguard:events", "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.Equal(t, "limits.limit_updated", entries[0].Values["topic"])

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(entries[0].Values["payload"].(string)), &payload))
	assert.Equal(t, "alice", payload["user"])
	assert.Equal(t, float64(5000), payload["monthly_limit"])
	assert.Equal(t, "groceries", payload["category"])
}

func TestEventPublisher_PreservesOrder(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	pub := NewEventPublisher(client, "spendguard:events", 0, zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, pub.Publish(ctx, domain.BatchStarted(1, 2)))
	require.NoError(t, pub.Publish(ctx, domain.LimitUpdated(1, domain.SpendingLimit{User: "alice", MonthlyLimit: 5000})))
	require.NoError(t, pub.Publish(ctx, domain.BatchCompleted(1, 1, 0, 5000)))

	entries, err := client.XRange(ctx, "spendguard:events", "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "limits.batch_started", entries[0].Values["topic"])
	assert.Equal(t, "limits.limit_updated", entries[1].Values["topic"])
	assert.Equal(t, "limits.batch_completed", entries[2].Values["topic"])
}
