package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRateLimitStore(t *testing.T) {
	ctx := context.Background()
	current := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	store := NewMemoryRateLimitStore().(*memoryRateLimitStore)
	store.now = func() time.Time { return current }

	for i := 0; i < 3; i++ {
		allowed, err := store.Hit(ctx, "10.0.0.1", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed, "attempt %d", i+1)
	}

	allowed, err := store.Hit(ctx, "10.0.0.1", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, _ = store.Hit(ctx, "10.0.0.2", 3, time.Minute)
	assert.True(t, allowed, "keys are counted separately")

	current = current.Add(time.Minute)
	allowed, _ = store.Hit(ctx, "10.0.0.1", 3, time.Minute)
	assert.True(t, allowed, "a new window starts after expiry")

	_, _ = store.Hit(ctx, "10.0.0.1", 1, time.Minute)
	require.NoError(t, store.Reset(ctx))
	allowed, _ = store.Hit(ctx, "10.0.0.1", 1, time.Minute)
	assert.True(t, allowed)
}

func TestRedisRateLimitStore(t *testing.T) {
	ctx := context.Background()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	store := NewRedisRateLimitStore(client)

	for i := 0; i < 2; i++ {
		allowed, err := store.Hit(ctx, "10.0.0.1", 2, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed)
	}

	allowed, err := store.Hit(ctx, "10.0.0.1", 2, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed)

	ttl := server.TTL(rateLimitKeyPrefix + "10.0.0.1")
	assert.Equal(t, time.Minute, ttl)

	server.FastForward(time.Minute)
	allowed, err = store.Hit(ctx, "10.0.0.1", 2, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed, "the counter expires with its window")

	_, _ = store.Hit(ctx, "10.0.0.2", 1, time.Minute)
	require.NoError(t, store.Reset(ctx))
	assert.False(t, server.Exists(rateLimitKeyPrefix+"10.0.0.2"))
	assert.False(t, server.Exists(rateLimitKeyPrefix+"10.0.0.1"))

	server.SetError("READONLY")
	_, err = store.Hit(ctx, "10.0.0.3", 2, time.Minute)
	assert.Error(t, err)
}
