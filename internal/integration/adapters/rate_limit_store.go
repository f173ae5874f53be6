package adapters

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/money-manager/backend/internal/application/adapter"
)

const rateLimitKeyPrefix = "ratelimit:"

// rateLimitEntry tracks attempts for a single key.
type rateLimitEntry struct {
	attempts  int
	resetTime time.Time
}

// memoryRateLimitStore keeps fixed windows in process memory.
type memoryRateLimitStore struct {
	mu      sync.Mutex
	entries map[string]*rateLimitEntry
	now     func() time.Time
}

// NewMemoryRateLimitStore creates a rate limit store local to this process.
func NewMemoryRateLimitStore() adapter.RateLimitStore {
	return &memoryRateLimitStore{
		entries: make(map[string]*rateLimitEntry),
		now:     time.Now,
	}
}

// Hit records one attempt for key and reports whether it is within limit.
func (s *memoryRateLimitStore) Hit(_ context.Context, key string, limit int, window time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.evictExpired(now)

	entry, exists := s.entries[key]
	if !exists {
		s.entries[key] = &rateLimitEntry{attempts: 1, resetTime: now.Add(window)}
		return true, nil
	}

	entry.attempts++
	return entry.attempts <= limit, nil
}

// Reset forgets all recorded attempts.
func (s *memoryRateLimitStore) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]*rateLimitEntry)
	return nil
}

func (s *memoryRateLimitStore) evictExpired(now time.Time) {
	for key, entry := range s.entries {
		if !now.Before(entry.resetTime) {
			delete(s.entries, key)
		}
	}
}

// redisRateLimitStore shares fixed windows between instances through Redis.
type redisRateLimitStore struct {
	client *redis.Client
}

// NewRedisRateLimitStore creates a rate limit store backed by Redis.
func NewRedisRateLimitStore(client *redis.Client) adapter.RateLimitStore {
	return &redisRateLimitStore{
		client: client,
	}
}

// Hit records one attempt for key and reports whether it is within limit.
// The first attempt of a window sets its expiry.
func (s *redisRateLimitStore) Hit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	redisKey := rateLimitKeyPrefix + key

	attempts, err := s.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}

	if attempts == 1 {
		if err := s.client.Expire(ctx, redisKey, window).Err(); err != nil {
			return false, fmt.Errorf("failed to set rate limit window: %w", err)
		}
	}

	return attempts <= int64(limit), nil
}

// Reset forgets all recorded attempts.
func (s *redisRateLimitStore) Reset(ctx context.Context) error {
	iter := s.client.Scan(ctx, 0, rateLimitKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to reset rate limit counter: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan rate limit counters: %w", err)
	}
	return nil
}
