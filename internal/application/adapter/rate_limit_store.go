// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"
)

// RateLimitStore counts attempts per key inside a fixed window.
type RateLimitStore interface {
	// Hit records one attempt for key and reports whether it is within limit.
	Hit(ctx context.Context, key string, limit int, window time.Duration) (bool, error)

	// Reset forgets all recorded attempts.
	Reset(ctx context.Context) error
}
