package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/money-manager/backend/internal/application/adapter"
	domainerror "github.com/money-manager/backend/internal/domain/error"
	"github.com/money-manager/backend/internal/integration/entrypoint/dto"
)

const (
	// defaultMaxAttempts is the default number of allowed attempts per window.
	defaultMaxAttempts = 5
	// defaultWindowDuration is the default time window for rate limiting.
	defaultWindowDuration = 1 * time.Minute
)

// RateLimiter provides IP-based rate limiting on top of a RateLimitStore.
type RateLimiter struct {
	store          adapter.RateLimitStore
	maxAttempts    int
	windowDuration time.Duration
	enabled        bool
}

// NewRateLimiter creates a new rate limiter. Non-positive settings fall back to
// five attempts per minute. A disabled limiter lets every request through.
func NewRateLimiter(store adapter.RateLimitStore, maxAttempts int, windowDuration time.Duration, enabled bool) *RateLimiter {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if windowDuration <= 0 {
		windowDuration = defaultWindowDuration
	}
	return &RateLimiter{
		store:          store,
		maxAttempts:    maxAttempts,
		windowDuration: windowDuration,
		enabled:        enabled,
	}
}

// Middleware returns a Gin middleware handler that enforces rate limiting.
// Store failures let the request through.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.enabled {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		allowed, err := rl.store.Hit(c.Request.Context(), "login:"+clientIP, rl.maxAttempts, rl.windowDuration)
		if err != nil {
			slog.Warn("rate limit store unavailable", "error", err)
			c.Next()
			return
		}

		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Message: "Too many login attempts. Please try again later.",
				Code:    string(domainerror.ErrCodeRateLimited),
			})
			return
		}

		c.Next()
	}
}

// Reset clears the limiter state.
func (rl *RateLimiter) Reset() {
	if err := rl.store.Reset(context.Background()); err != nil {
		slog.Warn("failed to reset rate limit store", "error", err)
	}
}
