package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/money-manager/backend/internal/application/adapter"
	"github.com/money-manager/backend/internal/integration/adapters"
)

type staticTokenService struct {
	userID uuid.UUID
}

func (s staticTokenService) GenerateToken(context.Context, uuid.UUID, string) (string, error) {
	return "good", nil
}

func (s staticTokenService) ValidateToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	if token != "good" {
		return nil, errors.New("bad token")
	}
	return &adapter.TokenClaims{UserID: s.userID, Email: "asha@example.com"}, nil
}

type failingStore struct{}

func (failingStore) Hit(context.Context, string, int, time.Duration) (bool, error) {
	return false, errors.New("connection refused")
}

func (failingStore) Reset(context.Context) error { return nil }

func init() {
	gin.SetMode(gin.TestMode)
}

func TestAuthenticate(t *testing.T) {
	userID := uuid.New()
	engine := gin.New()
	engine.GET("/private", NewAuthMiddleware(staticTokenService{userID: userID}).Authenticate(), func(c *gin.Context) {
		id, ok := GetUserIDFromContext(c)
		assert.True(t, ok)
		c.String(http.StatusOK, id.String())
	})

	tests := []struct {
		name     string
		header   string
		wantCode int
		wantBody string
	}{
		{"missing header", "", http.StatusUnauthorized, "Not authorized, no token"},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, "Not authorized, no token"},
		{"empty bearer", "Bearer ", http.StatusUnauthorized, "Not authorized, no token"},
		{"invalid token", "Bearer nope", http.StatusUnauthorized, "Not authorized, token failed"},
		{"valid token", "Bearer good", http.StatusOK, userID.String()},
		{"lower-case scheme", "bearer good", http.StatusOK, userID.String()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			engine.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestRateLimiter(t *testing.T) {
	login := func(limiter *RateLimiter) int {
		engine := gin.New()
		engine.POST("/login", limiter.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", nil))
		return rec.Code
	}

	t.Run("blocks after the limit", func(t *testing.T) {
		limiter := NewRateLimiter(adapters.NewMemoryRateLimitStore(), 2, time.Minute, true)

		assert.Equal(t, http.StatusOK, login(limiter))
		assert.Equal(t, http.StatusOK, login(limiter))
		assert.Equal(t, http.StatusTooManyRequests, login(limiter))

		limiter.Reset()
		assert.Equal(t, http.StatusOK, login(limiter))
	})

	t.Run("disabled limiter never blocks", func(t *testing.T) {
		limiter := NewRateLimiter(adapters.NewMemoryRateLimitStore(), 1, time.Minute, false)
		for i := 0; i < 3; i++ {
			assert.Equal(t, http.StatusOK, login(limiter))
		}
	})

	t.Run("store failure lets requests through", func(t *testing.T) {
		limiter := NewRateLimiter(failingStore{}, 1, time.Minute, true)
		assert.Equal(t, http.StatusOK, login(limiter))
	})
}
