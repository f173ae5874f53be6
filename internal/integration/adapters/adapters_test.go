package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("unit-test-secret", time.Hour)
	userID := uuid.New()

	token, err := svc.GenerateToken(context.Background(), userID, "asha@example.com")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "asha@example.com", claims.Email)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, 5*time.Second)
}

func TestTokenService_Rejects(t *testing.T) {
	svc := NewTokenService("unit-test-secret", time.Hour)
	userID := uuid.New()

	t.Run("wrong secret", func(t *testing.T) {
		token, err := NewTokenService("other-secret", time.Hour).GenerateToken(context.Background(), userID, "a@b.co")
		require.NoError(t, err)

		_, err = svc.ValidateToken(context.Background(), token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := NewTokenService("unit-test-secret", -time.Minute).GenerateToken(context.Background(), userID, "a@b.co")
		require.NoError(t, err)

		_, err = svc.ValidateToken(context.Background(), token)
		assert.Error(t, err)
	})

	t.Run("foreign issuer", func(t *testing.T) {
		claims := SessionClaims{
			UserID: userID.String(),
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "someone-else",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("unit-test-secret"))
		require.NoError(t, err)

		_, err = svc.ValidateToken(context.Background(), token)
		assert.Error(t, err)
	})

	t.Run("no expiry", func(t *testing.T) {
		claims := SessionClaims{
			UserID:           userID.String(),
			RegisteredClaims: jwt.RegisteredClaims{Issuer: tokenIssuer},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("unit-test-secret"))
		require.NoError(t, err)

		_, err = svc.ValidateToken(context.Background(), token)
		assert.Error(t, err)
	})

	t.Run("other algorithm", func(t *testing.T) {
		claims := SessionClaims{
			UserID: userID.String(),
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    tokenIssuer,
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("unit-test-secret"))
		require.NoError(t, err)

		_, err = svc.ValidateToken(context.Background(), token)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken(context.Background(), "not-a-jwt")
		assert.Error(t, err)
	})
}

func TestPasswordService(t *testing.T) {
	svc := NewPasswordService(bcrypt.MinCost)

	assert.Error(t, svc.ValidatePasswordStrength("12345"))
	assert.NoError(t, svc.ValidatePasswordStrength("123456"))
	assert.NoError(t, svc.ValidatePasswordStrength("pässwö"))

	hash, err := svc.HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)
	assert.NoError(t, svc.VerifyPassword(hash, "secret1"))
	assert.Error(t, svc.VerifyPassword(hash, "secret2"))

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestPasswordService_OutOfRangeCost(t *testing.T) {
	svc := NewPasswordService(99)

	hash, err := svc.HashPassword("secret1")
	require.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
