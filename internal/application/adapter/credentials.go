// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenClaims represents the claims contained in a session token.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// TokenService issues and checks the bearer tokens handed out at signup and login.
type TokenService interface {
	GenerateToken(ctx context.Context, userID uuid.UUID, email string) (string, error)

	// ValidateToken rejects expired, tampered and malformed tokens.
	ValidateToken(ctx context.Context, token string) (*TokenClaims, error)
}

// PasswordService owns the one-way password digest stored on a user.
// Plain passwords never leave the auth use cases.
type PasswordService interface {
	HashPassword(password string) (string, error)

	// VerifyPassword returns an error unless password produced hashedPassword.
	VerifyPassword(hashedPassword, password string) error

	// ValidatePasswordStrength enforces the minimum length for new passwords.
	ValidatePasswordStrength(password string) error
}
