// Package error defines domain-specific errors for the Money Manager application.
package error

import "errors"

// Authentication domain errors.
var (
	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to sign up with an existing email.
	ErrEmailAlreadyExists = errors.New("user already exists")

	// ErrEmailInUse is returned when a profile update targets another user's email.
	ErrEmailInUse = errors.New("email already in use")

	// ErrInvalidCredentials is returned when login credentials are invalid.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrIncorrectPassword is returned when the current password does not match on a password change.
	ErrIncorrectPassword = errors.New("current password is incorrect")

	// ErrCurrentPasswordRequired is returned when a new password is supplied without the current one.
	ErrCurrentPasswordRequired = errors.New("current password is required to set a new password")

	// ErrInvalidToken is returned when a token is invalid or malformed.
	ErrInvalidToken = errors.New("invalid token")

	// ErrWeakPassword is returned when the provided password does not meet requirements.
	ErrWeakPassword = errors.New("password must be at least 6 characters")

	// ErrInvalidEmail is returned when the provided email format is invalid.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrMissingName is returned when the user name is blank.
	ErrMissingName = errors.New("name is required")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmailExists             AuthErrorCode = "AUTH-010001"
	ErrCodeWeakPassword            AuthErrorCode = "AUTH-010002"
	ErrCodeInvalidEmail            AuthErrorCode = "AUTH-010003"
	ErrCodeMissingFields           AuthErrorCode = "AUTH-010004"
	ErrCodeEmailInUse              AuthErrorCode = "AUTH-010005"
	ErrCodeCurrentPasswordRequired AuthErrorCode = "AUTH-010006"

	// Not found errors (02XXXX)
	ErrCodeUserNotFound AuthErrorCode = "AUTH-020001"

	// Authentication errors (04XXXX)
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-040001"
	ErrCodeIncorrectPassword  AuthErrorCode = "AUTH-040002"
	ErrCodeInvalidToken       AuthErrorCode = "AUTH-040003"
	ErrCodeMissingToken       AuthErrorCode = "AUTH-040004"

	// Throttling errors (05XXXX)
	ErrCodeRateLimited AuthErrorCode = "AUTH-050001"
)

// AuthError carries a AuthErrorCode.
type AuthError = DomainError[AuthErrorCode]

// NewAuthError wraps err with an auth error code.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return newDomainError(code, message, err)
}
