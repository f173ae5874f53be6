// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/money-manager/backend/internal/application/adapter"
	"github.com/money-manager/backend/internal/domain/entity"
	domainerror "github.com/money-manager/backend/internal/domain/error"
)

// UpdateProfileInput represents the input for a profile update.
// Nil or blank fields are left unchanged.
type UpdateProfileInput struct {
	UserID          uuid.UUID
	Name            *string
	Email           *string
	CurrentPassword string
	NewPassword     string
}

// UpdateProfileUseCase handles profile and password changes.
type UpdateProfileUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
	clock           adapter.Clock
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
	clock adapter.Clock,
) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		clock:           clock,
	}
}

// Execute validates every requested change before applying any of them.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*AuthOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeUserNotFound,
				"User not found",
				domainerror.ErrUserNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	name := user.Name
	if input.Name != nil && strings.TrimSpace(*input.Name) != "" {
		name = strings.TrimSpace(*input.Name)
	}

	email := user.Email
	if input.Email != nil && strings.TrimSpace(*input.Email) != "" {
		email = entity.NormalizeEmail(*input.Email)
		if email != user.Email {
			if !isValidEmail(email) {
				return nil, domainerror.NewAuthError(
					domainerror.ErrCodeInvalidEmail,
					"invalid email format",
					domainerror.ErrInvalidEmail,
				)
			}
			if err := uc.ensureEmailAvailable(ctx, email, user.ID); err != nil {
				return nil, err
			}
		}
	}

	passwordHash := user.PasswordHash
	if input.NewPassword != "" {
		passwordHash, err = uc.changePassword(user, input.CurrentPassword, input.NewPassword)
		if err != nil {
			return nil, err
		}
	}

	user.Name = name
	user.Email = email
	user.PasswordHash = passwordHash
	user.UpdatedAt = uc.clock.Now()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, domainerror.ErrEmailInUse) {
			return nil, errEmailInUse()
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return issueSession(ctx, uc.tokenService, user)
}

func (uc *UpdateProfileUseCase) ensureEmailAvailable(ctx context.Context, email string, userID uuid.UUID) error {
	existing, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check email availability: %w", err)
	}
	if existing.ID != userID {
		return errEmailInUse()
	}
	return nil
}

func errEmailInUse() error {
	return domainerror.NewAuthError(
		domainerror.ErrCodeEmailInUse,
		"Email already in use",
		domainerror.ErrEmailInUse,
	)
}

func (uc *UpdateProfileUseCase) changePassword(user *entity.User, currentPassword, newPassword string) (string, error) {
	if currentPassword == "" {
		return "", domainerror.NewAuthError(
			domainerror.ErrCodeCurrentPasswordRequired,
			"Please provide current password",
			domainerror.ErrCurrentPasswordRequired,
		)
	}

	if err := uc.passwordService.VerifyPassword(user.PasswordHash, currentPassword); err != nil {
		return "", domainerror.NewAuthError(
			domainerror.ErrCodeIncorrectPassword,
			"Current password is incorrect",
			domainerror.ErrIncorrectPassword,
		)
	}

	if err := uc.passwordService.ValidatePasswordStrength(newPassword); err != nil {
		return "", domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			"New password must be at least 6 characters",
			domainerror.ErrWeakPassword,
		)
	}

	hash, err := uc.passwordService.HashPassword(newPassword)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return hash, nil
}
