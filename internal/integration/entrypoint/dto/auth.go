// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/money-manager/backend/internal/application/usecase/auth"
	"github.com/money-manager/backend/internal/domain/entity"
)

// SignupRequest represents the request body for user signup.
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest represents the request body for a profile update.
// Omitted fields are left unchanged.
type UpdateProfileRequest struct {
	Name            *string `json:"name,omitempty"`
	Email           *string `json:"email,omitempty"`
	CurrentPassword string  `json:"currentPassword,omitempty"`
	NewPassword     string  `json:"newPassword,omitempty"`
}

// AuthResponse represents the response for signup and login.
type AuthResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// ProfileResponse represents the response for a profile update.
type ProfileResponse struct {
	AuthResponse
	Message string `json:"message"`
}

// UserResponse represents the current user in API responses.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToAuthResponse converts an authenticated identity to an AuthResponse DTO.
func ToAuthResponse(output *auth.AuthOutput) AuthResponse {
	return AuthResponse{
		ID:    output.User.ID.String(),
		Name:  output.User.Name,
		Email: output.User.Email,
		Token: output.Token,
	}
}

// ToUserResponse converts a domain User entity to a UserResponse DTO.
func ToUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
