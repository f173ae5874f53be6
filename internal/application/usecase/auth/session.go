package auth

import (
	"context"
	"fmt"

	"github.com/money-manager/backend/internal/application/adapter"
	"github.com/money-manager/backend/internal/domain/entity"
)

// AuthOutput is a user together with a freshly issued session token.
type AuthOutput struct {
	Token string
	User  *entity.User
}

func issueSession(ctx context.Context, tokens adapter.TokenService, user *entity.User) (*AuthOutput, error) {
	token, err := tokens.GenerateToken(ctx, user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &AuthOutput{Token: token, User: user}, nil
}
