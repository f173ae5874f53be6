package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/money-manager/backend/internal/domain/entity"
)

// UserRepository stores account holders. Emails are unique and compared
// after normalisation by the caller.
type UserRepository interface {
	// Create fails with ErrEmailAlreadyExists when the address is taken.
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Update persists profile edits and password changes. Moving to an
	// address owned by someone else fails with ErrEmailInUse.
	Update(ctx context.Context, user *entity.User) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
