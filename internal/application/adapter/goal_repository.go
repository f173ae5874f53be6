package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/money-manager/backend/internal/domain/entity"
)

// GoalRepository stores savings goals. Lookups never return soft-deleted rows.
type GoalRepository interface {
	Create(ctx context.Context, goal *entity.Goal) error

	// FindByID returns ErrGoalNotFound for unknown or deleted goals.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)

	// FindByUserID lists the owner's goals, newest first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error)

	// Update saves contributions, completion and edits.
	Update(ctx context.Context, goal *entity.Goal) error
	Delete(ctx context.Context, id uuid.UUID) error
}
