// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/money-manager/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create creates a new budget in the database.
	// It returns domainerror.ErrBudgetAlreadyExists when the active-category constraint rejects the row.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByID retrieves a budget by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error)

	// FindByUserID retrieves all budgets for a given user, newest first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error)

	// ExistsActiveByUserAndCategory checks if the user has an active budget for the category.
	// A non-nil excludeID ignores that budget, which lets an update keep its own category.
	ExistsActiveByUserAndCategory(ctx context.Context, userID uuid.UUID, category entity.Category, excludeID *uuid.UUID) (bool, error)

	// Update updates an existing budget in the database.
	Update(ctx context.Context, budget *entity.Budget) error

	// Delete removes a budget from the database (soft delete).
	Delete(ctx context.Context, id uuid.UUID) error
}
