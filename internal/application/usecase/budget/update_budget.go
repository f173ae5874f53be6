package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/money-manager/backend/internal/application/adapter"
	"github.com/money-manager/backend/internal/domain/entity"
	domainerror "github.com/money-manager/backend/internal/domain/error"
)

// UpdateBudgetInput represents the input for budget update.
// Nil fields are left unchanged.
type UpdateBudgetInput struct {
	BudgetID uuid.UUID
	UserID   uuid.UUID
	Category *entity.Category
	Amount   *decimal.Decimal
	Period   *entity.BudgetPeriod
	IsActive *bool
}

// UpdateBudgetOutput represents the output of budget update.
type UpdateBudgetOutput struct {
	Budget *entity.Budget
}

// UpdateBudgetUseCase handles budget update logic.
type UpdateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	clock      adapter.Clock
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(budgetRepo adapter.BudgetRepository, clock adapter.Clock) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		budgetRepo: budgetRepo,
		clock:      clock,
	}
}

// Execute performs the budget update.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	budget, err := loadOwnedBudget(ctx, uc.budgetRepo, input.BudgetID, input.UserID, "update")
	if err != nil {
		return nil, err
	}

	updated := *budget
	if input.Category != nil {
		if err := validateCategory(*input.Category); err != nil {
			return nil, err
		}
		updated.Category = *input.Category
	}
	if input.Amount != nil {
		if err := validateAmount(*input.Amount); err != nil {
			return nil, err
		}
		updated.Amount = *input.Amount
	}
	if input.Period != nil {
		if err := validatePeriod(*input.Period); err != nil {
			return nil, err
		}
		updated.Period = *input.Period
	}
	if input.IsActive != nil {
		updated.IsActive = *input.IsActive
	}

	// Only a budget that ends up active competes for its category.
	if updated.IsActive && (!budget.IsActive || updated.Category != budget.Category) {
		exists, err := uc.budgetRepo.ExistsActiveByUserAndCategory(ctx, input.UserID, updated.Category, &updated.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check budget existence: %w", err)
		}
		if exists {
			return nil, budgetAlreadyExists()
		}
	}

	updated.UpdatedAt = uc.clock.Now()
	if err := uc.budgetRepo.Update(ctx, &updated); err != nil {
		if errors.Is(err, domainerror.ErrBudgetAlreadyExists) {
			return nil, budgetAlreadyExists()
		}
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	return &UpdateBudgetOutput{Budget: &updated}, nil
}
