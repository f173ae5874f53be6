// Package budget contains budget-related use cases.
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

func validateCategory(category entity.Category) error {
	if !entity.IsExpenseCategory(category) {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetCategory,
			fmt.Sprintf("'%s' is not an expense category", category),
			domainerror.ErrInvalidBudgetCategory,
		)
	}
	return nil
}

func validateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"amount must not be negative",
			domainerror.ErrInvalidBudgetAmount,
		)
	}
	return nil
}

func validatePeriod(period entity.BudgetPeriod) error {
	if !period.IsValid() {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetPeriod,
			"period must be 'monthly' or 'yearly'",
			domainerror.ErrInvalidBudgetPeriod,
		)
	}
	return nil
}

func budgetAlreadyExists() error {
	return domainerror.NewBudgetError(
		domainerror.ErrCodeBudgetAlreadyExists,
		"Budget already exists for this category",
		domainerror.ErrBudgetAlreadyExists,
	)
}

// loadOwnedBudget fetches a budget and checks that userID owns it.
func loadOwnedBudget(ctx context.Context, repo adapter.BudgetRepository, budgetID, userID uuid.UUID, action string) (*entity.Budget, error) {
	budget, err := repo.FindByID(ctx, budgetID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeBudgetNotFound,
				"Budget not found",
				domainerror.ErrBudgetNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}

	if !budget.IsOwnedBy(userID) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeUnauthorizedBudgetAccess,
			fmt.Sprintf("Not authorized to %s this budget", action),
			domainerror.ErrUnauthorizedBudgetAccess,
		)
	}
	return budget, nil
}
