package budget

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/money-manager/backend/internal/application/adapter"
	"github.com/money-manager/backend/internal/domain/entity"
	domainerror "github.com/money-manager/backend/internal/domain/error"
)

// CreateBudgetInput represents the input for budget creation.
type CreateBudgetInput struct {
	UserID    uuid.UUID
	Category  entity.Category
	Amount    decimal.Decimal
	Period    entity.BudgetPeriod // Optional, defaults to monthly
	StartDate time.Time           // Optional, defaults to now
}

// CreateBudgetOutput represents the output of budget creation.
type CreateBudgetOutput struct {
	Budget *entity.Budget
}

// CreateBudgetUseCase handles budget creation logic.
type CreateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	clock      adapter.Clock
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(budgetRepo adapter.BudgetRepository, clock adapter.Clock) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		budgetRepo: budgetRepo,
		clock:      clock,
	}
}

// Execute performs the budget creation.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	if input.Category == "" {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeMissingBudgetFields,
			"please provide category and amount",
			domainerror.ErrInvalidBudgetCategory,
		)
	}
	if err := validateCategory(input.Category); err != nil {
		return nil, err
	}
	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}

	budget := entity.NewBudget(input.UserID, input.Category, input.Amount, input.Period, input.StartDate, uc.clock.Now())
	if err := validatePeriod(budget.Period); err != nil {
		return nil, err
	}

	exists, err := uc.budgetRepo.ExistsActiveByUserAndCategory(ctx, input.UserID, input.Category, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check budget existence: %w", err)
	}
	if exists {
		return nil, budgetAlreadyExists()
	}

	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		// A concurrent create can still win the race; the unique index reports it here.
		if errors.Is(err, domainerror.ErrBudgetAlreadyExists) {
			return nil, budgetAlreadyExists()
		}
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	return &CreateBudgetOutput{Budget: budget}, nil
}
