package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/money-manager/backend/internal/application/adapter"
	"github.com/money-manager/backend/internal/domain/entity"
)

// BudgetOutput is a budget together with its spend in the current window.
type BudgetOutput struct {
	Budget *entity.Budget
	Spend  entity.BudgetSpend
}

// ListBudgetsOutput represents the output of listing budgets.
type ListBudgetsOutput struct {
	Budgets []*BudgetOutput
}

// ListBudgetsUseCase lists the owner's budgets, newest first, with derived spend.
type ListBudgetsUseCase struct {
	budgetRepo      adapter.BudgetRepository
	transactionRepo adapter.TransactionRepository
	clock           adapter.Clock
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(
	budgetRepo adapter.BudgetRepository,
	transactionRepo adapter.TransactionRepository,
	clock adapter.Clock,
) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
		clock:           clock,
	}
}

// Execute performs the budget listing.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, userID uuid.UUID) (*ListBudgetsOutput, error) {
	budgets, err := uc.budgetRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	output := &ListBudgetsOutput{Budgets: make([]*BudgetOutput, 0, len(budgets))}
	if len(budgets) == 0 {
		return output, nil
	}

	now := uc.clock.Now()

	// The yearly window is the widest, so one query covers every budget.
	start := entity.BudgetWindowStart(entity.BudgetPeriodYearly, now)
	expense := entity.TransactionTypeExpense
	expenses, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{
		UserID:    userID,
		Type:      &expense,
		StartDate: &start,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get expenses for budgets: %w", err)
	}

	for _, b := range budgets {
		output.Budgets = append(output.Budgets, &BudgetOutput{
			Budget: b,
			Spend:  entity.ComputeBudgetSpend(b, expenses, now),
		})
	}

	return output, nil
}
