package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/money-manager/backend/internal/application/adapter"
	domainerror "github.com/money-manager/backend/internal/domain/error"
)

// AddToGoalInput represents a contribution towards a goal.
type AddToGoalInput struct {
	GoalID uuid.UUID
	UserID uuid.UUID
	Amount decimal.Decimal
}

// AddToGoalUseCase adds a contribution to a goal and marks it completed once the
// target is reached.
type AddToGoalUseCase struct {
	goalRepo adapter.GoalRepository
	clock    adapter.Clock
}

// NewAddToGoalUseCase creates a new AddToGoalUseCase instance.
func NewAddToGoalUseCase(goalRepo adapter.GoalRepository, clock adapter.Clock) *AddToGoalUseCase {
	return &AddToGoalUseCase{
		goalRepo: goalRepo,
		clock:    clock,
	}
}

// Execute performs the contribution.
func (uc *AddToGoalUseCase) Execute(ctx context.Context, input AddToGoalInput) (*GoalOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidContribution,
			"amount must be greater than zero",
			domainerror.ErrInvalidContribution,
		)
	}

	goal, err := loadOwnedGoal(ctx, uc.goalRepo, input.GoalID, input.UserID, "update")
	if err != nil {
		return nil, err
	}

	goal.AddAmount(input.Amount, uc.clock.Now())

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return NewGoalOutput(goal), nil
}
