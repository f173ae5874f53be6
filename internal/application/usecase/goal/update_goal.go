package goal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/money-manager/backend/internal/application/adapter"
)

// UpdateGoalInput represents the input for goal update.
// Nil fields are left unchanged.
type UpdateGoalInput struct {
	GoalID        uuid.UUID
	UserID        uuid.UUID
	Name          *string
	TargetAmount  *decimal.Decimal
	CurrentAmount *decimal.Decimal
	Deadline      *time.Time
	IsCompleted   *bool
}

// UpdateGoalUseCase handles goal update logic.
// A direct update never derives IsCompleted; only an explicit value changes it.
type UpdateGoalUseCase struct {
	goalRepo adapter.GoalRepository
	clock    adapter.Clock
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository, clock adapter.Clock) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo: goalRepo,
		clock:    clock,
	}
}

// Execute performs the goal update.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*GoalOutput, error) {
	goal, err := loadOwnedGoal(ctx, uc.goalRepo, input.GoalID, input.UserID, "update")
	if err != nil {
		return nil, err
	}

	updated := *goal
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, missingName()
		}
		updated.Name = name
	}
	if input.TargetAmount != nil {
		if err := validateAmount("targetAmount", *input.TargetAmount); err != nil {
			return nil, err
		}
		updated.TargetAmount = *input.TargetAmount
	}
	if input.CurrentAmount != nil {
		if err := validateAmount("currentAmount", *input.CurrentAmount); err != nil {
			return nil, err
		}
		updated.CurrentAmount = *input.CurrentAmount
	}
	if input.Deadline != nil {
		deadline := input.Deadline.UTC()
		updated.Deadline = &deadline
	}
	if input.IsCompleted != nil {
		updated.IsCompleted = *input.IsCompleted
	}

	updated.UpdatedAt = uc.clock.Now()
	if err := uc.goalRepo.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return NewGoalOutput(&updated), nil
}
