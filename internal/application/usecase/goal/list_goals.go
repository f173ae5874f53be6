package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/money-manager/backend/internal/application/adapter"
	"github.com/money-manager/backend/internal/domain/entity"
)

// GoalOutput is a goal together with its derived progress.
type GoalOutput struct {
	Goal     *entity.Goal
	Progress entity.GoalProgress
}

// NewGoalOutput derives the progress of goal.
func NewGoalOutput(goal *entity.Goal) *GoalOutput {
	return &GoalOutput{
		Goal:     goal,
		Progress: entity.ComputeGoalProgress(goal),
	}
}

// ListGoalsOutput represents the output of listing goals.
type ListGoalsOutput struct {
	Goals []*GoalOutput
}

// ListGoalsUseCase lists the owner's goals, newest first.
type ListGoalsUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goalRepo adapter.GoalRepository) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal listing.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, userID uuid.UUID) (*ListGoalsOutput, error) {
	goals, err := uc.goalRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	output := &ListGoalsOutput{
		Goals: make([]*GoalOutput, 0, len(goals)),
	}
	for _, g := range goals {
		output.Goals = append(output.Goals, NewGoalOutput(g))
	}

	return output, nil
}
