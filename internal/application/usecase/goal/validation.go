// Package goal contains goal-related use cases.
package goal

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

func validateAmount(field string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalAmount,
			fmt.Sprintf("%s must not be negative", field),
			domainerror.ErrInvalidGoalAmount,
		)
	}
	return nil
}

func missingName() error {
	return domainerror.NewGoalError(
		domainerror.ErrCodeMissingGoalFields,
		"please provide name and targetAmount",
		domainerror.ErrMissingGoalName,
	)
}

// loadOwnedGoal fetches a goal and checks that userID owns it.
func loadOwnedGoal(ctx context.Context, repo adapter.GoalRepository, goalID, userID uuid.UUID, action string) (*entity.Goal, error) {
	goal, err := repo.FindByID(ctx, goalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"Goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}

	if !goal.IsOwnedBy(userID) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeUnauthorizedGoalAccess,
			fmt.Sprintf("Not authorized to %s this goal", action),
			domainerror.ErrUnauthorizedGoalAccess,
		)
	}
	return goal, nil
}
