// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Goal represents a savings target in the Money Manager system.
type Goal struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Deadline      *time.Time
	IsCompleted   bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time // Soft-delete support
}

// NewGoal creates a new Goal entity created at now.
func NewGoal(userID uuid.UUID, name string, targetAmount, currentAmount decimal.Decimal, deadline *time.Time, now time.Time) *Goal {
	now = now.UTC()

	if deadline != nil {
		d := deadline.UTC()
		deadline = &d
	}

	return &Goal{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          strings.TrimSpace(name),
		TargetAmount:  targetAmount,
		CurrentAmount: currentAmount,
		Deadline:      deadline,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// IsOwnedBy reports whether the goal belongs to userID.
func (g *Goal) IsOwnedBy(userID uuid.UUID) bool {
	return g.UserID == userID
}

// AddAmount increases the saved amount and marks the goal completed once the
// target is reached. Completion is never reverted here.
func (g *Goal) AddAmount(amount decimal.Decimal, now time.Time) {
	g.CurrentAmount = g.CurrentAmount.Add(amount)
	if g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount) {
		g.IsCompleted = true
	}
	g.UpdatedAt = now.UTC()
}

// GoalProgress holds the values derived for a goal at read time.
type GoalProgress struct {
	Progress  decimal.Decimal // Percentage rounded to one decimal place
	Remaining decimal.Decimal
}

// ComputeGoalProgress derives progress and remaining for goal.
// Progress is zero when the target is zero.
func ComputeGoalProgress(goal *Goal) GoalProgress {
	progress := decimal.Zero
	if !goal.TargetAmount.IsZero() {
		progress = goal.CurrentAmount.Mul(decimal.NewFromInt(100)).Div(goal.TargetAmount).Round(1)
	}

	return GoalProgress{
		Progress:  progress,
		Remaining: goal.TargetAmount.Sub(goal.CurrentAmount),
	}
}
