package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGoal_AddAmount(t *testing.T) {
	created := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
	goal := NewGoal(uuid.New(), "Laptop", decimal.NewFromInt(1000), decimal.NewFromInt(200), nil, created)
	assert.Equal(t, created, goal.CreatedAt)

	goal.AddAmount(decimal.NewFromInt(300), created.Add(time.Hour))
	assert.False(t, goal.IsCompleted)
	assert.Equal(t, "50", ComputeGoalProgress(goal).Progress.String())
	assert.Equal(t, created.Add(time.Hour), goal.UpdatedAt)

	goal.AddAmount(decimal.NewFromInt(500), created.Add(2*time.Hour))
	assert.True(t, goal.IsCompleted, "reaching the target completes the goal")
	assert.Equal(t, created, goal.CreatedAt)

	// A later direct reduction does not reopen the goal.
	goal.CurrentAmount = decimal.NewFromInt(10)
	assert.True(t, goal.IsCompleted)
}

func TestComputeGoalProgress(t *testing.T) {
	tests := []struct {
		name          string
		target        int64
		current       int64
		wantProgress  string
		wantRemaining string
	}{
		{"nothing saved", 300, 0, "0", "300"},
		{"one third", 300, 100, "33.3", "200"},
		{"two thirds", 300, 200, "66.7", "100"},
		{"over target", 100, 150, "150", "-50"},
		{"zero target", 0, 40, "0", "-40"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goal := &Goal{TargetAmount: decimal.NewFromInt(tt.target), CurrentAmount: decimal.NewFromInt(tt.current)}

			p := ComputeGoalProgress(goal)

			assert.Equal(t, tt.wantProgress, p.Progress.String())
			assert.Equal(t, tt.wantRemaining, p.Remaining.String())
		})
	}
}
