package dto

import (
	"time"

	"github.com/money-manager/backend/internal/application/usecase/goal"
	"github.com/money-manager/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Name          string   `json:"name" binding:"required,max=100"`
	TargetAmount  *float64 `json:"targetAmount" binding:"required,min=0"`
	CurrentAmount *float64 `json:"currentAmount,omitempty" binding:"omitempty,min=0"`
	Deadline      string   `json:"deadline,omitempty"`
}

// UpdateGoalRequest represents the request body for goal update.
// Omitted fields are left unchanged.
type UpdateGoalRequest struct {
	Name          *string  `json:"name,omitempty" binding:"omitempty,max=100"`
	TargetAmount  *float64 `json:"targetAmount,omitempty" binding:"omitempty,min=0"`
	CurrentAmount *float64 `json:"currentAmount,omitempty" binding:"omitempty,min=0"`
	Deadline      *string  `json:"deadline,omitempty"`
	IsCompleted   *bool    `json:"isCompleted,omitempty"`
}

// AddToGoalRequest represents the request body for a goal contribution.
type AddToGoalRequest struct {
	Amount *float64 `json:"amount" binding:"required,gt=0"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID            string     `json:"id"`
	UserID        string     `json:"userId"`
	Name          string     `json:"name"`
	TargetAmount  float64    `json:"targetAmount"`
	CurrentAmount float64    `json:"currentAmount"`
	Deadline      *time.Time `json:"deadline"`
	IsCompleted   bool       `json:"isCompleted"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// GoalWithProgressResponse represents a goal with its derived progress.
type GoalWithProgressResponse struct {
	GoalResponse
	Progress  float64 `json:"progress"`
	Remaining float64 `json:"remaining"`
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.Goal) GoalResponse {
	return GoalResponse{
		ID:            g.ID.String(),
		UserID:        g.UserID.String(),
		Name:          g.Name,
		TargetAmount:  g.TargetAmount.InexactFloat64(),
		CurrentAmount: g.CurrentAmount.InexactFloat64(),
		Deadline:      g.Deadline,
		IsCompleted:   g.IsCompleted,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}

// ToGoalWithProgressResponse converts a goal and its progress to a response DTO.
func ToGoalWithProgressResponse(output *goal.GoalOutput) GoalWithProgressResponse {
	return GoalWithProgressResponse{
		GoalResponse: ToGoalResponse(output.Goal),
		Progress:     output.Progress.Progress.InexactFloat64(),
		Remaining:    output.Progress.Remaining.InexactFloat64(),
	}
}

// ToGoalListResponse converts listed goals to their response DTOs.
func ToGoalListResponse(output *goal.ListGoalsOutput) []GoalWithProgressResponse {
	responses := make([]GoalWithProgressResponse, len(output.Goals))
	for i, g := range output.Goals {
		responses[i] = ToGoalWithProgressResponse(g)
	}
	return responses
}
