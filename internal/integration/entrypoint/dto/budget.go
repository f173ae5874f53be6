package dto

import (
	"time"

	"github.com/money-manager/backend/internal/application/usecase/budget"
	"github.com/money-manager/backend/internal/domain/entity"
)

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	Category  string   `json:"category" binding:"required"`
	Amount    *float64 `json:"amount" binding:"required,min=0"`
	Period    string   `json:"period,omitempty" binding:"omitempty,oneof=monthly yearly"`
	StartDate string   `json:"startDate,omitempty"`
}

// UpdateBudgetRequest represents the request body for budget update.
// Omitted fields are left unchanged.
type UpdateBudgetRequest struct {
	Category *string  `json:"category,omitempty" binding:"omitempty,min=1"`
	Amount   *float64 `json:"amount,omitempty" binding:"omitempty,min=0"`
	Period   *string  `json:"period,omitempty" binding:"omitempty,oneof=monthly yearly"`
	IsActive *bool    `json:"isActive,omitempty"`
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Category  string    `json:"category"`
	Amount    float64   `json:"amount"`
	Period    string    `json:"period"`
	StartDate time.Time `json:"startDate"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BudgetWithSpendResponse represents a listed budget with its current spend.
type BudgetWithSpendResponse struct {
	BudgetResponse
	Spent      float64 `json:"spent"`
	Remaining  float64 `json:"remaining"`
	Percentage float64 `json:"percentage"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(b *entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:        b.ID.String(),
		UserID:    b.UserID.String(),
		Category:  string(b.Category),
		Amount:    b.Amount.InexactFloat64(),
		Period:    string(b.Period),
		StartDate: b.StartDate,
		IsActive:  b.IsActive,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// ToBudgetListResponse converts listed budgets to their response DTOs.
func ToBudgetListResponse(output *budget.ListBudgetsOutput) []BudgetWithSpendResponse {
	responses := make([]BudgetWithSpendResponse, len(output.Budgets))
	for i, b := range output.Budgets {
		responses[i] = BudgetWithSpendResponse{
			BudgetResponse: ToBudgetResponse(b.Budget),
			Spent:          b.Spend.Spent.InexactFloat64(),
			Remaining:      b.Spend.Remaining.InexactFloat64(),
			Percentage:     b.Spend.Percentage.InexactFloat64(),
		}
	}
	return responses
}
