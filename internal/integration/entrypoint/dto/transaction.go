package dto

import (
	"time"

	"github.com/money-manager/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Type        string   `json:"type" binding:"required,oneof=income expense"`
	Amount      *float64 `json:"amount" binding:"required,min=0"`
	Category    string   `json:"category" binding:"required"`
	Division    string   `json:"division" binding:"required,oneof=Personal Office"`
	Description string   `json:"description,omitempty" binding:"max=200"`
	Date        string   `json:"date,omitempty"`
}

// UpdateTransactionRequest represents the request body for transaction update.
// Omitted fields are left unchanged.
type UpdateTransactionRequest struct {
	Type        *string  `json:"type,omitempty" binding:"omitempty,oneof=income expense"`
	Amount      *float64 `json:"amount,omitempty" binding:"omitempty,min=0"`
	Category    *string  `json:"category,omitempty" binding:"omitempty,min=1"`
	Division    *string  `json:"division,omitempty" binding:"omitempty,oneof=Personal Office"`
	Description *string  `json:"description,omitempty" binding:"omitempty,max=200"`
	Date        *string  `json:"date,omitempty"`
}

// TransactionQuery represents the list and export filters.
type TransactionQuery struct {
	Type      string `form:"type"`
	Category  string `form:"category"`
	Division  string `form:"division"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Division    string    `json:"division"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID.String(),
		UserID:      t.UserID.String(),
		Type:        string(t.Type),
		Amount:      t.Amount.InexactFloat64(),
		Category:    string(t.Category),
		Division:    string(t.Division),
		Description: t.Description,
		Date:        t.Date,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// ToTransactionListResponse converts transactions to their response DTOs.
// An empty result is an empty array, never null.
func ToTransactionListResponse(transactions []*entity.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		responses[i] = ToTransactionResponse(t)
	}
	return responses
}
