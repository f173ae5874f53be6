package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/money-manager/backend/internal/application/adapter"
	"github.com/money-manager/backend/internal/domain/entity"
)

// ListTransactionsInput represents the input for listing transactions.
// Every filter is optional.
type ListTransactionsInput struct {
	UserID    uuid.UUID
	Type      *entity.TransactionType
	Category  *entity.Category
	Division  *entity.Division
	StartDate *time.Time
	EndDate   *time.Time
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*entity.Transaction
}

// ListTransactionsUseCase handles listing the owner's transactions, newest first.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction listing.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	filter, err := input.toFilter()
	if err != nil {
		return nil, err
	}

	transactions, err := uc.transactionRepo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &ListTransactionsOutput{Transactions: transactions}, nil
}

func (input ListTransactionsInput) toFilter() (adapter.TransactionFilter, error) {
	if input.Type != nil && !input.Type.IsValid() {
		return adapter.TransactionFilter{}, invalidFilter("type must be 'income' or 'expense'")
	}
	if input.Category != nil && !isKnownCategory(*input.Category) {
		return adapter.TransactionFilter{}, invalidFilter(fmt.Sprintf("unknown category '%s'", *input.Category))
	}
	if input.Division != nil && !input.Division.IsValid() {
		return adapter.TransactionFilter{}, invalidFilter("division must be 'Personal' or 'Office'")
	}
	if input.StartDate != nil && input.EndDate != nil && input.EndDate.Before(*input.StartDate) {
		return adapter.TransactionFilter{}, invalidFilter("endDate must not be before startDate")
	}

	return adapter.TransactionFilter{
		UserID:    input.UserID,
		Type:      input.Type,
		Category:  input.Category,
		Division:  input.Division,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Order:     adapter.SortByDateDesc,
	}, nil
}
