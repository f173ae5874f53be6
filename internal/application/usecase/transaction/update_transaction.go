package transaction

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/money-manager/backend/internal/application/adapter"
	"github.com/money-manager/backend/internal/domain/entity"
	domainerror "github.com/money-manager/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for transaction update.
// Nil fields are left unchanged.
type UpdateTransactionInput struct {
	TransactionID uuid.UUID
	UserID        uuid.UUID
	Type          *entity.TransactionType
	Amount        *decimal.Decimal
	Category      *entity.Category
	Division      *entity.Division
	Description   *string
	Date          *time.Time
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	clock           adapter.Clock
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(transactionRepo adapter.TransactionRepository, clock adapter.Clock) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		clock:           clock,
	}
}

// Execute performs the transaction update. The merged record is validated as a
// whole before anything is written.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	transaction, err := loadOwnedTransaction(ctx, uc.transactionRepo, input.TransactionID, input.UserID, "update")
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	if !transaction.IsEditable(now) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionLocked,
			"Cannot edit transaction after 12 hours",
			domainerror.ErrTransactionLocked,
		)
	}

	merged := *transaction
	if input.Type != nil {
		merged.Type = *input.Type
	}
	if input.Amount != nil {
		merged.Amount = *input.Amount
	}
	if input.Category != nil {
		merged.Category = *input.Category
	}
	if input.Division != nil {
		merged.Division = *input.Division
	}
	if input.Description != nil {
		merged.Description = strings.TrimSpace(*input.Description)
	}
	if input.Date != nil {
		merged.Date = input.Date.UTC()
	}

	if err := validateFields(merged.Type, merged.Amount, merged.Category, merged.Division, merged.Description); err != nil {
		return nil, err
	}

	merged.UpdatedAt = now
	if err := uc.transactionRepo.Update(ctx, &merged); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{Transaction: &merged}, nil
}
