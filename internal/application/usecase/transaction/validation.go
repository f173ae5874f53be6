// Package transaction contains transaction-related use cases.
package transaction

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

// validateFields maps the first failing transaction invariant to a typed error.
func validateFields(
	transactionType entity.TransactionType,
	amount decimal.Decimal,
	category entity.Category,
	division entity.Division,
	description string,
) error {
	switch entity.ValidateTransactionFields(transactionType, amount, category, division, description) {
	case "type":
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'income' or 'expense'",
			domainerror.ErrInvalidTransactionType,
		)
	case "amount":
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must not be negative",
			domainerror.ErrInvalidTransactionAmount,
		)
	case "category":
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidCategory,
			fmt.Sprintf("'%s' is not a valid %s category", category, transactionType),
			domainerror.ErrInvalidCategory,
		)
	case "division":
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidDivision,
			"division must be 'Personal' or 'Office'",
			domainerror.ErrInvalidDivision,
		)
	case "description":
		return domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", entity.MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}
	return nil
}

func isKnownCategory(category entity.Category) bool {
	return entity.IsValidCategory(entity.TransactionTypeIncome, category) ||
		entity.IsValidCategory(entity.TransactionTypeExpense, category)
}

func invalidFilter(message string) error {
	return domainerror.NewTransactionError(
		domainerror.ErrCodeInvalidTransactionFilter,
		message,
		nil,
	)
}

// loadOwnedTransaction returns the transaction only when userID owns it.
func loadOwnedTransaction(ctx context.Context, repo adapter.TransactionRepository, id, userID uuid.UUID, action string) (*entity.Transaction, error) {
	transaction, err := repo.FindByID(ctx, id)
	if errors.Is(err, domainerror.ErrTransactionNotFound) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"Transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	if !transaction.IsOwnedBy(userID) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNotAuthorizedTransaction,
			fmt.Sprintf("Not authorized to %s this transaction", action),
			domainerror.ErrNotAuthorizedToModifyTransaction,
		)
	}
	return transaction, nil
}
