// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// IsValid reports whether t is a known transaction type.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeExpense || t == TransactionTypeIncome
}

const (
	// EditWindow is how long after creation a transaction may still be updated.
	EditWindow = 12 * time.Hour

	// MaxDescriptionLength is the maximum number of characters in a description.
	MaxDescriptionLength = 200
)

// Transaction represents a single income or expense record.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Type        TransactionType
	Amount      decimal.Decimal // Always non-negative; Type carries the sign
	Category    Category
	Division    Division
	Description string
	Date        time.Time // Effective date supplied by the user
	CreatedAt   time.Time // Immutable record creation time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// NewTransaction creates a new Transaction entity. A zero date defaults to the creation time.
func NewTransaction(
	userID uuid.UUID,
	transactionType TransactionType,
	amount decimal.Decimal,
	category Category,
	division Division,
	description string,
	date time.Time,
	now time.Time,
) *Transaction {
	now = now.UTC()
	if date.IsZero() {
		date = now
	}

	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Type:        transactionType,
		Amount:      amount,
		Category:    category,
		Division:    division,
		Description: strings.TrimSpace(description),
		Date:        date.UTC(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsEditable reports whether the transaction is still inside its edit window at now.
// Once the window has elapsed the transaction stays locked.
func (t *Transaction) IsEditable(now time.Time) bool {
	return now.Sub(t.CreatedAt) <= EditWindow
}

// IsOwnedBy reports whether the transaction belongs to userID.
func (t *Transaction) IsOwnedBy(userID uuid.UUID) bool {
	return t.UserID == userID
}

// ValidateTransactionFields checks the invariants shared by create and update.
// It returns the name of the first offending field, or an empty string.
func ValidateTransactionFields(
	transactionType TransactionType,
	amount decimal.Decimal,
	category Category,
	division Division,
	description string,
) string {
	switch {
	case !transactionType.IsValid():
		return "type"
	case amount.IsNegative():
		return "amount"
	case !IsValidCategory(transactionType, category):
		return "category"
	case !division.IsValid():
		return "division"
	case utf8.RuneCountInString(strings.TrimSpace(description)) > MaxDescriptionLength:
		return "description"
	}
	return ""
}
