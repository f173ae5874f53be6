// Package error defines domain-specific errors for the Money Manager application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrNotAuthorizedToModifyTransaction is returned when user is not authorized to modify a transaction.
	ErrNotAuthorizedToModifyTransaction = errors.New("not authorized to modify transaction")

	// ErrTransactionLocked is returned when the edit window of a transaction has elapsed.
	ErrTransactionLocked = errors.New("transaction edit window has elapsed")

	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidTransactionDate is returned when the transaction date is invalid.
	ErrInvalidTransactionDate = errors.New("invalid transaction date")

	// ErrInvalidTransactionAmount is returned when the transaction amount is invalid.
	ErrInvalidTransactionAmount = errors.New("invalid transaction amount")

	// ErrInvalidCategory is returned when the category is not allowed for the transaction type.
	ErrInvalidCategory = errors.New("invalid category for transaction type")

	// ErrInvalidDivision is returned when the division is unknown.
	ErrInvalidDivision = errors.New("invalid division")

	// ErrDescriptionTooLong is returned when the transaction description exceeds the maximum length.
	ErrDescriptionTooLong = errors.New("description too long")

	// ErrMissingTransactionFields is returned when required transaction fields are absent.
	ErrMissingTransactionFields = errors.New("missing required transaction fields")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType   TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionDate   TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidTransactionAmount TransactionErrorCode = "TXN-010003"
	ErrCodeInvalidCategory          TransactionErrorCode = "TXN-010004"
	ErrCodeInvalidDivision          TransactionErrorCode = "TXN-010005"
	ErrCodeDescriptionTooLong       TransactionErrorCode = "TXN-010006"
	ErrCodeMissingTransactionFields TransactionErrorCode = "TXN-010007"
	ErrCodeInvalidTransactionFilter TransactionErrorCode = "TXN-010008"

	// Not found errors (02XXXX)
	ErrCodeTransactionNotFound TransactionErrorCode = "TXN-020001"

	// Authorization errors (03XXXX)
	ErrCodeTransactionLocked        TransactionErrorCode = "TXN-030001"
	ErrCodeNotAuthorizedTransaction TransactionErrorCode = "TXN-030002"
)

// TransactionError carries a TransactionErrorCode.
type TransactionError = DomainError[TransactionErrorCode]

// NewTransactionError wraps err with a transaction error code.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return newDomainError(code, message, err)
}
