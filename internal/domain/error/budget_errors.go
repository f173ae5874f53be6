// Package error defines domain-specific errors for the Money Manager application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is not found in the system.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrBudgetAlreadyExists is returned when an active budget already exists for the category.
	ErrBudgetAlreadyExists = errors.New("budget already exists for this category")

	// ErrInvalidBudgetAmount is returned when the budget limit is negative.
	ErrInvalidBudgetAmount = errors.New("invalid budget amount")

	// ErrInvalidBudgetCategory is returned when the category is not an expense category.
	ErrInvalidBudgetCategory = errors.New("invalid budget category")

	// ErrInvalidBudgetPeriod is returned when the budget period is invalid.
	ErrInvalidBudgetPeriod = errors.New("invalid budget period")

	// ErrUnauthorizedBudgetAccess is returned when user is not authorized to access a budget.
	ErrUnauthorizedBudgetAccess = errors.New("unauthorized access to budget")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BUD-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeBudgetAlreadyExists   BudgetErrorCode = "BUD-010001"
	ErrCodeInvalidBudgetAmount   BudgetErrorCode = "BUD-010002"
	ErrCodeInvalidBudgetCategory BudgetErrorCode = "BUD-010003"
	ErrCodeInvalidBudgetPeriod   BudgetErrorCode = "BUD-010004"
	ErrCodeMissingBudgetFields   BudgetErrorCode = "BUD-010005"
	ErrCodeInvalidBudgetDate     BudgetErrorCode = "BUD-010006"

	// Not found errors (02XXXX)
	ErrCodeBudgetNotFound BudgetErrorCode = "BUD-020001"

	// Authorization errors (03XXXX)
	ErrCodeUnauthorizedBudgetAccess BudgetErrorCode = "BUD-030001"
)

// BudgetError carries a BudgetErrorCode.
type BudgetError = DomainError[BudgetErrorCode]

// NewBudgetError wraps err with a budget error code.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return newDomainError(code, message, err)
}
