// Package error defines domain-specific errors for the Money Manager application.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the system.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrInvalidGoalAmount is returned when a target or saved amount is negative.
	ErrInvalidGoalAmount = errors.New("invalid goal amount")

	// ErrInvalidContribution is returned when an added amount is not positive.
	ErrInvalidContribution = errors.New("amount to add must be greater than zero")

	// ErrMissingGoalName is returned when the goal name is blank.
	ErrMissingGoalName = errors.New("goal name is required")

	// ErrUnauthorizedGoalAccess is returned when user is not authorized to access a goal.
	ErrUnauthorizedGoalAccess = errors.New("unauthorized access to goal")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidGoalAmount   GoalErrorCode = "GOL-010001"
	ErrCodeInvalidContribution GoalErrorCode = "GOL-010002"
	ErrCodeMissingGoalFields   GoalErrorCode = "GOL-010003"
	ErrCodeInvalidGoalDeadline GoalErrorCode = "GOL-010004"

	// Not found errors (02XXXX)
	ErrCodeGoalNotFound GoalErrorCode = "GOL-020001"

	// Authorization errors (03XXXX)
	ErrCodeUnauthorizedGoalAccess GoalErrorCode = "GOL-030001"
)

// GoalError carries a GoalErrorCode.
type GoalError = DomainError[GoalErrorCode]

// NewGoalError wraps err with a goal error code.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return newDomainError(code, message, err)
}
