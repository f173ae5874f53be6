// Package error defines domain-specific errors for the Money Manager application.
package error

import "errors"

// Analytics domain errors.
var (
	// ErrInvalidPeriod is returned when the analytics period token is unknown.
	ErrInvalidPeriod = errors.New("period must be: weekly, monthly, yearly, or custom")

	// ErrInvalidDateRange is returned when endDate is before startDate.
	ErrInvalidDateRange = errors.New("endDate must not be before startDate")

	// ErrInvalidDateFormat is returned when date format is invalid.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")
)

// AnalyticsErrorCode defines error codes for analytics errors.
// Format: ANL-XXYYYY where XX is category and YYYY is specific error.
type AnalyticsErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidPeriod     AnalyticsErrorCode = "ANL-010001"
	ErrCodeInvalidDateRange  AnalyticsErrorCode = "ANL-010002"
	ErrCodeInvalidDateFormat AnalyticsErrorCode = "ANL-010003"
)

// AnalyticsError carries a AnalyticsErrorCode.
type AnalyticsError = DomainError[AnalyticsErrorCode]

// NewAnalyticsError wraps err with an analytics error code.
func NewAnalyticsError(code AnalyticsErrorCode, message string, err error) *AnalyticsError {
	return newDomainError(code, message, err)
}
