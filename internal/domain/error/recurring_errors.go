// Package error defines domain-specific errors for the treasury application.
package error

import "errors"

// Recurring expense domain errors.
var (
	// ErrRecurringExpenseNotFound is returned when a recurring expense is not found.
	ErrRecurringExpenseNotFound = errors.New("recurring expense not found")

	// ErrInvalidFrequency is returned when the frequency is not monthly or yearly.
	ErrInvalidFrequency = errors.New("frequency must be monthly or yearly")

	// ErrInvalidStartDate is returned when the start date is missing or invalid.
	ErrInvalidStartDate = errors.New("invalid start date")

	// ErrDueDateRegression is returned when an update would move the next due
	// date backwards. The next due date only ever advances.
	ErrDueDateRegression = errors.New("next due date must not regress")
)

// RecurringErrorCode defines error codes for recurring expense errors.
// Format: REC-XXYYYY where XX is category and YYYY is specific error.
type RecurringErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeRecurringExpenseNotFound RecurringErrorCode = "REC-010001"
	ErrCodeInvalidFrequency         RecurringErrorCode = "REC-010002"
	ErrCodeInvalidStartDate         RecurringErrorCode = "REC-010003"
	ErrCodeDueDateRegression        RecurringErrorCode = "REC-010004"

	// Internal errors (99XXXX)
	ErrCodeCatchUpFailed RecurringErrorCode = "REC-990001"
)

// RecurringError represents a recurring expense error with code and message.
type RecurringError struct {
	Code    RecurringErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecurringError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecurringError) Unwrap() error {
	return e.Err
}

// NewRecurringError creates a new RecurringError with the given code and message.
func NewRecurringError(code RecurringErrorCode, message string, err error) *RecurringError {
	return &RecurringError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
