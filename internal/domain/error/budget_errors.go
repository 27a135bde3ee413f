// Package error defines domain-specific errors for the treasury application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrInvalidBudgetAmount is returned when a budget amount is negative.
	ErrInvalidBudgetAmount = errors.New("budget amount must not be negative")

	// ErrDuplicateBudgetCategory is returned when a save contains the same
	// category more than once.
	ErrDuplicateBudgetCategory = errors.New("duplicate budget category")

	// ErrInvalidBudgetCategory is returned when a budget references a
	// non-expense category.
	ErrInvalidBudgetCategory = errors.New("budgets apply to expense categories only")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BDG-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidBudgetAmount     BudgetErrorCode = "BDG-010001"
	ErrCodeDuplicateBudgetCategory BudgetErrorCode = "BDG-010002"
	ErrCodeInvalidBudgetCategory   BudgetErrorCode = "BDG-010003"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
