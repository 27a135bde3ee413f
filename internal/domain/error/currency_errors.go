// Package error defines domain-specific errors for the treasury application.
package error

import "errors"

// Currency normalization domain errors.
var (
	// ErrNonPositiveRate is returned when an exchange rate is zero or negative.
	// A bad rate is a configuration error and must never be silently replaced
	// with a default: it would corrupt every downstream total.
	ErrNonPositiveRate = errors.New("exchange rate must be greater than zero")

	// ErrMissingRate is returned when no usable exchange rate is available for
	// a primary-currency conversion.
	ErrMissingRate = errors.New("exchange rate is required")
)

// CurrencyErrorCode defines error codes for currency normalization errors.
// Format: CUR-XXYYYY where XX is category and YYYY is specific error.
type CurrencyErrorCode string

const (
	// Configuration errors (01XXXX)
	ErrCodeNonPositiveRate CurrencyErrorCode = "CUR-010001"
	ErrCodeMissingRate     CurrencyErrorCode = "CUR-010002"
)

// CurrencyError represents a currency normalization error with code and message.
type CurrencyError struct {
	Code    CurrencyErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CurrencyError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CurrencyError) Unwrap() error {
	return e.Err
}

// NewCurrencyError creates a new CurrencyError with the given code and message.
func NewCurrencyError(code CurrencyErrorCode, message string, err error) *CurrencyError {
	return &CurrencyError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
