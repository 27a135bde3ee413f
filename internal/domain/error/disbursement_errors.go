// Package error defines domain-specific errors for the treasury application.
package error

import "errors"

// Disbursement domain errors.
var (
	// ErrSheetNotFound is returned when a disbursement sheet is not found.
	ErrSheetNotFound = errors.New("disbursement sheet not found")

	// ErrEmptySheetName is returned when a sheet is created without a name.
	ErrEmptySheetName = errors.New("sheet name is required")

	// ErrInvalidDisbursementMethod is returned when the method is unknown.
	ErrInvalidDisbursementMethod = errors.New("invalid disbursement method")
)

// DisbursementErrorCode defines error codes for disbursement errors.
// Format: DSB-XXYYYY where XX is category and YYYY is specific error.
type DisbursementErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeSheetNotFound             DisbursementErrorCode = "DSB-010001"
	ErrCodeEmptySheetName            DisbursementErrorCode = "DSB-010002"
	ErrCodeInvalidDisbursementMethod DisbursementErrorCode = "DSB-010003"
)

// DisbursementError represents a disbursement error with code and message.
type DisbursementError struct {
	Code    DisbursementErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DisbursementError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DisbursementError) Unwrap() error {
	return e.Err
}

// NewDisbursementError creates a new DisbursementError with the given code and message.
func NewDisbursementError(code DisbursementErrorCode, message string, err error) *DisbursementError {
	return &DisbursementError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
