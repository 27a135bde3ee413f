// Package error defines domain-specific errors for the treasury application.
package error

import "errors"

// Report domain errors.
var (
	// ErrInvalidMonthCount is returned when a trend request asks for fewer than one month.
	ErrInvalidMonthCount = errors.New("month count must be at least 1")

	// ErrInvalidPeriod is returned when a report period end precedes its start.
	ErrInvalidPeriod = errors.New("period end must not be before period start")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidMonthCount ReportErrorCode = "RPT-010001"
	ErrCodeInvalidPeriod     ReportErrorCode = "RPT-010002"
	ErrCodeInvalidReportType ReportErrorCode = "RPT-010003"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
