// Package error defines domain-specific errors for the treasury application.
package error

import "errors"

// Project domain errors.
var (
	// ErrProjectNotFound is returned when a project is not found in the system.
	ErrProjectNotFound = errors.New("project not found")

	// ErrEmptyProjectName is returned when a project is created without a name.
	ErrEmptyProjectName = errors.New("project name is required")
)
