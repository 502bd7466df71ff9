// Package errors provides sentinel errors, structured error details and
// exit-code mapping for the CLI.
package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// DetailError captures structured error information for terminal display.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file or directory involved (optional).
	Location string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	for k, v := range e.Context {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, location, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// NewManifestError creates a manifest error with details.
func NewManifestError(message, location string, cause error) error {
	return &DetailError{
		Type:     "manifest error",
		Message:  message,
		Location: location,
		Cause:    fmt.Errorf("%w: %w", ErrManifest, cause),
	}
}

// NewMaterializeError creates a materialization error for a target path.
// Permission failures additionally match ErrPermission.
func NewMaterializeError(message, location string, cause error) error {
	sentinel := ErrMaterialize
	if errors.Is(cause, fs.ErrPermission) {
		sentinel = ErrPermission
	}
	return &DetailError{
		Type:     "materialization failed",
		Message:  message,
		Location: location,
		Hint:     "Files already written to the target directory were left in place.",
		Cause:    fmt.Errorf("%w: %w", sentinel, cause),
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
