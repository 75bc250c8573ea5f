// Package errors provides sentinel errors for the stanpkg CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrInvalidName indicates a package or model identifier failed validation.
	ErrInvalidName = errors.New("invalid name")

	// ErrSourceNotFound indicates a model file or skeleton directory does not exist.
	ErrSourceNotFound = errors.New("source not found")

	// ErrAlreadyExists indicates the target path is already taken.
	ErrAlreadyExists = errors.New("already exists")

	// ErrWriteFailure indicates an I/O failure while writing the skeleton.
	ErrWriteFailure = errors.New("write failure")

	// ErrValidation indicates a descriptor or config schema validation failure.
	ErrValidation = errors.New("validation error")
)

// DetailError captures structured error information for display.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file path involved (optional).
	Location string

	// Field is the field name for schema errors (optional).
	Field string

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
	if e.Field != "" {
		b.WriteString("  Field: ")
		b.WriteString(e.Field)
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

// NewInvalidNameError creates an invalid name error with details.
func NewInvalidNameError(message, field, hint string) error {
	return &DetailError{
		Type:    "invalid name",
		Message: message,
		Field:   field,
		Hint:    hint,
		Cause:   ErrInvalidName,
	}
}

// NewSourceNotFoundError creates a source not found error with details.
func NewSourceNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "source not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrSourceNotFound,
	}
}

// NewAlreadyExistsError creates an already exists error with details.
func NewAlreadyExistsError(message, location, hint string) error {
	return &DetailError{
		Type:     "already exists",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrAlreadyExists,
	}
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, location, field, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Field:    field,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}

// WriteFailure wraps an I/O error that occurred at path with ErrWriteFailure.
func WriteFailure(path string, err error) error {
	return fmt.Errorf("writing %s: %w: %w", path, ErrWriteFailure, err)
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
