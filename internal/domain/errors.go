package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidRole is returned when a role string is outside the
	// closed admin/member set.
	ErrInvalidRole = errors.New("invalid role")

	// ErrInvalidStatus is returned when a task status is outside the
	// closed todo/in_progress/done set.
	ErrInvalidStatus = errors.New("status must be one of: todo, in_progress, done")

	// ErrEmptyTitle is returned when a task title is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrUnauthorized is returned when the caller's identity cannot be
	// established.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned when an authenticated caller lacks the
	// role required for an operation.
	ErrForbidden = errors.New("forbidden")
)

// ValidationError wraps a field-level validation failure with the field
// name, preserving the underlying sentinel for errors.Is checks.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + " " + e.Message
}

// Unwrap returns the wrapped sentinel to support errors.Is.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: err}
}
