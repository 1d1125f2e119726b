package types

import "errors"

// ErrNotFound is returned when a referenced theme does not exist.
var ErrNotFound = errors.New("not found")

// ValidationError reports a missing required input field. It maps to a
// 400 response and is surfaced before any side effect.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a validation error with the given message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}
