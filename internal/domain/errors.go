package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a durable entity does not exist.
type ErrNotFound struct {
	Entity string
	ID     string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found with ID: %s", e.Entity, e.ID)
}

// IsNotFound reports whether err is an ErrNotFound.
func IsNotFound(err error) bool {
	var notFound *ErrNotFound
	return errors.As(err, &notFound)
}

// ValidationError represents a malformed or incomplete request body.
// Terminal: callers answer 400 and the sender is not expected to retry.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// NewValidationError creates a new validation error with the given message
func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// AuthError represents a missing or mismatched signature. Terminal: 401, no
// retry expected.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// UpstreamError wraps a failure talking to an external collaborator (the
// scheduling API, an OAuth endpoint). The webhook receiver surfaces it as a
// 5xx so the provider's own retry policy re-fires the webhook.
type UpstreamError struct {
	Operation string
	Err       error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s failed: %v", e.Operation, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// IsUpstreamError reports whether err wraps an UpstreamError.
func IsUpstreamError(err error) bool {
	var upstream *UpstreamError
	return errors.As(err, &upstream)
}
