package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidationFailed indicates configuration validation failed.
var ErrValidationFailed = errors.New("configuration validation failed")

// ValidationError wraps configuration validation errors with context.
type ValidationError struct {
	Section string // Section being validated (media, analyze, ...)
	Field   string
	Message string
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: field '%s': %s", e.Section, e.Field, e.Message)
}

// Unwrap ties all validation errors to ErrValidationFailed.
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// NewValidationError creates a new validation error.
func NewValidationError(section, field, message string) *ValidationError {
	return &ValidationError{Section: section, Field: field, Message: message}
}

// ValidationErrors aggregates every validation problem found in one pass.
type ValidationErrors []*ValidationError

// Error joins the individual messages.
func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%d configuration error(s): %s", len(e), strings.Join(msgs, "; "))
}

// Unwrap ties the aggregate to ErrValidationFailed.
func (e ValidationErrors) Unwrap() error {
	return ErrValidationFailed
}
