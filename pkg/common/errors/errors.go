// Package errors defines the error taxonomy shared by the goasync primitives.
package errors

import (
	"errors"
	"fmt"
)

// Common error types used across the goasync library

var (
	// ErrEmptyPool indicates a checkout was attempted on an empty resource pool
	ErrEmptyPool = errors.New("resource pool is empty")

	// ErrCapacityExceeded indicates that a capacity limit was exceeded
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrShutdown indicates that an operation was attempted on a primitive
	// that has been shut down
	ErrShutdown = errors.New("primitive has been shut down")

	// ErrAlreadyRunning indicates a second Start on a running primitive
	ErrAlreadyRunning = errors.New("already running")

	// ErrInvalidConfiguration indicates invalid configuration parameters
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// IsRetryable returns true if the error indicates a condition that might
// be resolved by retrying the operation
func IsRetryable(err error) bool {
	return errors.Is(err, ErrEmptyPool) || errors.Is(err, ErrCapacityExceeded)
}

// IsTemporary returns true if the error indicates a temporary condition
func IsTemporary(err error) bool {
	return errors.Is(err, ErrEmptyPool) || errors.Is(err, ErrCapacityExceeded)
}

// ValidationError describes a rejected configuration value. It wraps
// ErrInvalidConfiguration so callers can match it with errors.Is.
type ValidationError struct {
	Module string
	Field  string
	Value  interface{}
	Reason string
	Hint   string
}

// NewValidationError creates a ValidationError for the given module and field.
func NewValidationError(module, field string, value interface{}, reason string) *ValidationError {
	return &ValidationError{
		Module: module,
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}

// WithHint attaches a remediation hint and returns the same instance for chaining.
func (e *ValidationError) WithHint(hint string) *ValidationError {
	e.Hint = hint
	return e
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: invalid %s (%v): %s", e.Module, e.Field, e.Value, e.Reason)
	if e.Hint != "" {
		msg += " (hint: " + e.Hint + ")"
	}
	return msg
}

// Unwrap makes ValidationError match ErrInvalidConfiguration via errors.Is.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfiguration
}

// OperationError describes a failed operation on a named module.
type OperationError struct {
	Module    string
	Operation string
	Cause     error
	Context   string
}

func (e *OperationError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s.%s failed: %v (%s)", e.Module, e.Operation, e.Cause, e.Context)
	}
	return fmt.Sprintf("%s.%s failed: %v", e.Module, e.Operation, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *OperationError) Unwrap() error {
	return e.Cause
}
