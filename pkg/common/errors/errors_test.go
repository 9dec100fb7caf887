package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"empty pool", ErrEmptyPool, true},
		{"capacity exceeded", ErrCapacityExceeded, true},
		{"shutdown", ErrShutdown, false},
		{"invalid configuration", ErrInvalidConfiguration, false},
		{"wrapped empty pool", fmt.Errorf("checkout: %w", ErrEmptyPool), true},
		{"unrelated", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.want {
				t.Errorf("IsRetryable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsTemporary(t *testing.T) {
	if !IsTemporary(ErrEmptyPool) {
		t.Error("ErrEmptyPool should be temporary")
	}
	if !IsTemporary(ErrCapacityExceeded) {
		t.Error("ErrCapacityExceeded should be temporary")
	}
	if IsTemporary(ErrShutdown) {
		t.Error("ErrShutdown should not be temporary")
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("module", "field", 123, "test reason")

	if err.Module != "module" {
		t.Errorf("Module = %q, want %q", err.Module, "module")
	}
	if err.Field != "field" {
		t.Errorf("Field = %q, want %q", err.Field, "field")
	}
	if err.Value != 123 {
		t.Errorf("Value = %v, want %v", err.Value, 123)
	}
	if err.Reason != "test reason" {
		t.Errorf("Reason = %q, want %q", err.Reason, "test reason")
	}
	if err.Hint != "" {
		t.Errorf("Hint = %q, want empty string", err.Hint)
	}
}

func TestValidationError_WithHint(t *testing.T) {
	err := NewValidationError("test", "field", 0, "invalid").
		WithHint("try using a positive value")

	if err.Hint != "try using a positive value" {
		t.Errorf("Hint = %q, want %q", err.Hint, "try using a positive value")
	}

	// Should return same instance for chaining
	result := err.WithHint("new hint")
	if result != err {
		t.Error("WithHint should return the same instance")
	}
}

func TestValidationError_Unwrap(t *testing.T) {
	verr := NewValidationError("worker", "Workers", -1, "must be positive")

	unwrapped := verr.Unwrap()
	if unwrapped != ErrInvalidConfiguration {
		t.Errorf("Unwrap() = %v, want ErrInvalidConfiguration", unwrapped)
	}

	if !errors.Is(verr, ErrInvalidConfiguration) {
		t.Error("ValidationError should wrap ErrInvalidConfiguration")
	}
}

func TestOperationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *OperationError
		want string
	}{
		{
			name: "without context",
			err: &OperationError{
				Module:    "periodic",
				Operation: "Start",
				Cause:     errors.New("already running"),
			},
			want: "periodic.Start failed: already running",
		},
		{
			name: "with context",
			err: &OperationError{
				Module:    "resourcepool",
				Operation: "Checkin",
				Cause:     ErrCapacityExceeded,
				Context:   "exceeded capacity of 100",
			},
			want: "resourcepool.Checkin failed: capacity exceeded (exceeded capacity of 100)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOperationError_Unwrap(t *testing.T) {
	oerr := &OperationError{
		Module:    "resourcepool",
		Operation: "Checkout",
		Cause:     ErrEmptyPool,
	}

	if !errors.Is(oerr, ErrEmptyPool) {
		t.Error("OperationError should unwrap to its cause")
	}
}
