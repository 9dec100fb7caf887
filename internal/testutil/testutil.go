package testutil

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

// TestTimeout is the default timeout for tests
const TestTimeout = 5 * time.Second

// WithTimeout creates a context with the default test timeout
func WithTimeout(t *testing.T) (context.Context, context.CancelFunc) {
	t.Helper()
	return context.WithTimeout(context.Background(), TestTimeout)
}

// AssertNoError fails the test if err is not nil
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// AssertEqual fails the test if got != want
func AssertEqual[T comparable](t *testing.T, got, want T) {
	t.Helper()
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

// AssertNotEqual fails the test if got == notWant
func AssertNotEqual[T comparable](t *testing.T, got, notWant T) {
	t.Helper()
	if got == notWant {
		t.Fatalf("got %v, want anything else", got)
	}
}

// Eventually polls cond every 5ms until it returns true or the timeout
// expires, failing the test on expiry
func Eventually(t *testing.T, timeout time.Duration, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal(msg)
}

// WaitForInt32 waits until the atomic counter reaches want or the default
// test timeout expires
func WaitForInt32(t *testing.T, counter *atomic.Int32, want int32) {
	t.Helper()
	Eventually(t, TestTimeout, func() bool {
		return counter.Load() == want
	}, "counter did not reach expected value")
}

// WaitForInt64 waits until the atomic counter reaches want or the default
// test timeout expires
func WaitForInt64(t *testing.T, counter *atomic.Int64, want int64) {
	t.Helper()
	Eventually(t, TestTimeout, func() bool {
		return counter.Load() == want
	}, "counter did not reach expected value")
}
