package periodic

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain enables goroutine leak detection for all tests in this package.
// This catches any timer goroutine left running past Shutdown.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
