package periodic

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/vnykmshr/goasync/internal/testutil"
	gaerrors "github.com/vnykmshr/goasync/pkg/common/errors"
)

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		fn      func()
		period  time.Duration
		wantErr bool
	}{
		{"valid", func() {}, 10 * time.Millisecond, false},
		{"nil callback", nil, time.Second, true},
		{"zero period", func() {}, 0, true},
		{"negative period", func() {}, -time.Second, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timer, err := New(tt.fn, tt.period)
			if tt.wantErr {
				testutil.AssertError(t, err)
				if !errors.Is(err, gaerrors.ErrInvalidConfiguration) {
					t.Errorf("error should wrap ErrInvalidConfiguration, got %v", err)
				}
				return
			}
			testutil.AssertNoError(t, err)
			<-timer.Shutdown()
		})
	}
}

func TestPeriodicInvocation(t *testing.T) {
	var ticks atomic.Uint64
	fired := make(chan struct{}, 64)

	timer, err := New(func() {
		ticks.Add(1)
		fired <- struct{}{}
	}, 10*time.Millisecond, WithName("test-ticker"))
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, timer.Start())
	defer func() { <-timer.Shutdown() }()

	for i := 0; i < 3; i++ {
		select {
		case <-fired:
		case <-time.After(time.Second):
			t.Fatal("timer did not fire")
		}
	}

	if got := timer.Invocations(); got < 3 {
		t.Errorf("Invocations() = %d, want >= 3", got)
	}
}

func TestDoubleStartFails(t *testing.T) {
	timer, err := New(func() {}, time.Hour)
	testutil.AssertNoError(t, err)
	defer func() { <-timer.Shutdown() }()

	testutil.AssertNoError(t, timer.Start())

	err = timer.Start()
	testutil.AssertError(t, err)
	if !errors.Is(err, gaerrors.ErrAlreadyRunning) {
		t.Errorf("second Start should wrap ErrAlreadyRunning, got %v", err)
	}
}

func TestStartAfterShutdownFails(t *testing.T) {
	timer, err := New(func() {}, time.Hour)
	testutil.AssertNoError(t, err)

	<-timer.Shutdown()

	err = timer.Start()
	testutil.AssertError(t, err)
	if !errors.Is(err, gaerrors.ErrShutdown) {
		t.Errorf("Start after Shutdown should wrap ErrShutdown, got %v", err)
	}
}

func TestShutdownInterruptsLongPeriod(t *testing.T) {
	timer, err := New(func() {}, time.Hour)
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, timer.Start())

	// The goroutine is parked an hour out; Shutdown must not wait for it.
	start := time.Now()
	select {
	case <-timer.Shutdown():
	case <-time.After(time.Second):
		t.Fatal("shutdown wedged behind the sleeping goroutine")
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Errorf("shutdown took %v, want well under 500ms", elapsed)
	}
}

func TestShutdownNeverStartedIsNonFatal(t *testing.T) {
	timer, err := New(func() {}, time.Second)
	testutil.AssertNoError(t, err)

	select {
	case <-timer.Shutdown():
	case <-time.After(time.Second):
		t.Fatal("shutdown of a never-started timer did not complete")
	}

	// Idempotent double stop.
	<-timer.Shutdown()
}

func TestCallbackPanicSwallowed(t *testing.T) {
	var ticks atomic.Uint64
	survived := make(chan struct{}, 1)

	timer, err := New(func() {
		if ticks.Add(1) == 1 {
			panic("first tick explodes")
		}
		select {
		case survived <- struct{}{}:
		default:
		}
	}, 10*time.Millisecond)
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, timer.Start())
	defer func() { <-timer.Shutdown() }()

	select {
	case <-survived:
	case <-time.After(time.Second):
		t.Fatal("periodic loop did not survive a panicking callback")
	}

	stats := timer.Stats()
	testutil.AssertEqual(t, stats.Failures, uint64(1))
}

func TestCallbackPanicRoutedToOnError(t *testing.T) {
	errCh := make(chan error, 1)

	timer, err := New(func() { panic("boom") }, 10*time.Millisecond,
		WithOnError(func(err error) {
			select {
			case errCh <- err:
			default:
			}
		}))
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, timer.Start())
	defer func() { <-timer.Shutdown() }()

	select {
	case err := <-errCh:
		testutil.AssertError(t, err)
	case <-time.After(time.Second):
		t.Fatal("panic never reached OnError")
	}
}

func TestStats(t *testing.T) {
	timer, err := New(func() {}, time.Hour, WithName("hourly-job"))
	testutil.AssertNoError(t, err)

	stats := timer.Stats()
	testutil.AssertEqual(t, stats.Name, "hourly-job")
	testutil.AssertEqual(t, stats.Period, time.Hour)
	testutil.AssertEqual(t, stats.Running, false)

	testutil.AssertNoError(t, timer.Start())
	testutil.AssertEqual(t, timer.Stats().Running, true)

	<-timer.Shutdown()
	testutil.AssertEqual(t, timer.Stats().Running, false)
}

func TestNewCronValidation(t *testing.T) {
	tests := []struct {
		name     string
		cronExpr string
		wantErr  bool
	}{
		{"every five seconds", "*/5 * * * * *", false},
		{"descriptor", "@hourly", false},
		{"empty", "", true},
		{"garbage", "not a cron expr", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timer, err := NewCron(func() {}, tt.cronExpr)
			if tt.wantErr {
				testutil.AssertError(t, err)
				return
			}
			testutil.AssertNoError(t, err)
			<-timer.Shutdown()
		})
	}
}

func TestCronTimerFires(t *testing.T) {
	fired := make(chan struct{}, 8)

	timer, err := NewCron(func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	}, "* * * * * *", WithName("every-second")) // every second
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, timer.Start())
	defer func() { <-timer.Shutdown() }()

	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("cron timer did not fire within its schedule")
	}
}

func TestValidateCronExpression(t *testing.T) {
	testutil.AssertNoError(t, ValidateCronExpression("0 30 14 * * 1-5"))
	testutil.AssertError(t, ValidateCronExpression("* * *"))
}
