package periodic

import (
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/vnykmshr/goasync/pkg/common/errors"
	"github.com/vnykmshr/goasync/pkg/common/validation"
)

// Stats is a best-effort snapshot of a timer's state.
type Stats struct {
	// Name is the diagnostics label given at construction.
	Name string

	// Period is the configured interval, zero for cron timers.
	Period time.Duration

	// Invocations is the number of completed callback invocations.
	Invocations uint64

	// Failures is the number of recovered callback panics.
	Failures uint64

	// Running reports whether the background goroutine is active.
	Running bool
}

// Timer invokes a niladic callback on a schedule from one background
// goroutine. The sleep between invocations is interruptible, so Shutdown
// completes promptly no matter how long the period is.
type Timer interface {
	// Start launches the background goroutine. A second Start, or a
	// Start after Shutdown, fails.
	Start() error

	// Invocations returns the number of completed callback invocations.
	Invocations() uint64

	// Stats returns a best-effort snapshot of the timer's state.
	Stats() Stats

	// Shutdown stops the timer. Idempotent and non-fatal even when the
	// timer was never started; the returned channel closes once the
	// goroutine (if any) has exited.
	Shutdown() <-chan struct{}
}

// Option configures a Timer.
type Option func(*timer)

// WithName attaches a diagnostics label to the timer.
func WithName(name string) Option {
	return func(t *timer) { t.name = name }
}

// WithOnError routes recovered callback panics to fn. Without it they
// are swallowed and the periodic loop simply continues.
func WithOnError(fn func(error)) Option {
	return func(t *timer) { t.onError = fn }
}

// WithLocation sets the time zone used for cron schedules.
// Defaults to time.Local.
func WithLocation(loc *time.Location) Option {
	return func(t *timer) { t.location = loc }
}

type timer struct {
	name     string
	fn       func()
	period   time.Duration
	schedule cron.Schedule
	location *time.Location
	onError  func(error)

	invocations atomic.Uint64
	failures    atomic.Uint64

	mu           sync.Mutex
	running      bool
	stopCh       chan struct{}
	done         chan struct{}
	shutdownOnce sync.Once
}

// New creates a fixed-period timer. The callback is invoked once per
// period until Shutdown; a panicking callback is recovered and the loop
// continues.
func New(fn func(), period time.Duration, opts ...Option) (Timer, error) {
	if fn == nil {
		return nil, errors.NewValidationError("periodic", "fn", nil, "cannot be nil").
			WithHint("provide a callback to invoke")
	}
	if err := validation.ValidatePositiveDuration("periodic", "period", period); err != nil {
		return nil, err
	}

	t := newTimer(fn, opts)
	t.period = period
	return t, nil
}

func newTimer(fn func(), opts []Option) *timer {
	t := &timer{
		name:     "anonymous-periodic-timer",
		fn:       fn,
		location: time.Local,
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start launches the background goroutine.
func (t *timer) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	select {
	case <-t.stopCh:
		return &errors.OperationError{Module: "periodic", Operation: "Start", Cause: errors.ErrShutdown}
	default:
	}

	if t.running {
		return &errors.OperationError{Module: "periodic", Operation: "Start", Cause: errors.ErrAlreadyRunning}
	}

	t.running = true
	go t.run()
	return nil
}

// Shutdown stops the timer, waking the sleeping goroutine immediately.
func (t *timer) Shutdown() <-chan struct{} {
	t.shutdownOnce.Do(func() {
		close(t.stopCh)

		t.mu.Lock()
		running := t.running
		t.mu.Unlock()

		if !running {
			// Never started, nothing to join.
			close(t.done)
		}
	})

	return t.done
}

// Invocations returns the number of completed callback invocations.
func (t *timer) Invocations() uint64 {
	return t.invocations.Load()
}

// Stats returns a best-effort snapshot of the timer's state.
func (t *timer) Stats() Stats {
	t.mu.Lock()
	running := t.running
	t.mu.Unlock()

	select {
	case <-t.stopCh:
		running = false
	default:
	}

	return Stats{
		Name:        t.name,
		Period:      t.period,
		Invocations: t.invocations.Load(),
		Failures:    t.failures.Load(),
		Running:     running,
	}
}

func (t *timer) run() {
	defer close(t.done)

	if t.schedule != nil {
		t.runCron()
		return
	}

	ticker := time.NewTicker(t.period)
	defer ticker.Stop()

	for {
		select {
		case <-t.stopCh:
			return
		case <-ticker.C:
			t.invoke()
		}
	}
}

func (t *timer) runCron() {
	for {
		next := t.schedule.Next(time.Now().In(t.location))
		wait := time.NewTimer(time.Until(next))

		select {
		case <-t.stopCh:
			wait.Stop()
			return
		case <-wait.C:
			t.invoke()
		}
	}
}

// invoke runs the callback with panic containment. The goroutine never
// exits because of a callback failure.
func (t *timer) invoke() {
	defer func() {
		if r := recover(); r != nil {
			t.failures.Add(1)
			if t.onError != nil {
				t.onError(fmt.Errorf("timer callback panicked: %v\nStack trace:\n%s", r, debug.Stack()))
			}
		}
	}()

	t.fn()
	t.invocations.Add(1)
}
