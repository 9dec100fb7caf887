// Package guard provides a scoped-cleanup primitive: a callback that runs
// exactly once when its owning scope ends, however control leaves it.
//
// A Guard is armed at construction and fired with a deferred Run, so the
// cleanup executes on normal return, early return, and panic unwinding
// alike, but never twice:
//
//	g := guard.New(func() { pool.Checkin(conn) })
//	defer g.Run()
//
// Cancel disarms the guard for success paths that transfer ownership
// elsewhere, mirroring the commit/rollback idiom:
//
//	g := guard.New(func() { f.Close() })
//	defer g.Run()
//	if err := handOff(f); err == nil {
//		g.Cancel() // the receiver closes f now
//	}
package guard

import (
	"sync"
	"sync/atomic"
)

// Guard holds a cleanup callback that fires at most once. The zero value
// is unusable; construct with New. A Guard must not be copied after
// first use.
type Guard struct {
	fn       func()
	once     sync.Once
	canceled atomic.Bool
}

// New creates an armed guard for fn.
func New(fn func()) *Guard {
	if fn == nil {
		panic("guard: callback cannot be nil")
	}
	return &Guard{fn: fn}
}

// Run fires the callback unless the guard was canceled. Only the first
// call has any effect; later calls, including concurrent ones, are no-ops.
func (g *Guard) Run() {
	g.once.Do(func() {
		if !g.canceled.Load() {
			g.fn()
		}
		g.fn = nil
	})
}

// Cancel disarms the guard. Canceling after the callback has fired is a
// no-op.
func (g *Guard) Cancel() {
	g.canceled.Store(true)
}

// OnExit arms a guard for fn and returns its Run, ready for a direct
// defer at the call site:
//
//	defer guard.OnExit(cleanup)()
func OnExit(fn func()) func() {
	return New(fn).Run
}
