package resourcepool

import (
	goerrors "errors"
	"sync"

	"github.com/vnykmshr/goasync/pkg/common/errors"
	"github.com/vnykmshr/goasync/pkg/common/validation"
)

// Stats is a snapshot of a pool's counters, taken under the lock.
type Stats struct {
	// Size is the number of resources currently checked in.
	Size int

	// MaxCapacity is the configured bound, 0 when unbounded.
	MaxCapacity int

	// Checkouts counts successful checkouts.
	Checkouts uint64

	// Misses counts checkouts that failed on an empty pool.
	Misses uint64

	// Checkins counts successful checkins.
	Checkins uint64

	// Rejects counts checkins refused by the capacity bound.
	Rejects uint64
}

// Pool is a checkout/checkin store for reusable resources. There is no
// background goroutine: every operation completes under one lock and
// returns immediately. Resources are recycled in FIFO order: checkout
// removes from the front and checkin appends to the back, giving
// round-trip fairness rather than LIFO reuse.
type Pool[T any] struct {
	mu          sync.Mutex
	items       []T
	maxCapacity int

	checkouts uint64
	misses    uint64
	checkins  uint64
	rejects   uint64
}

// New creates an unbounded pool. Callers are responsible for not
// over-populating it; use NewWithCapacity for an enforced bound.
func New[T any]() *Pool[T] {
	return &Pool[T]{}
}

// NewWithCapacity creates a pool that refuses checkins beyond maxCapacity.
// maxCapacity of 0 means unbounded.
func NewWithCapacity[T any](maxCapacity int) (*Pool[T], error) {
	if err := validation.ValidateNonNegative("resourcepool", "MaxCapacity", maxCapacity); err != nil {
		return nil, err
	}
	return &Pool[T]{maxCapacity: maxCapacity}, nil
}

// Checkout removes and returns the front resource. An empty pool is a
// defined failure, never a wait: it returns errors.ErrEmptyPool and the
// caller either checks a resource in first or creates a fresh one.
func (p *Pool[T]) Checkout() (T, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var zero T
	if len(p.items) == 0 {
		p.misses++
		return zero, errors.ErrEmptyPool
	}

	item := p.items[0]
	p.items[0] = zero // release the reference for the GC
	p.items = p.items[1:]
	p.checkouts++
	return item, nil
}

// Checkin returns a resource to the back of the pool. It transfers
// ownership: the caller must not use the resource afterwards. With an
// unbounded pool it always succeeds; a bounded pool refuses overflow
// with errors.ErrCapacityExceeded.
func (p *Pool[T]) Checkin(item T) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.maxCapacity > 0 && len(p.items) >= p.maxCapacity {
		p.rejects++
		return errors.ErrCapacityExceeded
	}

	p.items = append(p.items, item)
	p.checkins++
	return nil
}

// CheckoutOrNew checks out the front resource, invoking factory to build
// a fresh one when the pool is empty. Other factory or checkout errors
// pass through unchanged.
func (p *Pool[T]) CheckoutOrNew(factory func() (T, error)) (T, error) {
	item, err := p.Checkout()
	if goerrors.Is(err, errors.ErrEmptyPool) {
		return factory()
	}
	return item, err
}

// Size returns the number of resources currently checked in.
func (p *Pool[T]) Size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.items)
}

// Stats returns a consistent snapshot of the pool's counters.
func (p *Pool[T]) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Stats{
		Size:        len(p.items),
		MaxCapacity: p.maxCapacity,
		Checkouts:   p.checkouts,
		Misses:      p.misses,
		Checkins:    p.checkins,
		Rejects:     p.rejects,
	}
}
