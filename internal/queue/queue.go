// Package queue provides the unbounded FIFO queue backing the goasync
// worker primitives. Put never blocks; Get blocks until an item arrives
// or the stop channel is closed.
package queue

import "sync"

// Queue is an unbounded FIFO queue safe for any number of concurrent
// producers and consumers. The notify channel carries wake-up hints,
// not items: consumers always re-check the queue under the lock, so a
// dropped or spurious wake-up can delay a consumer but never lose or
// duplicate an item.
type Queue[T any] struct {
	mu     sync.Mutex
	items  []T
	notify chan struct{}
}

// New creates an empty queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{notify: make(chan struct{}, 1)}
}

// Put appends item and wakes one blocked consumer. It never blocks.
func (q *Queue[T]) Put(item T) {
	q.mu.Lock()
	q.items = append(q.items, item)
	q.mu.Unlock()

	// Signal outside the lock so a woken consumer is never blocked on it.
	select {
	case q.notify <- struct{}{}:
	default:
	}
}

// Get removes and returns the front item, blocking until an item is
// available or stop is closed. A closed stop channel takes priority over
// queued items, so remaining items are abandoned on shutdown.
func (q *Queue[T]) Get(stop <-chan struct{}) (T, bool) {
	var zero T
	for {
		select {
		case <-stop:
			return zero, false
		default:
		}

		if item, ok := q.tryGet(); ok {
			return item, true
		}

		select {
		case <-q.notify:
		case <-stop:
			return zero, false
		}
	}
}

// tryGet pops the front item if one is present. If items remain after the
// pop, the wake-up is forwarded so a sibling consumer is not left parked
// behind a coalesced signal.
func (q *Queue[T]) tryGet() (T, bool) {
	q.mu.Lock()
	if len(q.items) == 0 {
		q.mu.Unlock()
		var zero T
		return zero, false
	}

	var zero T
	item := q.items[0]
	q.items[0] = zero // release the reference for the GC
	q.items = q.items[1:]
	remaining := len(q.items)
	q.mu.Unlock()

	if remaining > 0 {
		select {
		case q.notify <- struct{}{}:
		default:
		}
	}
	return item, true
}

// Len returns the current number of queued items.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
