package roundrobin

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/spaolacci/murmur3"

	"github.com/vnykmshr/goasync/pkg/worker"
)

// Stats is a best-effort snapshot of a round-robin pool's counters.
type Stats struct {
	// Workers is the number of independent single-consumer workers.
	Workers int

	// Dispatched is the total number of items routed by Enqueue.
	Dispatched uint64

	// Keyed is the total number of items routed by EnqueueKey.
	Keyed uint64

	// WorkerStats holds the per-worker snapshots, indexed by worker slot.
	WorkerStats []worker.Stats
}

// Pool distributes items across N independent single-consumer workers so
// that one slow consumer stalls only every Nth item, not the whole pool.
//
// Enqueue assigns each item a unique slot from an atomic counter and
// forwards it to the slot's worker. Under concurrent producers the
// counter claim and the delivery to the chosen queue interleave, so the
// mapping from global arrival order to worker assignment is only
// approximately round-robin; each producer still gets a unique slot.
// This is a deliberate trade against paying for a second lock.
type Pool[T any] interface {
	// Enqueue routes item to the next worker in round-robin order.
	// Never blocks; items enqueued after Shutdown are dropped.
	Enqueue(item T)

	// EnqueueKey routes item by key hash, so items sharing a key are
	// serialized on one worker's queue in enqueue order.
	EnqueueKey(key string, item T)

	// Stats returns a best-effort snapshot of the pool's counters.
	Stats() Stats

	// Size returns the number of workers.
	Size() int

	// Shutdown stops every worker, discarding their queued items.
	// Idempotent; the returned channel closes once all workers exited.
	Shutdown() <-chan struct{}
}

// Config holds configuration options for creating a round-robin pool.
type Config[T any] struct {
	// Workers is the number of independent workers.
	// Zero means runtime.NumCPU().
	Workers int

	// Processor is invoked once per item on the owning worker's
	// goroutine. Must not be nil.
	Processor worker.Processor[T]

	// OnError receives processor errors and recovered panics, shared by
	// all workers. If nil, failures are dropped.
	OnError func(item T, err error)

	// PanicHandler, if set, receives recovered panics instead of OnError.
	PanicHandler func(item T, recovered interface{})
}

type pool[T any] struct {
	workers []worker.Worker[T]

	counter atomic.Uint64
	keyed   atomic.Uint64

	done         chan struct{}
	shutdownOnce sync.Once
}

// New creates a pool of workers independent single-consumer workers.
// workers == 0 uses the host's logical core count.
func New[T any](workers int, proc worker.Processor[T]) Pool[T] {
	return NewWithConfig(Config[T]{Workers: workers, Processor: proc})
}

// NewWithConfig creates a round-robin pool with the specified configuration.
func NewWithConfig[T any](config Config[T]) Pool[T] {
	if config.Processor == nil {
		panic("processor cannot be nil")
	}

	n := config.Workers
	if n <= 0 {
		n = runtime.NumCPU()
	}

	p := &pool[T]{
		workers: make([]worker.Worker[T], n),
		done:    make(chan struct{}),
	}

	for i := 0; i < n; i++ {
		p.workers[i] = worker.NewWithConfig(worker.Config[T]{
			Workers:      1,
			Processor:    config.Processor,
			OnError:      config.OnError,
			PanicHandler: config.PanicHandler,
		})
	}

	return p
}

// Enqueue routes item to the next worker. The counter is advanced before
// the index is computed, so concurrent producers each claim a distinct slot.
func (p *pool[T]) Enqueue(item T) {
	idx := p.counter.Add(1) % uint64(len(p.workers))
	p.workers[idx].Enqueue(item)
}

// EnqueueKey routes item to the worker owning the key's hash slot. All
// items carrying the same key land on the same queue and are processed
// in enqueue order relative to each other.
func (p *pool[T]) EnqueueKey(key string, item T) {
	p.keyed.Add(1)
	idx := murmur3.Sum32([]byte(key)) % uint32(len(p.workers))
	p.workers[idx].Enqueue(item)
}

// Stats returns a best-effort snapshot of the pool's counters.
func (p *pool[T]) Stats() Stats {
	stats := Stats{
		Workers:     len(p.workers),
		Dispatched:  p.counter.Load(),
		Keyed:       p.keyed.Load(),
		WorkerStats: make([]worker.Stats, len(p.workers)),
	}
	for i, w := range p.workers {
		stats.WorkerStats[i] = w.Stats()
	}
	return stats
}

// Size returns the number of workers.
func (p *pool[T]) Size() int {
	return len(p.workers)
}

// Shutdown stops every worker in parallel and waits for all of them.
func (p *pool[T]) Shutdown() <-chan struct{} {
	p.shutdownOnce.Do(func() {
		go func() {
			var wg sync.WaitGroup
			for _, w := range p.workers {
				wg.Add(1)
				go func(w worker.Worker[T]) {
					defer wg.Done()
					<-w.Shutdown()
				}(w)
			}
			wg.Wait()
			close(p.done)
		}()
	})

	return p.done
}
