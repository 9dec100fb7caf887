package worker

import (
	"sync"
	"sync/atomic"

	"github.com/vnykmshr/goasync/internal/queue"
)

// Processor handles one queued item. It takes ownership of the item and
// may fail; a failure (or panic) never terminates the consumer goroutine.
type Processor[T any] func(item T) error

// Stats is a best-effort snapshot of a worker's internal counters. It is
// read without stopping the consumers, so the fields are not mutually
// consistent to high precision.
type Stats struct {
	// Workers is the number of consumer goroutines.
	Workers int

	// QueueDepth is the number of items enqueued and not yet claimed.
	QueueDepth int

	// Enqueued is the total number of items ever accepted by Enqueue.
	Enqueued uint64

	// Processed is the total number of items whose processor returned nil.
	Processed uint64

	// Failed is the total number of items whose processor returned an
	// error or panicked.
	Failed uint64
}

// Worker drains a FIFO queue with one or more background goroutines.
//
// Enqueue transfers ownership of the item, never blocks, and never rejects
// while the worker is alive. Items are delivered to the processor exactly
// once, or never if the worker is shut down first; anything still queued
// at shutdown is discarded ("abandoned work").
type Worker[T any] interface {
	// Enqueue hands item to the worker. It returns immediately. Items
	// enqueued after Shutdown are silently dropped.
	Enqueue(item T)

	// Stats returns a best-effort snapshot of the internal counters.
	Stats() Stats

	// Shutdown stops the consumer goroutines, discarding queued items.
	// It is idempotent. The returned channel closes once every goroutine
	// has finished its in-flight callback and exited.
	Shutdown() <-chan struct{}
}

// Pool is a Worker whose queue is shared by N consumer goroutines.
// Whichever consumer wakes first claims the front item, so ordering is
// guaranteed only as items enter the shared queue, not across consumers.
type Pool[T any] interface {
	Worker[T]

	// Size returns the number of consumer goroutines.
	Size() int
}

// Config holds configuration options for creating a worker or pool.
type Config[T any] struct {
	// Workers is the number of consumer goroutines. Defaults to 1.
	Workers int

	// Processor is invoked once per item, outside any internal lock.
	// Must not be nil.
	Processor Processor[T]

	// OnError receives processor errors and recovered panics. If nil,
	// failures are dropped at the loop boundary and the loop continues.
	OnError func(item T, err error)

	// PanicHandler, if set, receives recovered panics instead of OnError.
	PanicHandler func(item T, recovered interface{})

	// OnStart is called when a consumer goroutine starts.
	// Useful for per-consumer initialization.
	OnStart func(workerID int)

	// OnStop is called when a consumer goroutine exits.
	OnStop func(workerID int)
}

// pool implements Worker and Pool.
type pool[T any] struct {
	config Config[T]
	queue  *queue.Queue[T]

	stopCh       chan struct{}
	done         chan struct{}
	shutdownOnce sync.Once
	wg           sync.WaitGroup

	enqueued  atomic.Uint64
	processed atomic.Uint64
	failed    atomic.Uint64
}

// New creates a single-consumer worker: one goroutine draining one
// private FIFO queue.
func New[T any](proc Processor[T]) Worker[T] {
	return NewWithConfig(Config[T]{Workers: 1, Processor: proc})
}

// NewPool creates a pool of workers consumer goroutines sharing one
// FIFO queue.
func NewPool[T any](workers int, proc Processor[T]) Pool[T] {
	return NewWithConfig(Config[T]{Workers: workers, Processor: proc})
}

// NewWithConfig creates a worker pool with the specified configuration.
func NewWithConfig[T any](config Config[T]) Pool[T] {
	if config.Processor == nil {
		panic("processor cannot be nil")
	}
	if config.Workers <= 0 {
		config.Workers = 1
	}

	p := &pool[T]{
		config: config,
		queue:  queue.New[T](),
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}

	for i := 0; i < config.Workers; i++ {
		p.wg.Add(1)
		go p.run(i)
	}

	return p
}
