/*
Package worker provides the producer/consumer queue engine behind goasync:
single-consumer workers and shared-queue pools draining an unbounded FIFO
queue with background goroutines.

A worker pairs one FIFO queue with one consumer goroutine; a pool shares
the same queue between N consumers. Producers hand items off with Enqueue
and continue immediately: the queue is unbounded, so producers are never
blocked and never rejected while the worker is alive.

Basic usage:

	w := worker.New(func(msg Email) error {
		return smtp.Send(msg)
	})
	defer func() { <-w.Shutdown() }()

	w.Enqueue(msg) // returns immediately, FIFO delivery

Shared-queue pool:

	pool := worker.NewPool(4, process) // 4 consumers, one queue
	defer func() { <-pool.Shutdown() }()

Delivery Contract:

Every enqueued item reaches the processor exactly once, or never if the
worker is shut down first. Order is FIFO within a queue; a pool makes no
ordering promise between items claimed by different consumers. The
processor always runs outside the queue lock, so a slow callback stalls
only its own consumer, never producers.

Failure Policy:

A processor error or panic is confined to the consumer loop: it is routed
to Config.OnError (or Config.PanicHandler for panics) when configured and
dropped otherwise. The consumer goroutine continues with the next item.

Shutdown:

Shutdown is cooperative. Each consumer finishes its in-flight callback,
then exits; items still queued are discarded. This abandoned work is a
deliberate trade-off: the alternative is a drain phase of unbounded
duration. Shutdown is idempotent and completes promptly even while every
consumer is parked waiting for work.
*/
package worker
