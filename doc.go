/*
Package goasync provides in-process asynchrony primitives for handing off
units of work and resource lifetimes without coordinating goroutines,
locks, and wake-ups by hand.

Queue Engines (pkg/worker, pkg/roundrobin):
  - worker: single background consumer draining a private FIFO queue
  - worker: shared-queue pool of N consumers (first-awake-wins)
  - roundrobin: N independent single-consumer queues, dispatch by
    atomic counter modulo N, plus key-affinity routing

Resource Management (pkg/resourcepool, pkg/guard):
  - resourcepool: checkout/checkin store with FIFO recycle order
  - guard: run-exactly-once scoped cleanup

Timers (pkg/periodic):
  - periodic: fixed-period and cron-schedule callback invocation

Example usage:

	import (
		"github.com/vnykmshr/goasync/pkg/roundrobin"
		"github.com/vnykmshr/goasync/pkg/worker"
	)

	w := worker.New(func(msg string) error {
		return deliver(msg)
	})
	defer func() { <-w.Shutdown() }()

	w.Enqueue("hello") // never blocks, FIFO delivery

	pool := roundrobin.New(8, process) // 8 independent queues
	pool.Enqueue(item)

Enqueue is one-way and ownership-transferring: items queued when a worker
is shut down are discarded, never processed twice.
*/
package goasync
