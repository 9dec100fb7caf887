package worker

import (
	"fmt"
	"runtime/debug"
)

// Enqueue hands item to the consumers. It appends to the queue and
// signals after the lock is released, so a woken consumer never contends
// with the producer. Never blocks, never rejects while alive.
func (p *pool[T]) Enqueue(item T) {
	select {
	case <-p.stopCh:
		// Delivery is exactly-once-or-never: once shutdown begins the
		// item is dropped rather than queued into a dead queue.
		return
	default:
	}

	p.enqueued.Add(1)
	p.queue.Put(item)
}

// Stats returns a best-effort snapshot of the internal counters.
func (p *pool[T]) Stats() Stats {
	return Stats{
		Workers:    p.config.Workers,
		QueueDepth: p.queue.Len(),
		Enqueued:   p.enqueued.Load(),
		Processed:  p.processed.Load(),
		Failed:     p.failed.Load(),
	}
}

// Size returns the number of consumer goroutines.
func (p *pool[T]) Size() int {
	return p.config.Workers
}

// Shutdown initiates a graceful shutdown. Consumers finish their current
// callback invocation, then exit; queued items are discarded.
func (p *pool[T]) Shutdown() <-chan struct{} {
	p.shutdownOnce.Do(func() {
		close(p.stopCh)

		// Wait for all consumers to finish in a separate goroutine
		go func() {
			p.wg.Wait()
			close(p.done)
		}()
	})

	return p.done
}

// run is the main loop for a consumer goroutine.
func (p *pool[T]) run(id int) {
	defer p.wg.Done()

	if p.config.OnStart != nil {
		p.config.OnStart(id)
	}
	if p.config.OnStop != nil {
		defer p.config.OnStop(id)
	}

	for {
		item, ok := p.queue.Get(p.stopCh)
		if !ok {
			return
		}
		p.process(item)
	}
}

// process invokes the callback outside any internal lock. Errors and
// panics are confined to the loop boundary; the consumer goroutine never
// exits because of a bad item.
func (p *pool[T]) process(item T) {
	defer func() {
		if r := recover(); r != nil {
			p.failed.Add(1)
			switch {
			case p.config.PanicHandler != nil:
				p.config.PanicHandler(item, r)
			case p.config.OnError != nil:
				p.config.OnError(item, fmt.Errorf("processor panicked: %v\nStack trace:\n%s", r, debug.Stack()))
			}
		}
	}()

	if err := p.config.Processor(item); err != nil {
		p.failed.Add(1)
		if p.config.OnError != nil {
			p.config.OnError(item, err)
		}
		return
	}

	p.processed.Add(1)
}
