/*
Package roundrobin provides a pool of independent single-consumer workers
with counter-based dispatch.

Unlike a shared-queue pool, every worker here owns a private FIFO queue.
Enqueue claims a slot from an atomic counter and forwards the item to
slot mod N, so a consumer that blocks stalls only every Nth item instead
of the whole pool. The trade-off is weaker global ordering: each producer
claims a unique slot, but delivery order to a given worker across
producers is not otherwise ordered.

	pool := roundrobin.New(0, process) // 0 = one worker per logical core
	defer func() { <-pool.Shutdown() }()

	pool.Enqueue(item)

EnqueueKey hashes a caller-supplied key instead of consulting the
counter, pinning all items with the same key to one worker so they are
processed sequentially while distinct keys spread across the pool:

	pool.EnqueueKey("user:123", ev) // serialized per user
*/
package roundrobin
