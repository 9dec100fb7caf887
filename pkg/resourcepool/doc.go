/*
Package resourcepool provides a checkout/checkin store for reusable
resources such as database connections or parsed clients.

The pool never blocks: Checkout on an empty pool fails immediately with
errors.ErrEmptyPool so the caller can create a fresh resource instead,
and Checkin on an unbounded pool always succeeds. Resources cycle in
FIFO order, so repeated round trips spread wear across the population
instead of reusing the hottest resource.

	pool, _ := resourcepool.NewWithCapacity[*sql.Conn](8)

	conn, err := pool.CheckoutOrNew(dial)
	if err != nil {
		return err
	}
	defer pool.Checkin(conn)

A capacity bound is optional; New gives the original unbounded behavior
where the intended maximum is the caller's responsibility.
*/
package resourcepool
