/*
Package periodic provides background timers that invoke a callback on a
fixed period or a cron schedule.

Each timer owns one goroutine. Between invocations the goroutine sleeps
on an interruptible wait, so Shutdown completes promptly even with a
multi-hour period. A panicking callback is recovered at the loop
boundary and the schedule continues; route panics to a hook with
WithOnError when visibility matters.

	flusher, err := periodic.New(flush, 30*time.Second,
		periodic.WithName("cache-flusher"))
	if err != nil {
		return err
	}
	if err := flusher.Start(); err != nil {
		return err
	}
	defer func() { <-flusher.Shutdown() }()

Cron schedules use the seconds-enabled format:

	nightly, _ := periodic.NewCron(compact, "0 0 3 * * *")
*/
package periodic
