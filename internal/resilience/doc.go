// Package resilience groups the fault-tolerance helpers.
//
//   - circuitbreaker: one gobreaker per metadata source, so a failing upstream is skipped fast
//   - retry: capped exponential backoff for the start-up database ping
//
//	b := circuitbreaker.New(circuitbreaker.ForSource("watchpage"))
//	body, err := b.Execute(func() (any, error) { return fetch(ctx, url) })
//
//	err := retry.Do(ctx, retry.Startup(), func(ctx context.Context) error {
//	    return retry.Transient(db.PingContext(ctx))
//	})
package resilience
