// Package metrics provides the Prometheus business metrics of the service.
//
// It covers metadata resolution (per-source attempts and overall outcome),
// publish outcomes, the stored video count and database query latency.
// HTTP request metrics live next to the HTTP middleware.
//
// All metrics are registered with the Prometheus default registry
// and exposed via the /metrics endpoint.
//
// Example usage:
//
//	start := time.Now()
//	res := src.Fetch(ctx, id)
//	metrics.RecordSourceAttempt(src.Name(), "complete", time.Since(start))
package metrics
