// Package observability groups the logging, metrics and tracing infrastructure.
//
// Subpackages:
//   - logging: Structured logging utilities with slog
//   - metrics: Prometheus business metrics and recorders
//   - tracing: OpenTelemetry tracer and HTTP middleware
//
// Example usage:
//
//	logger := logging.NewLogger()
//	logger.Info("application started")
//	metrics.RecordPublish(metrics.PublishPublished)
package observability
