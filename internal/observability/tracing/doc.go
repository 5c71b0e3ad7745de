// Package tracing provides OpenTelemetry tracing integration.
//
// The HTTP middleware opens a server span per request and exposes its trace ID
// in the X-Trace-Id response header. Use cases open child spans with GetTracer.
// Spans are exported by whatever TracerProvider is installed globally.
package tracing
