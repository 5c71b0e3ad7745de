package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// tracer is the global tracer instance for the randomyt service.
var tracer = otel.Tracer("randomyt")

// GetTracer returns the global tracer for creating spans.
//
//	ctx, span := tracing.GetTracer().Start(ctx, "metadata.Resolve")
//	defer span.End()
func GetTracer() trace.Tracer {
	return tracer
}
