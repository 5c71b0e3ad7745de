package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// NewProvider creates an SDK tracer provider sampling the given fraction of
// new root traces. Requests that arrive with a sampled parent stay sampled.
// Extra options (exporters, resources) are appended as-is.
func NewProvider(sampleRatio float64, opts ...sdktrace.TracerProviderOption) *sdktrace.TracerProvider {
	base := []sdktrace.TracerProviderOption{
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(sampleRatio))),
	}
	return sdktrace.NewTracerProvider(append(base, opts...)...)
}

// Install makes tp the global provider and registers the W3C trace-context
// and baggage propagators used by Middleware.
func Install(tp *sdktrace.TracerProvider) {
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
}
