package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNewProvider_SamplesEverythingAtRatioOne(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := NewProvider(1, sdktrace.WithSyncer(exporter))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	_, span := tp.Tracer("test").Start(context.Background(), "op")
	assert.True(t, span.SpanContext().IsSampled())
	assert.True(t, span.SpanContext().HasTraceID())
	span.End()

	assert.Len(t, exporter.GetSpans(), 1)
}

func TestNewProvider_RatioZeroStillAssignsTraceIDs(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := NewProvider(0, sdktrace.WithSyncer(exporter))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	_, span := tp.Tracer("test").Start(context.Background(), "op")
	assert.False(t, span.SpanContext().IsSampled())
	assert.True(t, span.SpanContext().HasTraceID())
	span.End()

	assert.Empty(t, exporter.GetSpans())
}

func TestInstall(t *testing.T) {
	prevTP := otel.GetTracerProvider()
	prevProp := otel.GetTextMapPropagator()
	t.Cleanup(func() {
		otel.SetTracerProvider(prevTP)
		otel.SetTextMapPropagator(prevProp)
	})

	tp := NewProvider(1)
	Install(tp)

	require.Same(t, tp, otel.GetTracerProvider())
	assert.ElementsMatch(t, []string{"traceparent", "tracestate", "baggage"}, otel.GetTextMapPropagator().Fields())
}
