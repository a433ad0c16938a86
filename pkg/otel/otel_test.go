package otel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestGetTraceID(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	t.Cleanup(func() { tp.Shutdown(context.Background()) })

	ctx := InjectTracing(context.Background(), tp.Tracer("test"))
	ctx, span := AddSpan(ctx, "op")
	defer span.End()

	require.True(t, span.SpanContext().HasTraceID())
	assert.Equal(t, span.SpanContext().TraceID().String(), GetTraceID(ctx))
}

func TestGetTraceIDWithoutSpan(t *testing.T) {
	// Zero id when the context carries no span.
	assert.Equal(t, "00000000000000000000000000000000", GetTraceID(context.Background()))
}

func TestAddSpanWithoutTracer(t *testing.T) {
	ctx, span := AddSpan(context.Background(), "op")
	require.NotNil(t, span)
	assert.False(t, span.SpanContext().IsValid())
	assert.Equal(t, context.Background(), ctx)
}
