// Package otel wires OpenTelemetry tracing for the project.
package otel

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Config holds the tracing setup parameters.
type Config struct {
	ServiceName string
	Host        string
	Probability float64
}

type ctxKey int

const tracerKey ctxKey = 1

// InitTracing builds a tracer provider exporting over OTLP/gRPC and
// installs it globally. The returned shutdown func flushes pending spans.
func InitTracing(log *zap.Logger, cfg Config) (*sdktrace.TracerProvider, func(context.Context) error, error) {
	exp, err := otlptracegrpc.New(context.Background(),
		otlptracegrpc.WithInsecure(),
		otlptracegrpc.WithEndpoint(cfg.Host),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("creating otlp exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.Probability))),
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(cfg.ServiceName),
		)),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	log.Info("tracing initialized", zap.String("endpoint", cfg.Host))

	return tp, tp.Shutdown, nil
}

// InjectTracing stores the tracer in the context so handlers can open
// spans without reaching for globals.
func InjectTracing(ctx context.Context, tracer trace.Tracer) context.Context {
	return context.WithValue(ctx, tracerKey, tracer)
}

// AddSpan starts a child span named name. If no tracer was injected the
// returned span is a no-op.
func AddSpan(ctx context.Context, name string, kv ...attribute.KeyValue) (context.Context, trace.Span) {
	tracer, ok := ctx.Value(tracerKey).(trace.Tracer)
	if !ok {
		return ctx, trace.SpanFromContext(ctx)
	}
	ctx, span := tracer.Start(ctx, name)
	span.SetAttributes(kv...)
	return ctx, span
}

// GetTraceID reports the current trace id, or the zero id when the
// context carries no recording span.
func GetTraceID(ctx context.Context) string {
	return trace.SpanFromContext(ctx).SpanContext().TraceID().String()
}
