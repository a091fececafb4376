// Package tracer provides distributed tracing abstractions for tabload.
// It supports OpenTelemetry and allows custom tracer implementations.
package tracer

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer is the tracing interface for the loader. Implementations can
// provide OpenTelemetry or custom tracing.
type Tracer interface {
	// StartSpan starts a new tracing span with the given name
	StartSpan(ctx context.Context, name string) (context.Context, Span)
}

// Span represents a tracing span that captures the execution of an operation.
type Span interface {
	// SetAttributes sets key-value attributes on the span
	SetAttributes(attrs ...attribute.KeyValue)
	// RecordError records an error that occurred during the span
	RecordError(err error)
	// SetStatus sets the status code and description of the span
	SetStatus(code codes.Code, description string)
	// End marks the span as complete
	End()
}

// NoopTracer is a tracer that does nothing. It is the default when no
// tracing is configured.
type NoopTracer struct{}

// StartSpan returns the context unchanged with a no-op span.
func (NoopTracer) StartSpan(ctx context.Context, _ string) (context.Context, Span) {
	return ctx, NoopSpan{}
}

// NoopSpan is a span that does nothing.
type NoopSpan struct{}

// SetAttributes does nothing.
func (NoopSpan) SetAttributes(_ ...attribute.KeyValue) {}

// RecordError does nothing.
func (NoopSpan) RecordError(_ error) {}

// SetStatus does nothing.
func (NoopSpan) SetStatus(_ codes.Code, _ string) {}

// End does nothing.
func (NoopSpan) End() {}

// OtelTracer wraps an OpenTelemetry tracer to implement the Tracer interface.
type OtelTracer struct {
	tracer trace.Tracer
}

// NewOtelTracer creates a new OpenTelemetry tracer adapter.
// The provided tracer must not be nil.
func NewOtelTracer(tracer trace.Tracer) *OtelTracer {
	return &OtelTracer{tracer: tracer}
}

// StartSpan starts a new OpenTelemetry span.
func (t *OtelTracer) StartSpan(ctx context.Context, name string) (context.Context, Span) {
	ctx, span := t.tracer.Start(ctx, name)
	return ctx, &OtelSpan{span: span}
}

// OtelSpan wraps an OpenTelemetry span.
type OtelSpan struct {
	span trace.Span
}

// SetAttributes sets OpenTelemetry attributes on the span.
func (s *OtelSpan) SetAttributes(attrs ...attribute.KeyValue) {
	s.span.SetAttributes(attrs...)
}

// RecordError records an error on the OpenTelemetry span.
func (s *OtelSpan) RecordError(err error) {
	s.span.RecordError(err)
}

// SetStatus sets the status of the OpenTelemetry span.
func (s *OtelSpan) SetStatus(code codes.Code, description string) {
	s.span.SetStatus(code, description)
}

// End completes the OpenTelemetry span.
func (s *OtelSpan) End() {
	s.span.End()
}

// LoadMetadata describes one insert call or one batch for tracing purposes,
// following OpenTelemetry database semantic conventions.
type LoadMetadata struct {
	// Dialect is the database system name (redshift, pdw, hive, ...)
	Dialect string
	// Table is the destination table
	Table string
	// Strategy is the chosen execution strategy (direct, bulk, ctas)
	Strategy string
	// Rows is the number of rows covered by the span
	Rows int
	// Duration is how long the operation took
	Duration time.Duration
	// Error is any error that occurred
	Error error
}

// AddLoadAttributes adds database semantic convention attributes to a span.
// See: https://opentelemetry.io/docs/specs/semconv/database/
func AddLoadAttributes(span Span, meta *LoadMetadata) {
	span.SetAttributes(
		attribute.String("db.system", meta.Dialect),
		attribute.String("db.table", meta.Table),
		attribute.String("db.operation", "INSERT"),
		attribute.String("tabload.strategy", meta.Strategy),
		attribute.Int("tabload.rows", meta.Rows),
		attribute.Float64("db.duration_ms", float64(meta.Duration.Microseconds())/1000.0),
	)

	if meta.Error != nil {
		span.RecordError(meta.Error)
		span.SetStatus(codes.Error, meta.Error.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}
