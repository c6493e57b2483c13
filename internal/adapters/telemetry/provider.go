// Package telemetry traces application work with OpenTelemetry.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/smolbuf/internal/core/ports"
)

// InstrumentationName names the tracer every span is created with.
const InstrumentationName = "go.trai.ch/smolbuf"

// OTelTracer is a concrete implementation of ports.Tracer using OpenTelemetry.
type OTelTracer struct {
	provider *sdktrace.TracerProvider
	tracer   trace.Tracer
	bridge   *Bridge
}

var _ ports.Tracer = (*OTelTracer)(nil)

// NewOTelTracer creates a tracer whose finished spans are reported to log
// once verbose mode is on. Extra processors receive every span as well.
func NewOTelTracer(log ports.Logger, processors ...sdktrace.SpanProcessor) *OTelTracer {
	bridge := NewBridge(log)

	opts := []sdktrace.TracerProviderOption{sdktrace.WithSpanProcessor(bridge)}
	for _, p := range processors {
		opts = append(opts, sdktrace.WithSpanProcessor(p))
	}
	tp := sdktrace.NewTracerProvider(opts...)

	return &OTelTracer{
		provider: tp,
		tracer:   tp.Tracer(InstrumentationName),
		bridge:   bridge,
	}
}

// Start creates a new span.
func (t *OTelTracer) Start(ctx context.Context, name string) (context.Context, ports.Span) {
	ctx, span := t.tracer.Start(ctx, name)
	return ctx, &OTelSpan{span: span}
}

// SetVerbose toggles logging of finished spans.
func (t *OTelTracer) SetVerbose(enable bool) {
	t.bridge.SetVerbose(enable)
}

// Shutdown flushes and stops every span processor.
func (t *OTelTracer) Shutdown(ctx context.Context) error {
	return t.provider.Shutdown(ctx)
}

// OTelSpan is a concrete implementation of ports.Span using OpenTelemetry.
type OTelSpan struct {
	span trace.Span
}

// End completes the span.
func (s *OTelSpan) End() {
	s.span.End()
}

// RecordError records an error for the span.
func (s *OTelSpan) RecordError(err error) {
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

// SetAttribute adds a key-value pair to the span.
func (s *OTelSpan) SetAttribute(key string, value any) {
	switch v := value.(type) {
	case string:
		s.span.SetAttributes(attribute.String(key, v))
	case int:
		s.span.SetAttributes(attribute.Int(key, v))
	case int64:
		s.span.SetAttributes(attribute.Int64(key, v))
	case float64:
		s.span.SetAttributes(attribute.Float64(key, v))
	case bool:
		s.span.SetAttributes(attribute.Bool(key, v))
	case []string:
		s.span.SetAttributes(attribute.StringSlice(key, v))
	default:
		s.span.SetAttributes(attribute.String(key, fmt.Sprintf("%v", v)))
	}
}
