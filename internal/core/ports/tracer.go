package ports

import "context"

// Tracer creates spans around units of work.
//
//go:generate mockgen -source=tracer.go -destination=mocks/mock_tracer.go -package=mocks
type Tracer interface {
	// Start opens a span named name as a child of any span in ctx.
	Start(ctx context.Context, name string) (context.Context, Span)

	// SetVerbose toggles logging of every finished span.
	SetVerbose(enable bool)
}

// Span is a single traced unit of work.
type Span interface {
	// End completes the span.
	End()

	// RecordError marks the span as failed.
	RecordError(err error)

	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
}
