package telemetry

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/smolbuf/internal/core/ports"
)

// Bridge implements sdktrace.SpanProcessor to report finished spans through
// a Logger.
type Bridge struct {
	logger  ports.Logger
	verbose atomic.Bool
}

// NewBridge returns a new Bridge. It stays silent until SetVerbose(true).
func NewBridge(log ports.Logger) *Bridge {
	return &Bridge{logger: log}
}

// SetVerbose toggles logging of finished spans.
func (b *Bridge) SetVerbose(enable bool) {
	b.verbose.Store(enable)
}

// OnStart is called when a span starts.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs the span when verbose. Failed spans are logged as warnings.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil || !b.verbose.Load() {
		return
	}
	if !s.SpanContext().IsValid() {
		return
	}

	msg := formatSpan(s)
	if s.Status().Code == codes.Error {
		b.logger.Warn(msg)
		return
	}
	b.logger.Info(msg)
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}

// formatSpan renders a span as "span <name> took <duration> k=v ...", with
// attributes sorted by key.
func formatSpan(s sdktrace.ReadOnlySpan) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "span %s took %s", s.Name(), s.EndTime().Sub(s.StartTime()).Round(time.Microsecond))

	attrs := slices.Clone(s.Attributes())
	slices.SortFunc(attrs, func(a, b attribute.KeyValue) int {
		return cmp.Compare(a.Key, b.Key)
	})
	for _, kv := range attrs {
		fmt.Fprintf(&sb, " %s=%s", kv.Key, kv.Value.Emit())
	}

	if st := s.Status(); st.Code == codes.Error {
		desc := st.Description
		if desc == "" {
			desc = "failed"
		}
		fmt.Fprintf(&sb, " error=%q", desc)
	}
	return sb.String()
}
