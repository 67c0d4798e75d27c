package watch

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Span annotates the OpenTelemetry span already carried in ctx with one
// span event per step and an error record per failure. It never starts
// spans of its own; a ctx without a recording span makes Step a no-op.
type Span struct{}

func (Span) Step(ctx context.Context, e Event) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	span.AddEvent(e.Op, trace.WithAttributes(
		attribute.String("rail.result_id", e.ResultID.String()),
		attribute.Bool("rail.success", e.Success),
		attribute.Bool("rail.canceled", e.Canceled),
		attribute.Int64("rail.elapsed_ms", e.Elapsed.Milliseconds()),
	))

	if e.Err != nil {
		span.RecordError(e.Err)
		if !e.Canceled {
			span.SetStatus(codes.Error, e.Err.Error())
		}
	}
}
