package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Run statuses.
const (
	StatusOK        = "ok"
	StatusError     = "error"
	StatusCancelled = "cancelled"
)

// Run tracks one activation of a traced pull chain: a span from the first
// pull to exhaustion, early stop or failure, and the elements seen in
// between. A nil Metrics skips metric recording.
type Run struct {
	Stage     string
	ChainID   string
	StartTime time.Time
	Elements  int
	Metrics   *Metrics

	span  trace.Span
	ended bool
}

// StartRun opens the span of a pull chain activation.
func StartRun(ctx context.Context, stage, chainID string, metrics *Metrics) (context.Context, *Run) {
	ctx, span := StartSpan(ctx, SpanChain, trace.WithAttributes(
		attribute.String(AttrStage, stage),
		attribute.String(AttrChainID, chainID),
	))
	return ctx, &Run{
		Stage:     stage,
		ChainID:   chainID,
		StartTime: time.Now(),
		Metrics:   metrics,
		span:      span,
	}
}

// Element records one element passing the stage.
func (r *Run) Element(ctx context.Context) {
	r.Elements++
	if r.Metrics != nil {
		r.Metrics.RecordElement(ctx, r.Stage)
	}
}

// End closes the span with the given outcome. Calls after the first are
// ignored, so consumers may end a run both on exhaustion and on close.
func (r *Run) End(ctx context.Context, status string, err error) {
	if r.ended {
		return
	}
	r.ended = true
	duration := time.Since(r.StartTime)

	if err != nil {
		SetSpanError(trace.ContextWithSpan(ctx, r.span), err)
		r.span.SetAttributes(attribute.String(AttrErrorMessage, err.Error()))
		if r.Metrics != nil {
			r.Metrics.RecordError(ctx, r.Stage)
		}
	}

	r.span.SetAttributes(
		attribute.String(AttrStatus, status),
		attribute.Int(AttrElements, r.Elements),
		attribute.Int64(AttrDurationMs, duration.Milliseconds()),
	)
	r.span.End()

	if r.Metrics != nil {
		r.Metrics.RecordChainEnd(ctx, r.Stage, status, duration)
	}
}

// Ended reports whether End has been called.
func (r *Run) Ended() bool { return r.ended }

// Duration returns the elapsed time since the run started.
func (r *Run) Duration() time.Duration {
	return time.Since(r.StartTime)
}
