package stream

import (
	"context"
	stderrors "errors"

	"github.com/google/uuid"

	"github.com/kbukum/seqfns/logger"
	"github.com/kbukum/seqfns/observability"
	"github.com/kbukum/seqfns/seq"
)

// Trace passes values through unchanged while observing each pull chain:
// every Iter call gets a fresh chain id and a span that lasts until the
// chain is exhausted, fails or is closed. The span is a child of the
// context given to Iter; seq.WithContext is ignored here.
func Trace[T any](src Source[T], name string, opts ...seq.TraceOption) *Pipeline[T] {
	cfg := seq.ResolveTrace(opts...)
	return &Pipeline[T]{
		create: func(ctx context.Context) Iterator[T] {
			chainID := uuid.NewString()
			log := cfg.StageLogger(name, chainID)
			runCtx, run := observability.StartRun(ctx, name, chainID, cfg.Metrics)
			log.Debug("traversal started")
			return &traceIter[T]{source: src.Iter(runCtx), ctx: runCtx, run: run, log: log}
		},
	}
}

type traceIter[T any] struct {
	source Iterator[T]
	ctx    context.Context
	run    *observability.Run
	log    *logger.Logger
}

func (it *traceIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	val, ok, err := it.source.Next(ctx)
	if err != nil {
		it.finish(statusOf(err), err)
		return result, false, err
	}
	if !ok {
		it.finish(observability.StatusOK, nil)
		return result, false, nil
	}
	if it.log.DebugEnabled() {
		it.log.Debug("element", logger.Fields(logger.FieldIndex, it.run.Elements))
	}
	it.run.Element(it.ctx)
	return val, true, nil
}

func (it *traceIter[T]) Close() error {
	it.finish(observability.StatusOK, nil)
	return it.source.Close()
}

func (it *traceIter[T]) finish(status string, err error) {
	if it.run.Ended() {
		return
	}
	it.run.End(it.ctx, status, err)
	fields := logger.Fields(
		logger.FieldElements, it.run.Elements,
		observability.AttrStatus, status,
		logger.FieldDuration, it.run.Duration().Milliseconds(),
	)
	if err != nil {
		it.log.WithError(err).Warn("traversal failed", fields)
		return
	}
	it.log.Debug("traversal finished", fields)
}

func statusOf(err error) string {
	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		return observability.StatusCancelled
	}
	return observability.StatusError
}
