package seq

import (
	"context"
	"iter"

	"github.com/google/uuid"

	"github.com/kbukum/seqfns/logger"
	"github.com/kbukum/seqfns/observability"
)

// TraceOption configures a Trace stage.
type TraceOption func(*TraceConfig)

// TraceConfig holds the resolved settings of a Trace stage.
type TraceConfig struct {
	Logger  *logger.Logger
	Metrics *observability.Metrics
	// Context is the parent of the spans opened by synchronous traversals.
	Context context.Context
}

// WithLogger sets the logger a Trace stage writes to.
func WithLogger(l *logger.Logger) TraceOption {
	return func(c *TraceConfig) { c.Logger = l }
}

// WithMetrics records element and chain metrics on m.
func WithMetrics(m *observability.Metrics) TraceOption {
	return func(c *TraceConfig) { c.Metrics = m }
}

// WithContext sets the parent context of the spans opened by a synchronous
// Trace stage.
func WithContext(ctx context.Context) TraceOption {
	return func(c *TraceConfig) { c.Context = ctx }
}

// ResolveTrace applies opts over the defaults: the registered "seq" logger,
// no metrics, and a background parent context.
func ResolveTrace(opts ...TraceOption) TraceConfig {
	cfg := TraceConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Get("seq")
	}
	if cfg.Context == nil {
		cfg.Context = context.Background()
	}
	return cfg
}

// StageLogger returns the logger of one traversal of the named stage.
func (c TraceConfig) StageLogger(name, chainID string) *logger.Logger {
	return c.Logger.WithFields(logger.Fields(
		logger.FieldStage, name,
		logger.FieldChainID, chainID,
	))
}

// Trace passes elements through unchanged while observing each traversal:
// every traversal gets a fresh chain id, a span that lasts until the
// traversal ends, debug logs per element and a summary log at the end.
func Trace[S Sequence[T], T any](src S, name string, opts ...TraceOption) iter.Seq[T] {
	cfg := ResolveTrace(opts...)
	return func(yield func(T) bool) {
		chainID := uuid.NewString()
		log := cfg.StageLogger(name, chainID)
		ctx, run := observability.StartRun(cfg.Context, name, chainID, cfg.Metrics)
		log.Debug("traversal started")

		status := observability.StatusError
		defer func() {
			run.End(ctx, status, nil)
			log.Debug("traversal finished", logger.Fields(
				logger.FieldElements, run.Elements,
				observability.AttrStatus, status,
				logger.FieldDuration, run.Duration().Milliseconds(),
			))
		}()

		for item := range src {
			if log.DebugEnabled() {
				log.Debug("element", logger.Fields(logger.FieldIndex, run.Elements))
			}
			run.Element(ctx)
			if !yield(item) {
				status = observability.StatusOK
				return
			}
		}
		status = observability.StatusOK
	}
}
