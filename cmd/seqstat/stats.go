package main

import (
	"context"

	"github.com/kbukum/seqfns/errors"
	"github.com/kbukum/seqfns/observability"
	"github.com/kbukum/seqfns/seq"
	"github.com/kbukum/seqfns/stream"
)

const stageName = "seqstat"

// Stats summarises the values produced by the configured chain.
type Stats struct {
	Count int
	Sum   float64
	Mean  float64
	Min   float64
	Max   float64
	Empty bool
}

// Fields renders s for structured logging.
func (s Stats) Fields() map[string]any {
	fields := map[string]any{"count": s.Count, "sum": s.Sum, "empty": s.Empty}
	if !s.Empty {
		fields["mean"] = s.Mean
		fields["min"] = s.Min
		fields["max"] = s.Max
	}
	return fields
}

// summarize builds the chain for cfg, traverses it once and computes Stats.
func summarize(ctx context.Context, cfg *Config, metrics *observability.Metrics) (Stats, error) {
	var (
		values []float64
		err    error
	)
	switch cfg.Mode {
	case modeStream:
		values, err = streamValues(ctx, cfg, seq.WithMetrics(metrics))
	default:
		values, err = syncValues(cfg, seq.WithMetrics(metrics), seq.WithContext(ctx))
	}
	if err != nil {
		return Stats{}, err
	}
	return statsOf(values)
}

func syncValues(cfg *Config, opts ...seq.TraceOption) ([]float64, error) {
	chain, err := seq.Init(cfg.Range.Spec())
	if err != nil {
		return nil, err
	}
	p := cfg.Pipeline
	chain = chain.Skip(p.Skip)
	if p.Take != nil {
		chain = chain.Take(*p.Take)
	}
	if p.Distinct {
		chain = chain.Distinct()
	}
	if p.Scale != nil {
		factor := *p.Scale
		chain = chain.Map(func(v float64, _ int) float64 { return v * factor })
	}
	return chain.Trace(stageName, opts...).ToSlice(), nil
}

func streamValues(ctx context.Context, cfg *Config, opts ...seq.TraceOption) ([]float64, error) {
	chain, err := stream.Init(cfg.Range.Spec())
	if err != nil {
		return nil, err
	}
	p := cfg.Pipeline
	chain = chain.Skip(p.Skip)
	if p.Take != nil {
		chain = chain.Take(*p.Take)
	}
	if p.Distinct {
		chain = chain.Distinct()
	}
	if p.Scale != nil {
		factor := *p.Scale
		chain = chain.Map(func(_ context.Context, v float64, _ int) (float64, error) { return v * factor, nil })
	}
	return chain.Trace(stageName, opts...).ToSlice(ctx)
}

func statsOf(values []float64) (Stats, error) {
	src := seq.FromSlice(values)
	stats := Stats{Count: src.Count(), Sum: seq.Sum(src)}

	mean, err := seq.Mean(src)
	if errors.HasCode(err, errors.ErrCodeEmptyCollection) {
		stats.Empty = true
		return stats, nil
	}
	if err != nil {
		return Stats{}, err
	}
	stats.Mean = mean
	if stats.Min, err = seq.Min(src); err != nil {
		return Stats{}, err
	}
	if stats.Max, err = seq.Max(src); err != nil {
		return Stats{}, err
	}
	return stats, nil
}
