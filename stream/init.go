package stream

import (
	"context"

	"github.com/kbukum/seqfns/ranges"
)

// Init returns a chain over the finite numeric range described by spec. It
// fails with errors.ErrInfiniteSequence when a ranges.Bounds would never
// reach its end.
func Init(spec ranges.Spec) (*Chain[float64], error) {
	plan, err := ranges.Normalize(spec)
	if err != nil {
		return nil, err
	}
	return NewChain[float64](FromFunc(func(_ context.Context) Iterator[float64] {
		return &rangeIter{current: plan.Start, increment: plan.Increment, count: plan.Count}
	})), nil
}

// InitInfinite returns a chain over an unbounded numeric range. It honors
// cancellation of the pulling context, so it can also be bounded by a
// deadline instead of Take.
func InitInfinite(spec ranges.Infinite) *Chain[float64] {
	return NewChain[float64](FromFunc(func(_ context.Context) Iterator[float64] {
		return &rangeIter{current: spec.Start, increment: spec.Step(), count: -1}
	}))
}

// rangeIter yields count values, adding increment after each one. A
// negative count never ends.
type rangeIter struct {
	current   float64
	increment float64
	count     int
	emitted   int
}

func (it *rangeIter) Next(ctx context.Context) (float64, bool, error) {
	if err := ctx.Err(); err != nil {
		return 0, false, err
	}
	if it.count >= 0 && it.emitted >= it.count {
		return 0, false, nil
	}
	v := it.current
	it.current += it.increment
	it.emitted++
	return v, true, nil
}

func (it *rangeIter) Close() error { return nil }
