package stream

import (
	"context"

	"github.com/go-softwarelab/common/pkg/types"

	"github.com/kbukum/seqfns/errors"
)

// Selector maps a value to the key or number an aggregate or sort works on.
// A selector error stops the drain and is returned unchanged.
type Selector[T, K any] func(ctx context.Context, val T) (K, error)

// Sum returns the total of the values, 0 for an empty source.
func Sum[N types.Number](ctx context.Context, src Source[N]) (N, error) {
	return SumBy(ctx, src, identity[N])
}

// SumBy returns the total of selector over the values.
func SumBy[T any, N types.Number](ctx context.Context, src Source[T], selector Selector[T, N]) (N, error) {
	var total N
	err := each(ctx, src, func(val T) (bool, error) {
		v, err := selector(ctx, val)
		if err != nil {
			return false, err
		}
		total += v
		return true, nil
	})
	if err != nil {
		var zero N
		return zero, err
	}
	return total, nil
}

// Max returns the largest value. It fails with errors.ErrEmptyCollection on
// an empty source.
func Max[N types.Ordered](ctx context.Context, src Source[N]) (N, error) {
	return MaxBy(ctx, src, identity[N])
}

// MaxBy returns the largest value of selector over the values.
func MaxBy[T any, N types.Ordered](ctx context.Context, src Source[T], selector Selector[T, N]) (N, error) {
	return extreme(ctx, src, selector, "max", func(candidate, current N) bool { return candidate > current })
}

// Min returns the smallest value. It fails with errors.ErrEmptyCollection on
// an empty source.
func Min[N types.Ordered](ctx context.Context, src Source[N]) (N, error) {
	return MinBy(ctx, src, identity[N])
}

// MinBy returns the smallest value of selector over the values.
func MinBy[T any, N types.Ordered](ctx context.Context, src Source[T], selector Selector[T, N]) (N, error) {
	return extreme(ctx, src, selector, "min", func(candidate, current N) bool { return candidate < current })
}

// Mean returns the arithmetic mean of the values. It fails with
// errors.ErrEmptyCollection on an empty source.
func Mean[N types.Number](ctx context.Context, src Source[N]) (float64, error) {
	return MeanBy(ctx, src, identity[N])
}

// MeanBy returns the arithmetic mean of selector over the values.
func MeanBy[T any, N types.Number](ctx context.Context, src Source[T], selector Selector[T, N]) (float64, error) {
	var total float64
	count := 0
	err := each(ctx, src, func(val T) (bool, error) {
		v, err := selector(ctx, val)
		if err != nil {
			return false, err
		}
		total += float64(v)
		count++
		return true, nil
	})
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, errors.EmptyCollection("mean")
	}
	return total / float64(count), nil
}

func extreme[T any, N types.Ordered](ctx context.Context, src Source[T], selector Selector[T, N], op string, better func(candidate, current N) bool) (N, error) {
	var result N
	found := false
	err := each(ctx, src, func(val T) (bool, error) {
		v, err := selector(ctx, val)
		if err != nil {
			return false, err
		}
		if !found || better(v, result) {
			result = v
			found = true
		}
		return true, nil
	})
	if err != nil {
		var zero N
		return zero, err
	}
	if !found {
		return result, errors.EmptyCollection(op)
	}
	return result, nil
}

func identity[T any](_ context.Context, v T) (T, error) { return v, nil }
