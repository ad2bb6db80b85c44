package stream

import (
	"context"
	"slices"

	"github.com/go-softwarelab/common/pkg/types"

	"github.com/kbukum/seqfns/seq"
)

// Sort drains the source and returns its values in ascending order. Equal
// values have no guaranteed relative order in any of the sort functions.
func Sort[T types.Ordered](ctx context.Context, src Source[T]) ([]T, error) {
	return sorted(ctx, src, func(items []T) []T {
		return seq.Sort(slices.Values(items))
	})
}

// SortDescending drains the source and returns its values in descending
// order.
func SortDescending[T types.Ordered](ctx context.Context, src Source[T]) ([]T, error) {
	return sorted(ctx, src, func(items []T) []T {
		return seq.SortDescending(slices.Values(items))
	})
}

// SortBy drains the source and returns its values ordered ascending by the
// key from selector. The selector runs once per value, while draining.
func SortBy[T any, K types.Ordered](ctx context.Context, src Source[T], selector Selector[T, K]) ([]T, error) {
	return sortedBy(ctx, src, selector, func(keyed []types.Pair[K, T]) []types.Pair[K, T] {
		return seq.SortBy(slices.Values(keyed), pairKey[K, T])
	})
}

// SortByDescending drains the source and returns its values ordered
// descending by the key from selector.
func SortByDescending[T any, K types.Ordered](ctx context.Context, src Source[T], selector Selector[T, K]) ([]T, error) {
	return sortedBy(ctx, src, selector, func(keyed []types.Pair[K, T]) []types.Pair[K, T] {
		return seq.SortByDescending(slices.Values(keyed), pairKey[K, T])
	})
}

func sorted[T any](ctx context.Context, src Source[T], sortFn func([]T) []T) ([]T, error) {
	items, err := ToSlice(ctx, src)
	if err != nil {
		return nil, err
	}
	return sortFn(items), nil
}

// sortedBy pairs every value with its key, sorts the pairs and unwraps them.
func sortedBy[T, K any](ctx context.Context, src Source[T], selector Selector[T, K], sortFn func([]types.Pair[K, T]) []types.Pair[K, T]) ([]T, error) {
	var keyed []types.Pair[K, T]
	err := each(ctx, src, func(val T) (bool, error) {
		key, err := selector(ctx, val)
		if err != nil {
			return false, err
		}
		keyed = append(keyed, types.Pair[K, T]{Left: key, Right: val})
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	pairs := sortFn(keyed)
	out := make([]T, len(pairs))
	for i, p := range pairs {
		out[i] = p.Right
	}
	return out, nil
}

func pairKey[K, T any](p types.Pair[K, T]) K { return p.Left }
