package stream

import (
	"context"
	"slices"

	"github.com/kbukum/seqfns/errors"
	"github.com/kbukum/seqfns/seq"
)

// ToSlice runs the pipeline and returns all values as a slice. On failure
// the values pulled so far are returned along with the error.
func ToSlice[T any](ctx context.Context, src Source[T]) ([]T, error) {
	result := []T{}
	err := each(ctx, src, func(val T) (bool, error) {
		result = append(result, val)
		return true, nil
	})
	return result, err
}

// Get returns the first value matching predicate. It fails with
// errors.ErrNotFound when the source is exhausted without a match.
func Get[T any](ctx context.Context, src Source[T], predicate func(context.Context, T, int) (bool, error)) (T, error) {
	val, found, err := Find(ctx, src, predicate)
	if err != nil {
		return val, err
	}
	if !found {
		return val, errors.NotFound()
	}
	return val, nil
}

// Find returns the first value matching predicate and true, or false when
// there is none. The error only reports a failed pull or callback.
func Find[T any](ctx context.Context, src Source[T], predicate func(context.Context, T, int) (bool, error)) (result T, found bool, err error) {
	index := 0
	err = each(ctx, src, func(val T) (bool, error) {
		match, err := predicate(ctx, val, index)
		index++
		if err != nil {
			return false, err
		}
		if match {
			result, found = val, true
			return false, nil
		}
		return true, nil
	})
	if err != nil {
		var zero T
		return zero, false, err
	}
	return result, found, nil
}

// Exists reports whether any value matches predicate, stopping at the first
// match.
func Exists[T any](ctx context.Context, src Source[T], predicate func(context.Context, T, int) (bool, error)) (bool, error) {
	_, found, err := Find(ctx, src, predicate)
	return found, err
}

// Every reports whether all values match predicate, stopping at the first
// value that does not.
func Every[T any](ctx context.Context, src Source[T], predicate func(context.Context, T, int) (bool, error)) (bool, error) {
	_, found, err := Find(ctx, src, func(ctx context.Context, val T, index int) (bool, error) {
		match, err := predicate(ctx, val, index)
		return !match, err
	})
	return !found && err == nil, err
}

// GroupBy drains the source and groups its values by the key returned from
// selector.
func GroupBy[T any, K comparable](ctx context.Context, src Source[T], selector func(context.Context, T, int) (K, error)) (*seq.Grouping[K, T], error) {
	groups := seq.NewGrouping[K, T]()
	index := 0
	err := each(ctx, src, func(val T) (bool, error) {
		key, err := selector(ctx, val, index)
		index++
		if err != nil {
			return false, err
		}
		groups.Add(key, val)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return groups, nil
}

// Reverse returns all values in reverse order.
func Reverse[T any](ctx context.Context, src Source[T]) ([]T, error) {
	items, err := ToSlice(ctx, src)
	if err != nil {
		return nil, err
	}
	slices.Reverse(items)
	return items, nil
}

// Count returns the number of values.
func Count[T any](ctx context.Context, src Source[T]) (int, error) {
	n := 0
	err := each(ctx, src, func(T) (bool, error) {
		n++
		return true, nil
	})
	return n, err
}

// Length is an alias of Count.
func Length[T any](ctx context.Context, src Source[T]) (int, error) {
	return Count(ctx, src)
}
