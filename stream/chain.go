package stream

import (
	"context"
	"slices"

	"github.com/go-softwarelab/common/pkg/types"

	"github.com/kbukum/seqfns/internal/ordering"
	"github.com/kbukum/seqfns/seq"
)

// Chain wraps a Source with chainable stages and terminals. Stages return a
// new Chain; terminals take the context that drives the pull.
//
// Methods cannot introduce type parameters, so type-changing stages go
// through the package functions, which accept a Chain as their Source. Keys
// are typed any: they must be comparable for Distinct, DistinctBy and
// GroupBy, and ordered (integers, floats, strings) for the sort methods.
type Chain[T any] struct {
	source Source[T]
}

// NewChain wraps src.
func NewChain[T any](src Source[T]) *Chain[T] {
	return &Chain[T]{source: src}
}

// Iter starts a pull chain over the wrapped source.
func (c *Chain[T]) Iter(ctx context.Context) Iterator[T] {
	return c.source.Iter(ctx)
}

// Map applies fn to every value.
func (c *Chain[T]) Map(fn func(context.Context, T, int) (T, error)) *Chain[T] {
	return NewChain[T](Map(c.source, fn))
}

// Filter keeps the values matching fn.
func (c *Chain[T]) Filter(fn func(context.Context, T, int) (bool, error)) *Chain[T] {
	return NewChain[T](Filter(c.source, fn))
}

// Choose keeps the values fn reports as present.
func (c *Chain[T]) Choose(fn func(context.Context, T, int) (T, bool, error)) *Chain[T] {
	return NewChain[T](Choose(c.source, fn))
}

// Collect flattens the nested sources returned by fn.
func (c *Chain[T]) Collect(fn func(context.Context, T, int) (Source[T], error)) *Chain[T] {
	return NewChain[T](Collect(c.source, fn))
}

// Append yields other after the chain.
func (c *Chain[T]) Append(other Source[T]) *Chain[T] {
	return NewChain[T](Append(c.source, other))
}

// Distinct keeps the first occurrence of every value.
func (c *Chain[T]) Distinct() *Chain[T] {
	return c.DistinctBy(func(_ context.Context, v T, _ int) (any, error) { return v, nil })
}

// DistinctBy keeps the first value for every key.
func (c *Chain[T]) DistinctBy(fn func(context.Context, T, int) (any, error)) *Chain[T] {
	return NewChain[T](DistinctBy(c.source, fn))
}

// Skip drops the first count values.
func (c *Chain[T]) Skip(count int) *Chain[T] {
	return NewChain[T](Skip(c.source, count))
}

// Take keeps at most count values.
func (c *Chain[T]) Take(count int) *Chain[T] {
	return NewChain[T](Take(c.source, count))
}

// Pairwise pairs every value with its predecessor. The result is a
// Pipeline; wrap it with NewChain to keep chaining.
func (c *Chain[T]) Pairwise() *Pipeline[types.Pair[T, T]] {
	return Pairwise(c.source)
}

// Tap calls fn for every value.
func (c *Chain[T]) Tap(fn func(context.Context, T, int) error) *Chain[T] {
	return NewChain[T](Tap(c.source, fn))
}

// Trace observes every pull chain started from the chain.
func (c *Chain[T]) Trace(name string, opts ...seq.TraceOption) *Chain[T] {
	return NewChain[T](Trace(c.source, name, opts...))
}

// Get returns the first value matching fn or errors.ErrNotFound.
func (c *Chain[T]) Get(ctx context.Context, fn func(context.Context, T, int) (bool, error)) (T, error) {
	return Get(ctx, c.source, fn)
}

// Find returns the first value matching fn, if any.
func (c *Chain[T]) Find(ctx context.Context, fn func(context.Context, T, int) (bool, error)) (T, bool, error) {
	return Find(ctx, c.source, fn)
}

// Exists reports whether any value matches fn.
func (c *Chain[T]) Exists(ctx context.Context, fn func(context.Context, T, int) (bool, error)) (bool, error) {
	return Exists(ctx, c.source, fn)
}

// Every reports whether all values match fn.
func (c *Chain[T]) Every(ctx context.Context, fn func(context.Context, T, int) (bool, error)) (bool, error) {
	return Every(ctx, c.source, fn)
}

// GroupBy groups the values by key.
func (c *Chain[T]) GroupBy(ctx context.Context, fn func(context.Context, T, int) (any, error)) (*seq.Grouping[any, T], error) {
	return GroupBy(ctx, c.source, fn)
}

// Sort returns the values in ascending order.
func (c *Chain[T]) Sort(ctx context.Context) ([]T, error) {
	return c.sorted(ctx, seq.Chain[T].Sort)
}

// SortDescending returns the values in descending order.
func (c *Chain[T]) SortDescending(ctx context.Context) ([]T, error) {
	return c.sorted(ctx, seq.Chain[T].SortDescending)
}

// SortBy returns the values ordered ascending by key.
func (c *Chain[T]) SortBy(ctx context.Context, selector func(context.Context, T) (any, error)) ([]T, error) {
	return sortedBy(ctx, c.source, selector, func(keyed []types.Pair[any, T]) []types.Pair[any, T] {
		return seq.FromSlice(keyed).SortBy(pairKey[any, T])
	})
}

// SortByDescending returns the values ordered descending by key.
func (c *Chain[T]) SortByDescending(ctx context.Context, selector func(context.Context, T) (any, error)) ([]T, error) {
	return sortedBy(ctx, c.source, selector, func(keyed []types.Pair[any, T]) []types.Pair[any, T] {
		return seq.FromSlice(keyed).SortByDescending(pairKey[any, T])
	})
}

func (c *Chain[T]) sorted(ctx context.Context, sortFn func(seq.Chain[T]) []T) ([]T, error) {
	items, err := ToSlice(ctx, c.source)
	if err != nil {
		return nil, err
	}
	return sortFn(seq.From(slices.Values(items))), nil
}

// Reverse returns the values in reverse order.
func (c *Chain[T]) Reverse(ctx context.Context) ([]T, error) {
	return Reverse(ctx, c.source)
}

// Sum returns the total of numeric values.
func (c *Chain[T]) Sum(ctx context.Context) (float64, error) {
	return SumBy(ctx, c.source, toFloat[T])
}

// SumBy returns the total of selector over the values.
func (c *Chain[T]) SumBy(ctx context.Context, selector func(context.Context, T) (float64, error)) (float64, error) {
	return SumBy(ctx, c.source, selector)
}

// Max returns the largest numeric value.
func (c *Chain[T]) Max(ctx context.Context) (float64, error) {
	return MaxBy(ctx, c.source, toFloat[T])
}

// MaxBy returns the largest value of selector over the values.
func (c *Chain[T]) MaxBy(ctx context.Context, selector func(context.Context, T) (float64, error)) (float64, error) {
	return MaxBy(ctx, c.source, selector)
}

// Min returns the smallest numeric value.
func (c *Chain[T]) Min(ctx context.Context) (float64, error) {
	return MinBy(ctx, c.source, toFloat[T])
}

// MinBy returns the smallest value of selector over the values.
func (c *Chain[T]) MinBy(ctx context.Context, selector func(context.Context, T) (float64, error)) (float64, error) {
	return MinBy(ctx, c.source, selector)
}

// Mean returns the mean of numeric values.
func (c *Chain[T]) Mean(ctx context.Context) (float64, error) {
	return MeanBy(ctx, c.source, toFloat[T])
}

// MeanBy returns the mean of selector over the values.
func (c *Chain[T]) MeanBy(ctx context.Context, selector func(context.Context, T) (float64, error)) (float64, error) {
	return MeanBy(ctx, c.source, selector)
}

// Count returns the number of values.
func (c *Chain[T]) Count(ctx context.Context) (int, error) {
	return Count(ctx, c.source)
}

// Length is an alias of Count.
func (c *Chain[T]) Length(ctx context.Context) (int, error) {
	return Count(ctx, c.source)
}

// ToSlice returns every value in order.
func (c *Chain[T]) ToSlice(ctx context.Context) ([]T, error) {
	return ToSlice(ctx, c.source)
}

// ForEach calls fn for every value.
func (c *Chain[T]) ForEach(ctx context.Context, fn func(context.Context, T, int) error) error {
	return ForEach(ctx, c.source, fn)
}

func toFloat[T any](_ context.Context, v T) (float64, error) {
	return ordering.Float(v), nil
}
