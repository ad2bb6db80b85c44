package seq

import (
	"iter"

	"github.com/go-softwarelab/common/pkg/types"

	"github.com/kbukum/seqfns/internal/ordering"
)

// Methods on Chain cannot introduce type parameters, so type-changing
// stages go through the package functions (seq.Map(chain, f)) and keys are
// typed any. Any-typed keys must be comparable for Distinct, DistinctBy and
// GroupBy, and ordered (integers, floats, strings) for the sort methods;
// other keys panic.

// Map applies mapping to every element.
func (c Chain[T]) Map(mapping func(T, int) T) Chain[T] {
	return Chain[T](Map(c, mapping))
}

// Filter keeps the elements matching predicate.
func (c Chain[T]) Filter(predicate func(T, int) bool) Chain[T] {
	return Chain[T](Filter(c, predicate))
}

// Choose keeps the values chooser reports as present.
func (c Chain[T]) Choose(chooser func(T, int) (T, bool)) Chain[T] {
	return Chain[T](Choose(c, chooser))
}

// Collect flattens the nested sequences returned by mapping.
func (c Chain[T]) Collect(mapping func(T, int) iter.Seq[T]) Chain[T] {
	return Chain[T](Collect(c, mapping))
}

// Append yields other after the chain.
func (c Chain[T]) Append(other iter.Seq[T]) Chain[T] {
	return Chain[T](Append(c, other))
}

// Distinct keeps the first occurrence of every element.
func (c Chain[T]) Distinct() Chain[T] {
	return c.DistinctBy(func(item T, _ int) any { return item })
}

// DistinctBy keeps the first element for every key.
func (c Chain[T]) DistinctBy(selector func(T, int) any) Chain[T] {
	return Chain[T](DistinctBy(c, selector))
}

// Skip drops the first count elements.
func (c Chain[T]) Skip(count int) Chain[T] {
	return Chain[T](Skip(c, count))
}

// Take keeps at most count elements.
func (c Chain[T]) Take(count int) Chain[T] {
	return Chain[T](Take(c, count))
}

// Pairwise pairs every element with its predecessor. The result is a plain
// sequence; wrap it with From to keep chaining.
func (c Chain[T]) Pairwise() iter.Seq[types.Pair[T, T]] {
	return Pairwise(c)
}

// Tap calls action for every element.
func (c Chain[T]) Tap(action func(T, int)) Chain[T] {
	return Chain[T](Tap(c, action))
}

// Trace observes every traversal of the chain.
func (c Chain[T]) Trace(name string, opts ...TraceOption) Chain[T] {
	return Chain[T](Trace(c, name, opts...))
}

// Get returns the first element matching predicate or errors.ErrNotFound.
func (c Chain[T]) Get(predicate func(T, int) bool) (T, error) {
	return Get(c, predicate)
}

// Find returns the first element matching predicate, if any.
func (c Chain[T]) Find(predicate func(T, int) bool) (T, bool) {
	return Find(c, predicate)
}

// Exists reports whether any element matches predicate.
func (c Chain[T]) Exists(predicate func(T, int) bool) bool {
	return Exists(c, predicate)
}

// Every reports whether all elements match predicate.
func (c Chain[T]) Every(predicate func(T, int) bool) bool {
	return Every(c, predicate)
}

// GroupBy groups the elements by key and returns the key/group pairs in
// first-occurrence order. Use GroupByChain for typed keys and a Chain result.
func (c Chain[T]) GroupBy(selector func(T, int) any) iter.Seq[types.Pair[any, []T]] {
	return GroupBy(c, selector).Pairs()
}

// GroupByChain groups c by key and wraps the key/group pairs in a new Chain.
func GroupByChain[T any, K comparable](c Chain[T], selector func(T, int) K) Chain[types.Pair[K, []T]] {
	return From(GroupBy(c, selector).Pairs())
}

// Sort returns the elements in ascending order.
func (c Chain[T]) Sort() []T {
	return c.SortBy(func(item T) any { return item })
}

// SortDescending returns the elements in descending order.
func (c Chain[T]) SortDescending() []T {
	return sortWith(c, func(a, b T) int {
		if ordering.Less(a, b) {
			return 1
		}
		return -1
	})
}

// SortBy returns the elements ordered ascending by key.
func (c Chain[T]) SortBy(selector func(T) any) []T {
	return sortWith(c, func(a, b T) int {
		if ordering.Greater(selector(a), selector(b)) {
			return 1
		}
		return -1
	})
}

// SortByDescending returns the elements ordered descending by key.
func (c Chain[T]) SortByDescending(selector func(T) any) []T {
	return sortWith(c, func(a, b T) int {
		if ordering.Greater(selector(a), selector(b)) {
			return -1
		}
		return 1
	})
}

// Reverse returns the elements in reverse order.
func (c Chain[T]) Reverse() []T {
	return Reverse(c)
}

// Sum returns the total of numeric elements.
func (c Chain[T]) Sum() float64 {
	return SumBy(c, toFloat[T])
}

// SumBy returns the total of selector over the elements.
func (c Chain[T]) SumBy(selector func(T) float64) float64 {
	return SumBy(c, selector)
}

// Max returns the largest numeric element.
func (c Chain[T]) Max() (float64, error) {
	return MaxBy(c, toFloat[T])
}

// MaxBy returns the largest value of selector over the elements.
func (c Chain[T]) MaxBy(selector func(T) float64) (float64, error) {
	return MaxBy(c, selector)
}

// Min returns the smallest numeric element.
func (c Chain[T]) Min() (float64, error) {
	return MinBy(c, toFloat[T])
}

// MinBy returns the smallest value of selector over the elements.
func (c Chain[T]) MinBy(selector func(T) float64) (float64, error) {
	return MinBy(c, selector)
}

// Mean returns the mean of numeric elements.
func (c Chain[T]) Mean() (float64, error) {
	return MeanBy(c, toFloat[T])
}

// MeanBy returns the mean of selector over the elements.
func (c Chain[T]) MeanBy(selector func(T) float64) (float64, error) {
	return MeanBy(c, selector)
}

// Count returns the number of elements.
func (c Chain[T]) Count() int {
	return Count(c)
}

// Length is an alias of Count.
func (c Chain[T]) Length() int {
	return Count(c)
}

// ToSlice returns every element in order.
func (c Chain[T]) ToSlice() []T {
	return ToSlice(c)
}

func toFloat[T any](item T) float64 {
	return ordering.Float(item)
}
