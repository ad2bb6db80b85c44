package seq

import (
	"iter"
	"slices"
)

// Sequence is any function type shaped like iter.Seq. It lets every
// function in this package accept both iter.Seq values and Chain values.
type Sequence[T any] interface {
	~func(yield func(T) bool)
}

// Chain is a chainable sequence. It can be ranged over directly and passed
// to every function in this package.
type Chain[T any] func(yield func(T) bool)

// From wraps any sequence into a Chain.
func From[S Sequence[T], T any](src S) Chain[T] {
	return Chain[T](src)
}

// FromSlice returns a Chain yielding the items in order.
func FromSlice[T any](items []T) Chain[T] {
	return Chain[T](slices.Values(items))
}

// Of returns a Chain yielding the given items in order.
func Of[T any](items ...T) Chain[T] {
	return FromSlice(items)
}

// Empty returns a Chain that yields nothing.
func Empty[T any]() Chain[T] {
	return func(func(T) bool) {}
}

// Seq returns the chain as a plain iter.Seq.
func (c Chain[T]) Seq() iter.Seq[T] {
	return iter.Seq[T](c)
}
