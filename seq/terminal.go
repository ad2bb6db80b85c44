package seq

import (
	"slices"

	sw "github.com/go-softwarelab/common/pkg/seq"

	"github.com/kbukum/seqfns/errors"
)

// Get returns the first element matching predicate. It fails with
// errors.ErrNotFound when the sequence is exhausted without a match.
func Get[S Sequence[T], T any](src S, predicate func(T, int) bool) (T, error) {
	if item, ok := Find(src, predicate); ok {
		return item, nil
	}
	var zero T
	return zero, errors.NotFound()
}

// Find returns the first element matching predicate and true, or the zero
// value and false when there is none.
func Find[S Sequence[T], T any](src S, predicate func(T, int) bool) (T, bool) {
	index := 0
	for item := range src {
		if predicate(item, index) {
			return item, true
		}
		index++
	}
	var zero T
	return zero, false
}

// Exists reports whether any element matches predicate. It stops at the
// first match.
func Exists[S Sequence[T], T any](src S, predicate func(T, int) bool) bool {
	_, ok := Find(src, predicate)
	return ok
}

// Every reports whether all elements match predicate. It stops at the
// first element that does not. An empty sequence satisfies every predicate.
func Every[S Sequence[T], T any](src S, predicate func(T, int) bool) bool {
	index := 0
	for item := range src {
		if !predicate(item, index) {
			return false
		}
		index++
	}
	return true
}

// Count returns the number of elements.
func Count[S Sequence[T], T any](src S) int {
	return sw.Count(iterSeq(src))
}

// Length is an alias of Count.
func Length[S Sequence[T], T any](src S) int {
	return Count(src)
}

// ToSlice returns every element in order. An empty sequence gives an empty,
// non-nil slice.
func ToSlice[S Sequence[T], T any](src S) []T {
	items := sw.Collect(iterSeq(src))
	if items == nil {
		return []T{}
	}
	return items
}

// Reverse returns every element in reverse order.
func Reverse[S Sequence[T], T any](src S) []T {
	items := ToSlice(src)
	slices.Reverse(items)
	return items
}
