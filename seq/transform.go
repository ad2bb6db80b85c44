package seq

import (
	"iter"

	sw "github.com/go-softwarelab/common/pkg/seq"
	"github.com/go-softwarelab/common/pkg/types"
)

// Map yields mapping(element, index) for every upstream element.
func Map[S Sequence[T], T, U any](src S, mapping func(T, int) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		index := 0
		for item := range src {
			if !yield(mapping(item, index)) {
				return
			}
			index++
		}
	}
}

// Filter yields the elements for which predicate returns true.
func Filter[S Sequence[T], T any](src S, predicate func(T, int) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		index := 0
		for item := range src {
			if predicate(item, index) && !yield(item) {
				return
			}
			index++
		}
	}
}

// Choose applies chooser to every element and yields the values it reports
// as present. Returning false skips the element.
func Choose[S Sequence[T], T, U any](src S, chooser func(T, int) (U, bool)) iter.Seq[U] {
	return func(yield func(U) bool) {
		index := 0
		for item := range src {
			if value, ok := chooser(item, index); ok && !yield(value) {
				return
			}
			index++
		}
	}
}

// Collect maps every element to a nested sequence and yields the nested
// elements. A nested sequence is drained before the next upstream element
// is pulled.
func Collect[S Sequence[T], R Sequence[U], T, U any](src S, mapping func(T, int) R) iter.Seq[U] {
	return func(yield func(U) bool) {
		index := 0
		for item := range src {
			for value := range mapping(item, index) {
				if !yield(value) {
					return
				}
			}
			index++
		}
	}
}

// Append yields every element of first followed by every element of second.
func Append[S1 Sequence[T], S2 Sequence[T], T any](first S1, second S2) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range first {
			if !yield(item) {
				return
			}
		}
		for item := range second {
			if !yield(item) {
				return
			}
		}
	}
}

// Concat flattens a sequence of sequences, exhausting each inner sequence in
// order.
func Concat[S Sequence[R], R Sequence[T], T any](sources S) iter.Seq[T] {
	return func(yield func(T) bool) {
		for inner := range sources {
			for item := range inner {
				if !yield(item) {
					return
				}
			}
		}
	}
}

// Distinct yields the first occurrence of every value.
func Distinct[S Sequence[T], T comparable](src S) iter.Seq[T] {
	return sw.Distinct(iterSeq(src))
}

// DistinctBy yields the first element for every key returned by selector.
func DistinctBy[S Sequence[T], T any, K comparable](src S, selector func(T, int) K) iter.Seq[T] {
	return func(yield func(T) bool) {
		seen := make(map[K]struct{})
		index := 0
		for item := range src {
			key := selector(item, index)
			index++
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			if !yield(item) {
				return
			}
		}
	}
}

// Skip suppresses the first count elements and yields the rest.
func Skip[S Sequence[T], T any](src S, count int) iter.Seq[T] {
	return sw.Skip(iterSeq(src), count)
}

// Take yields at most count elements. It stops pulling as soon as the
// count-th element has been yielded, so it terminates over unbounded
// sources. A count of zero or less pulls nothing.
func Take[S Sequence[T], T any](src S, count int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if count <= 0 {
			return
		}
		taken := 0
		for item := range src {
			taken++
			if !yield(item) || taken >= count {
				return
			}
		}
	}
}

// Pairwise yields every element paired with its predecessor, starting with
// the second element. Sequences shorter than two elements yield nothing.
func Pairwise[S Sequence[T], T any](src S) iter.Seq[types.Pair[T, T]] {
	return func(yield func(types.Pair[T, T]) bool) {
		var prev T
		started := false
		for item := range src {
			if started && !yield(types.Pair[T, T]{Left: prev, Right: item}) {
				return
			}
			prev = item
			started = true
		}
	}
}

// Tap calls action for every element and yields the element unchanged.
func Tap[S Sequence[T], T any](src S, action func(T, int)) iter.Seq[T] {
	return func(yield func(T) bool) {
		index := 0
		for item := range src {
			action(item, index)
			if !yield(item) {
				return
			}
			index++
		}
	}
}
