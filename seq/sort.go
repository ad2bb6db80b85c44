package seq

import (
	"iter"
	"slices"

	"github.com/go-softwarelab/common/pkg/types"
)

// The comparators below never report equality. Equal elements therefore end
// up in an unspecified relative order.

// Sort returns the elements in ascending order.
func Sort[S Sequence[T], T types.Ordered](src S) []T {
	return sortWith(src, func(a, b T) int {
		if a > b {
			return 1
		}
		return -1
	})
}

// SortDescending returns the elements in descending order.
func SortDescending[S Sequence[T], T types.Ordered](src S) []T {
	return sortWith(src, func(a, b T) int {
		if a < b {
			return 1
		}
		return -1
	})
}

// SortBy returns the elements ordered ascending by the key from selector.
func SortBy[S Sequence[T], T any, K types.Ordered](src S, selector func(T) K) []T {
	return sortWith(src, func(a, b T) int {
		if selector(a) > selector(b) {
			return 1
		}
		return -1
	})
}

// SortByDescending returns the elements ordered descending by the key from
// selector.
func SortByDescending[S Sequence[T], T any, K types.Ordered](src S, selector func(T) K) []T {
	return sortWith(src, func(a, b T) int {
		if selector(a) > selector(b) {
			return -1
		}
		return 1
	})
}

func sortWith[S Sequence[T], T any](src S, cmp func(a, b T) int) []T {
	items := ToSlice(src)
	if len(items) < 2 {
		return items
	}
	slices.SortFunc(items, cmp)
	return items
}

func iterSeq[S Sequence[T], T any](src S) iter.Seq[T] {
	return iter.Seq[T](src)
}
