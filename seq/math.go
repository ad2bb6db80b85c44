package seq

import (
	"github.com/go-softwarelab/common/pkg/types"

	"github.com/kbukum/seqfns/errors"
)

// Sum returns the total of the elements, 0 for an empty sequence.
func Sum[S Sequence[N], N types.Number](src S) N {
	var total N
	for item := range src {
		total += item
	}
	return total
}

// SumBy returns the total of selector over the elements.
func SumBy[S Sequence[T], T any, N types.Number](src S, selector func(T) N) N {
	var total N
	for item := range src {
		total += selector(item)
	}
	return total
}

// Max returns the largest element. It fails with errors.ErrEmptyCollection
// on an empty sequence.
func Max[S Sequence[N], N types.Ordered](src S) (N, error) {
	return MaxBy(src, identity[N])
}

// MaxBy returns the largest value of selector over the elements.
func MaxBy[S Sequence[T], T any, N types.Ordered](src S, selector func(T) N) (N, error) {
	return extreme(src, selector, "max", func(candidate, current N) bool { return candidate > current })
}

// Min returns the smallest element. It fails with errors.ErrEmptyCollection
// on an empty sequence.
func Min[S Sequence[N], N types.Ordered](src S) (N, error) {
	return MinBy(src, identity[N])
}

// MinBy returns the smallest value of selector over the elements.
func MinBy[S Sequence[T], T any, N types.Ordered](src S, selector func(T) N) (N, error) {
	return extreme(src, selector, "min", func(candidate, current N) bool { return candidate < current })
}

// Mean returns the arithmetic mean of the elements. It fails with
// errors.ErrEmptyCollection on an empty sequence.
func Mean[S Sequence[N], N types.Number](src S) (float64, error) {
	return MeanBy(src, identity[N])
}

// MeanBy returns the arithmetic mean of selector over the elements.
func MeanBy[S Sequence[T], T any, N types.Number](src S, selector func(T) N) (float64, error) {
	var total float64
	count := 0
	for item := range src {
		total += float64(selector(item))
		count++
	}
	if count == 0 {
		return 0, errors.EmptyCollection("mean")
	}
	return total / float64(count), nil
}

func extreme[S Sequence[T], T any, N types.Ordered](src S, selector func(T) N, op string, better func(candidate, current N) bool) (N, error) {
	var result N
	found := false
	for item := range src {
		value := selector(item)
		if !found || better(value, result) {
			result = value
			found = true
		}
	}
	if !found {
		return result, errors.EmptyCollection(op)
	}
	return result, nil
}

func identity[T any](v T) T { return v }
