package stream

import (
	"context"

	"github.com/go-softwarelab/common/pkg/types"
)

// Map transforms each value using fn. The index counts upstream elements.
func Map[T, U any](src Source[T], fn func(context.Context, T, int) (U, error)) *Pipeline[U] {
	return &Pipeline[U]{
		create: func(ctx context.Context) Iterator[U] {
			return &mapIter[T, U]{source: src.Iter(ctx), fn: fn}
		},
	}
}

// Filter keeps only values that satisfy the predicate.
func Filter[T any](src Source[T], fn func(context.Context, T, int) (bool, error)) *Pipeline[T] {
	return &Pipeline[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &filterIter[T]{source: src.Iter(ctx), fn: fn}
		},
	}
}

// Choose applies fn to each value and keeps the results it reports as
// present.
func Choose[T, U any](src Source[T], fn func(context.Context, T, int) (U, bool, error)) *Pipeline[U] {
	return &Pipeline[U]{
		create: func(ctx context.Context) Iterator[U] {
			return &chooseIter[T, U]{source: src.Iter(ctx), fn: fn}
		},
	}
}

// Collect transforms each value into a nested source and flattens the
// results. A nested source is drained and closed before the next upstream
// value is pulled.
func Collect[T, U any](src Source[T], fn func(context.Context, T, int) (Source[U], error)) *Pipeline[U] {
	return &Pipeline[U]{
		create: func(ctx context.Context) Iterator[U] {
			return &collectIter[T, U]{source: src.Iter(ctx), fn: fn}
		},
	}
}

// Append yields every value of first, then every value of second. The
// second source is only started once the first is exhausted.
func Append[T any](first, second Source[T]) *Pipeline[T] {
	return &Pipeline[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &appendIter[T]{first: first.Iter(ctx), second: second}
		},
	}
}

// Concat flattens a source of sources, exhausting each inner source in
// order.
func Concat[T any](sources Source[Source[T]]) *Pipeline[T] {
	return Collect(sources, func(_ context.Context, inner Source[T], _ int) (Source[T], error) {
		return inner, nil
	})
}

// Distinct yields the first occurrence of every value.
func Distinct[T comparable](src Source[T]) *Pipeline[T] {
	return DistinctBy(src, func(_ context.Context, v T, _ int) (T, error) {
		return v, nil
	})
}

// DistinctBy yields the first value for every key returned by fn.
func DistinctBy[T any, K comparable](src Source[T], fn func(context.Context, T, int) (K, error)) *Pipeline[T] {
	return &Pipeline[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &distinctIter[T, K]{source: src.Iter(ctx), fn: fn, seen: make(map[K]struct{})}
		},
	}
}

// Skip suppresses the first count values.
func Skip[T any](src Source[T], count int) *Pipeline[T] {
	return &Pipeline[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &skipIter[T]{source: src.Iter(ctx), count: count}
		},
	}
}

// Take yields at most count values and never pulls past the last of them.
// A count of zero or less pulls nothing.
func Take[T any](src Source[T], count int) *Pipeline[T] {
	return &Pipeline[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &takeIter[T]{source: src.Iter(ctx), count: count}
		},
	}
}

// Pairwise yields every value paired with its predecessor, starting with
// the second value.
func Pairwise[T any](src Source[T]) *Pipeline[types.Pair[T, T]] {
	return &Pipeline[types.Pair[T, T]]{
		create: func(ctx context.Context) Iterator[types.Pair[T, T]] {
			return &pairwiseIter[T]{source: src.Iter(ctx)}
		},
	}
}

// Tap calls fn as a side-effect for each value, then passes the value
// through unchanged.
func Tap[T any](src Source[T], fn func(context.Context, T, int) error) *Pipeline[T] {
	return &Pipeline[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &tapIter[T]{source: src.Iter(ctx), fn: fn}
		},
	}
}

// --- Iterator implementations ---

type mapIter[T, U any] struct {
	source Iterator[T]
	fn     func(context.Context, T, int) (U, error)
	index  int
}

func (it *mapIter[T, U]) Next(ctx context.Context) (result U, ok bool, err error) {
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		return result, false, err
	}
	out, err := it.fn(ctx, val, it.index)
	it.index++
	if err != nil {
		return result, false, err
	}
	return out, true, nil
}

func (it *mapIter[T, U]) Close() error { return it.source.Close() }

type filterIter[T any] struct {
	source Iterator[T]
	fn     func(context.Context, T, int) (bool, error)
	index  int
}

func (it *filterIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	for {
		val, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			return result, false, err
		}
		keep, err := it.fn(ctx, val, it.index)
		it.index++
		if err != nil {
			return result, false, err
		}
		if keep {
			return val, true, nil
		}
	}
}

func (it *filterIter[T]) Close() error { return it.source.Close() }

type chooseIter[T, U any] struct {
	source Iterator[T]
	fn     func(context.Context, T, int) (U, bool, error)
	index  int
}

func (it *chooseIter[T, U]) Next(ctx context.Context) (result U, ok bool, err error) {
	for {
		val, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			return result, false, err
		}
		out, present, err := it.fn(ctx, val, it.index)
		it.index++
		if err != nil {
			return result, false, err
		}
		if present {
			return out, true, nil
		}
	}
}

func (it *chooseIter[T, U]) Close() error { return it.source.Close() }

type collectIter[T, U any] struct {
	source  Iterator[T]
	fn      func(context.Context, T, int) (Source[U], error)
	current Iterator[U]
	index   int
}

func (it *collectIter[T, U]) Next(ctx context.Context) (result U, ok bool, err error) {
	for {
		if it.current != nil {
			val, ok, err := it.current.Next(ctx)
			if err != nil {
				return result, false, err
			}
			if ok {
				return val, true, nil
			}
			if err := it.current.Close(); err != nil {
				it.current = nil
				return result, false, err
			}
			it.current = nil
		}
		in, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			return result, false, err
		}
		inner, err := it.fn(ctx, in, it.index)
		it.index++
		if err != nil {
			return result, false, err
		}
		it.current = inner.Iter(ctx)
	}
}

func (it *collectIter[T, U]) Close() error {
	if it.current != nil {
		_ = it.current.Close()
		it.current = nil
	}
	return it.source.Close()
}

type appendIter[T any] struct {
	first   Iterator[T]
	second  Source[T]
	current Iterator[T]
}

func (it *appendIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	if it.current == nil {
		val, ok, err := it.first.Next(ctx)
		if err != nil || ok {
			return val, ok, err
		}
		it.current = it.second.Iter(ctx)
	}
	return it.current.Next(ctx)
}

func (it *appendIter[T]) Close() error {
	err := it.first.Close()
	if it.current != nil {
		if cerr := it.current.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

type distinctIter[T any, K comparable] struct {
	source Iterator[T]
	fn     func(context.Context, T, int) (K, error)
	seen   map[K]struct{}
	index  int
}

func (it *distinctIter[T, K]) Next(ctx context.Context) (result T, ok bool, err error) {
	for {
		val, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			return result, false, err
		}
		key, err := it.fn(ctx, val, it.index)
		it.index++
		if err != nil {
			return result, false, err
		}
		if _, dup := it.seen[key]; dup {
			continue
		}
		it.seen[key] = struct{}{}
		return val, true, nil
	}
}

func (it *distinctIter[T, K]) Close() error { return it.source.Close() }

type skipIter[T any] struct {
	source  Iterator[T]
	count   int
	skipped int
}

func (it *skipIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	for {
		val, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			return result, false, err
		}
		if it.skipped < it.count {
			it.skipped++
			continue
		}
		return val, true, nil
	}
}

func (it *skipIter[T]) Close() error { return it.source.Close() }

type takeIter[T any] struct {
	source Iterator[T]
	count  int
	taken  int
}

func (it *takeIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	if it.taken >= it.count {
		return result, false, nil
	}
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		return result, false, err
	}
	it.taken++
	return val, true, nil
}

func (it *takeIter[T]) Close() error { return it.source.Close() }

type pairwiseIter[T any] struct {
	source  Iterator[T]
	prev    T
	started bool
}

func (it *pairwiseIter[T]) Next(ctx context.Context) (result types.Pair[T, T], ok bool, err error) {
	for {
		val, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			return result, false, err
		}
		if !it.started {
			it.prev = val
			it.started = true
			continue
		}
		pair := types.Pair[T, T]{Left: it.prev, Right: val}
		it.prev = val
		return pair, true, nil
	}
}

func (it *pairwiseIter[T]) Close() error { return it.source.Close() }

type tapIter[T any] struct {
	source Iterator[T]
	fn     func(context.Context, T, int) error
	index  int
}

func (it *tapIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		return result, false, err
	}
	err = it.fn(ctx, val, it.index)
	it.index++
	if err != nil {
		return result, false, err
	}
	return val, true, nil
}

func (it *tapIter[T]) Close() error { return it.source.Close() }
