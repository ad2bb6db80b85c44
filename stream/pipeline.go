package stream

import (
	"context"
	"iter"
)

// Iterator provides pull-based sequential access to a stream of values.
type Iterator[T any] interface {
	// Next returns the next value. Returns (zero, false, nil) when exhausted.
	Next(ctx context.Context) (T, bool, error)
	// Close releases any resources held by the iterator and its upstream.
	Close() error
}

// Source is anything that can start a pull chain.
type Source[T any] interface {
	// Iter starts a pull chain. The caller must Close the iterator.
	Iter(ctx context.Context) Iterator[T]
}

// Pipeline represents a lazy, pull-based sequence.
// No work happens until values are pulled from an Iterator.
type Pipeline[T any] struct {
	create func(ctx context.Context) Iterator[T]
}

// Iter returns a fresh Iterator for this pipeline. The caller must Close it.
func (p *Pipeline[T]) Iter(ctx context.Context) Iterator[T] {
	return p.create(ctx)
}

// --- Constructors ---

// From creates a pipeline from an existing Iterator. The iterator is shared
// by every pull chain, so a second traversal only sees what the first one
// left behind.
func From[T any](it Iterator[T]) *Pipeline[T] {
	return &Pipeline[T]{
		create: func(_ context.Context) Iterator[T] {
			return it
		},
	}
}

// FromSlice creates a pipeline from a slice of values.
func FromSlice[T any](items []T) *Pipeline[T] {
	return &Pipeline[T]{
		create: func(_ context.Context) Iterator[T] {
			return &sliceIter[T]{items: items}
		},
	}
}

// Of creates a pipeline from the given values.
func Of[T any](items ...T) *Pipeline[T] {
	return FromSlice(items)
}

// Empty creates a pipeline that yields nothing.
func Empty[T any]() *Pipeline[T] {
	return FromSlice[T](nil)
}

// FromFunc creates a pipeline from a factory that produces an Iterator.
func FromFunc[T any](fn func(ctx context.Context) Iterator[T]) *Pipeline[T] {
	return &Pipeline[T]{create: fn}
}

// FromSeq creates a pipeline from a synchronous sequence. Every pull chain
// drives its own iter.Pull, released on Close.
func FromSeq[T any](s iter.Seq[T]) *Pipeline[T] {
	return &Pipeline[T]{
		create: func(_ context.Context) Iterator[T] {
			next, stop := iter.Pull(s)
			return &seqIter[T]{next: next, stop: stop}
		},
	}
}

// --- Terminals ---

// Runnable is a fully-configured pipeline ready to execute.
type Runnable struct {
	run func(ctx context.Context) error
}

// Run executes the pipeline until completion, failure or context
// cancellation.
func (r *Runnable) Run(ctx context.Context) error {
	return r.run(ctx)
}

// Drain creates a Runnable that pulls all values and sends each to sink.
func Drain[T any](src Source[T], sink func(context.Context, T, int) error) *Runnable {
	return &Runnable{
		run: func(ctx context.Context) error {
			index := 0
			return each(ctx, src, func(val T) (bool, error) {
				if err := sink(ctx, val, index); err != nil {
					return false, err
				}
				index++
				return true, nil
			})
		},
	}
}

// ForEach pulls all values and calls fn for each. Convenience wrapper around
// Drain.
func ForEach[T any](ctx context.Context, src Source[T], fn func(context.Context, T, int) error) error {
	return Drain(src, fn).Run(ctx)
}

// each pulls from a fresh iterator until fn returns false, an error occurs
// or the source is exhausted. The iterator is always closed.
func each[T any](ctx context.Context, src Source[T], fn func(T) (bool, error)) (err error) {
	it := src.Iter(ctx)
	defer func() {
		if cerr := it.Close(); err == nil {
			err = cerr
		}
	}()
	for {
		val, ok, err := it.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		more, err := fn(val)
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

// --- Internal iterators ---

type sliceIter[T any] struct {
	items []T
	index int
}

func (it *sliceIter[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, false, err
	}
	if it.index >= len(it.items) {
		return zero, false, nil
	}
	val := it.items[it.index]
	it.index++
	return val, true, nil
}

func (it *sliceIter[T]) Close() error { return nil }

type seqIter[T any] struct {
	next func() (T, bool)
	stop func()
}

func (it *seqIter[T]) Next(ctx context.Context) (T, bool, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, false, err
	}
	val, ok := it.next()
	return val, ok, nil
}

func (it *seqIter[T]) Close() error {
	it.stop()
	return nil
}
