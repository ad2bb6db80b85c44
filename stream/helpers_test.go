package stream

import (
	"context"
)

// trackingIter yields 1..n (or without end when n < 0) and records pulls and
// closes.
type trackingIter struct {
	n      int
	next   int
	pulls  int
	closed int
	err    error
	failAt int
}

func (it *trackingIter) Next(ctx context.Context) (int, bool, error) {
	it.pulls++
	if it.err != nil && it.next+1 == it.failAt {
		return 0, false, it.err
	}
	if it.n >= 0 && it.next >= it.n {
		return 0, false, nil
	}
	it.next++
	return it.next, true, nil
}

func (it *trackingIter) Close() error {
	it.closed++
	return nil
}

// tracked returns a pipeline whose pull chains share one tracking iterator
// per call to Iter, exposed through the returned pointer slot.
func tracked(n int) (*Pipeline[int], *[]*trackingIter) {
	var iters []*trackingIter
	p := FromFunc(func(context.Context) Iterator[int] {
		it := &trackingIter{n: n}
		iters = append(iters, it)
		return it
	})
	return p, &iters
}

// failing returns a pipeline that yields 1..failAt-1 and then fails with err.
func failing(failAt int, err error) *Pipeline[int] {
	return FromFunc(func(context.Context) Iterator[int] {
		return &trackingIter{n: -1, err: err, failAt: failAt}
	})
}

// plain lifts an infallible key function into a Selector.
func plain[T, K any](fn func(T) K) Selector[T, K] {
	return func(_ context.Context, v T) (K, error) { return fn(v), nil }
}

func identityMap(_ context.Context, v, _ int) (int, error) { return v, nil }

type person struct {
	name string
	age  int
}

var people = []person{
	{"amy", 21},
	{"bob", 2},
	{"cat", 18},
	{"dot", 39},
}
