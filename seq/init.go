package seq

import (
	"github.com/kbukum/seqfns/ranges"
)

// Init returns a finite numeric sequence described by spec. It fails with
// errors.ErrInfiniteSequence when a ranges.Bounds would never reach its end.
//
//	seq.Init(ranges.Count(3))                                      // 0, 1, 2
//	seq.Init(ranges.Bounds{From: 1, To: 2, Increment: ranges.Step(0.5)}) // 1, 1.5, 2
func Init(spec ranges.Spec) (Chain[float64], error) {
	plan, err := ranges.Normalize(spec)
	if err != nil {
		return nil, err
	}
	return Chain[float64](plan.Values()), nil
}

// InitInfinite returns an unbounded numeric sequence. Pair it with Take or
// another short-circuiting consumer.
func InitInfinite(spec ranges.Infinite) Chain[float64] {
	return Chain[float64](spec.Values())
}
