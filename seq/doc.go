// Package seq provides lazy, composable operations over synchronous
// sequences built on iter.Seq.
//
// Transform stages (Map, Filter, Choose, Collect, Append, Concat, Distinct,
// DistinctBy, Skip, Take, Pairwise, Tap, Trace) return new sequences and do
// no work until the result is ranged over. Each traversal re-runs the stage
// against its upstream with fresh state, so a stage may be consumed more than
// once when its source can.
//
// Terminal operations (Get, Find, Exists, Every, GroupBy, the Sort family,
// Reverse, Sum, Max, Min, Mean, Count, ToSlice) drain the sequence, stopping
// early where the answer is already known.
//
// Every function accepts any Sequence, so iter.Seq values and Chain values
// mix freely:
//
//	evens := seq.Filter(seq.FromSlice([]int{1, 2, 3, 4}), func(n, _ int) bool {
//	    return n%2 == 0
//	})
//	total := seq.Sum(evens) // 6
//
// Chain offers the same-type stages and the terminals as methods:
//
//	squares, _ := seq.Init(ranges.Bounds{From: 1, To: 5})
//	top := squares.
//	    Map(func(x float64, _ int) float64 { return x * x }).
//	    Filter(func(x float64, _ int) bool { return x > 4 }).
//	    Take(2).
//	    ToSlice() // [9 16]
package seq
