// Package stream provides lazy, pull-based operations over sequences whose
// pulls may block, such as network reads or calls that take a context.
//
// A Pipeline does no work until an Iterator is obtained from it and pulled.
// Every call to Iter starts a fresh pull chain with its own stage state
// (indices, seen sets, held-back elements). Callbacks receive the context of
// the pull that triggered them together with the element and its index, and
// any error they return stops the chain and reaches the consumer unchanged.
//
// # Stages
//
//   - Map, Filter, Choose, Collect: per-element callbacks
//   - Append, Concat: sequential joins
//   - Distinct, DistinctBy, Skip, Take, Pairwise: stateful selection
//   - Tap, Trace: side effects and observation
//
// # Terminals
//
// Get, Find, Exists, Every, GroupBy, Sort, SortDescending, SortBy,
// SortByDescending, Reverse, Sum, SumBy, Max, MaxBy, Min, MinBy, Mean,
// MeanBy, Count, Length, ToSlice and ForEach drain the source and close it
// before returning.
//
// # Usage
//
//	src := stream.FromSlice([]int{1, 2, 3, 4, 5})
//	doubled := stream.Map(src, func(_ context.Context, n, _ int) (int, error) {
//	    return n * 2, nil
//	})
//	firstTwo := stream.Take(doubled, 2)
//	results, err := stream.ToSlice(ctx, firstTwo) // [2 4]
//
// The same through a chain:
//
//	c, _ := stream.Init(ranges.Bounds{From: 1, To: 5})
//	total, err := c.Filter(isEven).Sum(ctx)
package stream
