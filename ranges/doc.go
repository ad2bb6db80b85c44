// Package ranges describes finite and infinite numeric sequences and
// normalizes those descriptions into a start, a count and an increment.
//
// Three bounded shapes are supported:
//
//	ranges.Count(5)                                   // 0, 1, 2, 3, 4
//	ranges.Bounds{From: 1, To: 2, Increment: ranges.Step(0.5)} // 1, 1.5, 2
//	ranges.Counted{Start: 3, Count: 5}                // 3, 4, 5, 6, 7
//
// A Bounds whose increment is zero or points away from To is rejected with
// errors.ErrInfiniteSequence; use Infinite for intentionally unbounded
// sequences. The seq and stream packages turn a Plan into a sequence.
package ranges
