// Package errors provides the structured error type shared by the seqfns
// packages.
//
// Every failure the library raises on its own is an *AppError carrying a
// machine-readable ErrorCode. AppError matches by code under errors.Is, so
// callers test against the exported sentinels:
//
//	v, err := seq.Get(src, isEven)
//	if errors.Is(err, seqerrors.ErrNotFound) {
//	    // no element matched
//	}
//
// Failures raised by user callbacks are never wrapped in an AppError; they
// reach the caller unchanged.
package errors
