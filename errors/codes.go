package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Lookup errors
const (
	// ErrCodeNotFound indicates no element satisfied a predicate before the
	// sequence was exhausted.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
)

// Aggregation errors
const (
	// ErrCodeEmptyCollection indicates an aggregate that needs at least one
	// element was applied to an empty sequence.
	ErrCodeEmptyCollection ErrorCode = "EMPTY_COLLECTION"
)

// Construction errors
const (
	// ErrCodeInfiniteSequence indicates a bounded range description whose
	// increment can never reach the upper bound.
	ErrCodeInfiniteSequence ErrorCode = "INFINITE_SEQUENCE"
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)
