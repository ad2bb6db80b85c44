package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified library error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// Is reports whether target is an *AppError with the same code.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok || t == nil {
		return false
	}
	return t.Code == e.Code
}

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Sentinels for errors.Is. Constructed errors carry more detail but match
// these by code.
var (
	ErrNotFound         = New(ErrCodeNotFound, "element not found")
	ErrEmptyCollection  = New(ErrCodeEmptyCollection, "empty collection")
	ErrInfiniteSequence = New(ErrCodeInfiniteSequence, "infinite sequence")
	ErrInvalidInput     = New(ErrCodeInvalidInput, "invalid input")
)

// --- Constructors ---

// NotFound creates the error returned by Get when no element matches.
func NotFound() *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: "Element not found matching criteria",
	}
}

// EmptyCollection creates the error returned by an aggregate such as max,
// min or mean over a sequence with no elements.
func EmptyCollection(operation string) *AppError {
	return &AppError{
		Code:    ErrCodeEmptyCollection,
		Message: fmt.Sprintf("Can't find %s of an empty collection", operation),
		Details: map[string]any{"operation": operation},
	}
}

// InfiniteSequence creates the error returned when a bounded range
// description could never terminate.
func InfiniteSequence(from, to, increment float64) *AppError {
	return &AppError{
		Code:    ErrCodeInfiniteSequence,
		Message: "Iterable will never complete. Use InitInfinite if this is desired behaviour",
		Details: map[string]any{"from": from, "to": to, "increment": increment},
	}
}

// InvalidInput creates a new AppError for invalid input.
func InvalidInput(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code:    ErrCodeInvalidInput,
		Message: fmt.Sprintf("Invalid input: %s", reason),
		Details: details,
	}
}

// Validation creates a new AppError for validation errors.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeInvalidInput, Message: message}
}

// --- Inspection ---

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode reports whether err is, or wraps, an AppError with the given code.
func HasCode(err error, code ErrorCode) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}
