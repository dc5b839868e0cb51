package result

import "fmt"

// Kind classifies an Error. The transport layer maps kinds to HTTP status
// codes, so services never deal in status codes themselves.
type Kind string

const (
	KindNotFound   Kind = "NotFound"
	KindValidation Kind = "ValidationError"
	KindConflict   Kind = "Conflict"
	KindUnexpected Kind = "Unexpected"
)

// Error is a (kind, message) pair describing an expected failure.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func Unexpected(message string) *Error {
	return &Error{Kind: KindUnexpected, Message: message}
}

// Void is the value type for results that carry no payload (e.g. Delete).
type Void struct{}

// Result is the outcome of a fallible operation: either Ok with a value or
// a Failure with an Error, never both. The fields are unexported so the only
// way to produce a Result is through the Ok/Fail constructors, which keeps
// the two variants structurally exclusive.
type Result[T any] struct {
	value T
	err   *Error
	ok    bool
}

// Ok wraps a success value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Done is the valueless success, used by operations like Delete.
func Done() Result[Void] {
	return Ok(Void{})
}

// Fail wraps an Error. A nil err is coerced to an Unexpected error rather
// than allowing a failure with no cause.
func Fail[T any](err *Error) Result[T] {
	if err == nil {
		err = Unexpected("failure constructed without an error")
	}
	return Result[T]{err: err}
}

// IsOk reports whether the result is a success.
func (r Result[T]) IsOk() bool {
	return r.ok
}

// Err returns the failure's Error, or nil for a success.
func (r Result[T]) Err() *Error {
	if r.ok {
		return nil
	}
	return r.err
}

// Value returns the success value. On a failure it returns the zero value;
// callers are expected to check IsOk first.
func (r Result[T]) Value() T {
	return r.value
}

// ValueOr returns the success value, or def when the result is a failure.
func (r Result[T]) ValueOr(def T) T {
	if r.ok {
		return r.value
	}
	return def
}

// Map transforms a success value, propagating a failure unchanged.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if !r.ok {
		return Fail[U](r.err)
	}
	return Ok(fn(r.value))
}

// Propagate re-types a failure so it can cross a function boundary whose
// success type differs. Calling it on a success is a programming error and
// yields an Unexpected failure.
func Propagate[T, U any](r Result[T]) Result[U] {
	if r.ok {
		return Fail[U](Unexpected("propagate called on a success"))
	}
	return Fail[U](r.err)
}
