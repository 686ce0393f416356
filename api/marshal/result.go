package marshal

import (
	"github.com/darkhz/celldata/api/cellular"
	"github.com/darkhz/celldata/api/errorkinds"
)

// Void describes the payload of operations that only report failures.
type Void = struct{}

// Result holds either the payload of a successful native call or its failure.
type Result[T any] struct {
	value   T
	failure *errorkinds.NativeFailure
}

// Success returns a successful result holding value.
func Success[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Failure returns a failed result holding a copy of failure.
func Failure[T any](failure errorkinds.NativeFailure) Result[T] {
	return Result[T]{failure: &failure}
}

// FromSentinel folds a native sentinel and its payload into a result.
// The payload is only converted if the sentinel reports success.
func FromSentinel[N, T any](sentinel cellular.ErrorSentinel, payload N, convert func(N) T) Result[T] {
	if failure := translate(sentinel); failure != nil {
		return Result[T]{failure: failure}
	}

	return Success(convert(payload))
}

// FromStatus folds a native sentinel without a payload into a result.
func FromStatus(sentinel cellular.ErrorSentinel) Result[Void] {
	return FromSentinel(sentinel, Void{}, Identity[Void])
}

// Identity returns its argument unchanged.
func Identity[T any](v T) T {
	return v
}

// Ok returns whether the result is successful.
func (r Result[T]) Ok() bool {
	return r.failure == nil
}

// Value returns the payload of the result.
// It is the zero value if the result is a failure.
func (r Result[T]) Value() T {
	return r.value
}

// Failure returns the failure of the result, if any.
func (r Result[T]) Failure() (errorkinds.NativeFailure, bool) {
	if r.failure == nil {
		return errorkinds.NativeFailure{}, false
	}

	return *r.failure, true
}

// Unwrap returns the payload and the failure as a Go error.
func (r Result[T]) Unwrap() (T, error) {
	if r.failure != nil {
		var zero T
		return zero, r.failure
	}

	return r.value, nil
}
