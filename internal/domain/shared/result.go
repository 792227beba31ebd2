package shared

import (
	"reflect"
)

// Result is the outcome of an operation that produces no value.
// Expected domain failures are returned as a failed Result instead of a Go error
// so that callers can branch on Error().Code.
type Result struct {
	isSuccess bool
	err       Error
}

// Success returns a successful Result
func Success() Result {
	return Result{isSuccess: true, err: ErrNone}
}

// Failure returns a failed Result carrying err.
// Panics if err is ErrNone.
func Failure(err Error) Result {
	if err.IsNone() {
		panic("shared: Failure requires a non-empty error")
	}
	return Result{isSuccess: false, err: err}
}

// IsSuccess returns true if the operation succeeded
func (r Result) IsSuccess() bool {
	return r.isSuccess
}

// IsFailure returns true if the operation failed
func (r Result) IsFailure() bool {
	return !r.isSuccess
}

// Error returns the failure. Panics when called on a successful Result.
func (r Result) Error() Error {
	if r.isSuccess {
		panic("shared: the error of a successful result can not be accessed")
	}
	return r.err
}

// Err returns nil on success and the domain Error otherwise
func (r Result) Err() error {
	if r.isSuccess {
		return nil
	}
	return r.err
}

// Equals returns true if both results succeeded, or both failed with equal errors
func (r Result) Equals(other Result) bool {
	return r.isSuccess == other.isSuccess && r.err == other.err
}

// Combine returns the first failed result, or Success if none failed
func Combine(results ...Result) Result {
	for _, r := range results {
		if r.IsFailure() {
			return r
		}
	}
	return Success()
}

// ResultOf is the outcome of an operation that produces a value of type T on success
type ResultOf[T any] struct {
	isSuccess bool
	value     T
	err       Error
}

// SuccessOf returns a successful ResultOf carrying value.
// Panics if value is a nil pointer, interface, map, slice, func or channel.
func SuccessOf[T any](value T) ResultOf[T] {
	if isNil(value) {
		panic("shared: SuccessOf requires a non-nil value")
	}
	return ResultOf[T]{isSuccess: true, value: value, err: ErrNone}
}

// FailureOf returns a failed ResultOf carrying err.
// Panics if err is ErrNone.
func FailureOf[T any](err Error) ResultOf[T] {
	if err.IsNone() {
		panic("shared: FailureOf requires a non-empty error")
	}
	return ResultOf[T]{isSuccess: false, err: err}
}

// IsSuccess returns true if the operation succeeded
func (r ResultOf[T]) IsSuccess() bool {
	return r.isSuccess
}

// IsFailure returns true if the operation failed
func (r ResultOf[T]) IsFailure() bool {
	return !r.isSuccess
}

// Value returns the success value. Panics when called on a failed result.
func (r ResultOf[T]) Value() T {
	if !r.isSuccess {
		panic("shared: the value of a failure result can not be accessed")
	}
	return r.value
}

// Error returns the failure. Panics when called on a successful result.
func (r ResultOf[T]) Error() Error {
	if r.isSuccess {
		panic("shared: the error of a successful result can not be accessed")
	}
	return r.err
}

// Err returns nil on success and the domain Error otherwise
func (r ResultOf[T]) Err() error {
	if r.isSuccess {
		return nil
	}
	return r.err
}

// Unwrap returns the value and error as a Go-style pair
func (r ResultOf[T]) Unwrap() (T, error) {
	if r.isSuccess {
		return r.value, nil
	}
	var zero T
	return zero, r.err
}

// Result drops the value, keeping only success or failure
func (r ResultOf[T]) Result() Result {
	if r.isSuccess {
		return Success()
	}
	return Failure(r.err)
}

// Equals returns true if both succeeded with equal values, or both failed with equal errors
func (r ResultOf[T]) Equals(other ResultOf[T]) bool {
	if r.isSuccess != other.isSuccess {
		return false
	}
	if !r.isSuccess {
		return r.err == other.err
	}
	return reflect.DeepEqual(r.value, other.value)
}

// Map transforms the success value of r with f. A failure passes through untouched.
func Map[T, U any](r ResultOf[T], f func(T) U) ResultOf[U] {
	if f == nil {
		panic("shared: Map requires a non-nil function")
	}
	if r.IsFailure() {
		return ResultOf[U]{isSuccess: false, err: r.err}
	}
	return SuccessOf(f(r.value))
}

// Bind chains r into another operation returning a ResultOf. A failure passes through untouched.
func Bind[T, U any](r ResultOf[T], f func(T) ResultOf[U]) ResultOf[U] {
	if f == nil {
		panic("shared: Bind requires a non-nil function")
	}
	if r.IsFailure() {
		return ResultOf[U]{isSuccess: false, err: r.err}
	}
	return f(r.value)
}

// BindResult chains r into an operation that returns no value
func BindResult[T any](r ResultOf[T], f func(T) Result) Result {
	if f == nil {
		panic("shared: BindResult requires a non-nil function")
	}
	if r.IsFailure() {
		return Result{isSuccess: false, err: r.err}
	}
	return f(r.value)
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}
