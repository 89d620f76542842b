package service

import "fmt"

// Status identifies which variant of a Result is active.
type Status int

const (
	// StatusLoading means the operation has not finished.
	StatusLoading Status = iota

	// StatusSuccess means a value is available.
	StatusSuccess

	// StatusError means the operation failed.
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Result is the outcome of an asynchronous operation. Exactly one of
// Loading, Success or Error is active; switch on Status to handle all three.
type Result[T any] struct {
	status Status
	value  T
	err    error
}

// Loading returns a Result that has not completed.
func Loading[T any]() Result[T] {
	return Result[T]{status: StatusLoading}
}

// Success returns a completed Result holding v.
func Success[T any](v T) Result[T] {
	return Result[T]{status: StatusSuccess, value: v}
}

// Failure returns a failed Result. A nil err is replaced with ErrUnknown so
// the Error variant always carries a cause.
func Failure[T any](err error) Result[T] {
	if err == nil {
		err = ErrUnknown
	}
	return Result[T]{status: StatusError, err: err}
}

// Status returns the active variant.
func (r Result[T]) Status() Status {
	return r.status
}

// Value returns the success value and true, or the zero value and false.
func (r Result[T]) Value() (T, bool) {
	return r.value, r.status == StatusSuccess
}

// Err returns the cause of an Error result, nil otherwise.
func (r Result[T]) Err() error {
	return r.err
}

// Unwrap converts the Result to Go's (value, error) form.
// A Loading result yields ErrLoading.
func (r Result[T]) Unwrap() (T, error) {
	switch r.status {
	case StatusSuccess:
		return r.value, nil
	case StatusError:
		var zero T
		return zero, r.err
	default:
		var zero T
		return zero, ErrLoading
	}
}

func (r Result[T]) String() string {
	switch r.status {
	case StatusSuccess:
		return fmt.Sprintf("Success(%v)", r.value)
	case StatusError:
		return fmt.Sprintf("Error(%v)", r.err)
	default:
		return "Loading"
	}
}
