package service

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a task is missing from a result set.
	ErrNotFound = errors.New("not found")

	// ErrTaskNotFound is returned when a task id is missing from the
	// seed data. It matches ErrNotFound with errors.Is.
	ErrTaskNotFound = fmt.Errorf("task %w", ErrNotFound)

	// ErrLoading is returned by Result.Unwrap on a Loading result.
	ErrLoading = errors.New("result still loading")

	// ErrUnknown stands in for a missing failure cause.
	ErrUnknown = errors.New("unknown error")
)

// NetworkError reports a transport failure or a non-success HTTP status.
type NetworkError struct {
	Op         string // e.g. "GET /api/tasks"
	StatusCode int    // 0 when no response was received
	Err        error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// DecodeError reports a response body that does not match the expected shape.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: unexpected response: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
