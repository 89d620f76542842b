// Package service defines the backend-agnostic interface for task operations.
package service

import (
	"context"

	"todoremote/internal/observable"
)

// Service defines the data source operations consumed by commands.
// Commands never talk HTTP directly.
//
// Reads report failures through the Error variant of Result. Mutations
// return an error.
type Service interface {
	// RefreshTasks fetches all tasks and publishes the outcome to
	// ObserveTasks. Failures are published, not returned.
	RefreshTasks(ctx context.Context)

	// RefreshTask refreshes the whole list; the backend has no
	// single-task endpoint.
	RefreshTask(ctx context.Context, taskID string)

	// ObserveTasks returns the last published task list.
	// Nothing is delivered until the first refresh completes.
	ObserveTasks() observable.Observable[Result[[]Task]]

	// ObserveTask derives a single-task view from ObserveTasks.
	// A task missing from a successful list yields ErrNotFound.
	ObserveTask(taskID string) observable.Observable[Result[Task]]

	// GetTasks fetches all tasks in backend order.
	GetTasks(ctx context.Context) Result[[]Task]

	// GetTask looks a task up in the seed data after a simulated delay.
	// It does not consult the backend.
	GetTask(ctx context.Context, taskID string) Result[Task]

	// SaveTask creates a task from its title and description.
	// The task's ID and completion state are not sent.
	SaveTask(ctx context.Context, task Task) error

	// CompleteTask marks a task completed on the backend.
	CompleteTask(ctx context.Context, taskID string) error

	// ActivateTask reopens a task. Backends may not support it.
	ActivateTask(ctx context.Context, taskID string) error

	// ClearCompletedTasks removes completed tasks from the seed data.
	ClearCompletedTasks(ctx context.Context) error

	// DeleteAllTasks removes every task from the seed data.
	DeleteAllTasks(ctx context.Context) error

	// DeleteTask deletes a task on the backend.
	DeleteTask(ctx context.Context, taskID string) error
}

// ObservedTask maps a task list result to the result for one task id.
// Loading and Error pass through unchanged.
func ObservedTask(taskID string) func(Result[[]Task]) Result[Task] {
	return func(r Result[[]Task]) Result[Task] {
		switch r.Status() {
		case StatusLoading:
			return Loading[Task]()
		case StatusError:
			return Failure[Task](r.Err())
		default:
			tasks, _ := r.Value()
			if t, ok := FindTask(tasks, taskID); ok {
				return Success(t)
			}
			return Failure[Task](ErrNotFound)
		}
	}
}
