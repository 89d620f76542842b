package commands

import (
	"context"
	"errors"
	"fmt"

	"todoremote/internal/service"
)

// errOutOfRange marks a list position past the end of the task list.
var errOutOfRange = errors.New("task number out of range")

// fetchTasks refreshes the task list and reads the published result.
func fetchTasks(ctx context.Context, svc service.Service) ([]service.Task, error) {
	svc.RefreshTasks(ctx)
	return first(ctx, svc.ObserveTasks().Subscribe())
}

// resolveTaskID turns a reference into a task ID. IDs are returned as is;
// positions need the current list.
func resolveTaskID(ctx context.Context, svc service.Service, ref TaskRef) (string, error) {
	if ref.ID != "" {
		return ref.ID, nil
	}

	tasks, err := fetchTasks(ctx, svc)
	if err != nil {
		return "", err
	}
	if ref.Position > len(tasks) {
		return "", fmt.Errorf("%w: %d", errOutOfRange, ref.Position)
	}
	return tasks[ref.Position-1].ID, nil
}
