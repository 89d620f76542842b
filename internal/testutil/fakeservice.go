// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"

	"todoremote/internal/observable"
	"todoremote/internal/service"
	"todoremote/internal/store"
)

// FakeService is an in-memory implementation of service.Service for testing.
// Like the REST client, observers only see changes after a refresh, and
// GetTask and the bulk clears use a separate seed store.
type FakeService struct {
	mu    sync.Mutex
	tasks []service.Task
	calls []string

	published *observable.Value[service.Result[[]service.Task]]

	// Seed backs GetTask, ClearCompletedTasks and DeleteAllTasks.
	Seed *store.Memory

	// Error injection for testing
	RefreshErr        error
	GetTaskErr        error
	SaveTaskErr       error
	CompleteTaskErr   error
	ActivateTaskErr   error
	DeleteTaskErr     error
	ClearCompletedErr error
	DeleteAllErr      error
}

// NewFakeService creates a FakeService with no tasks and an empty seed.
func NewFakeService() *FakeService {
	return &FakeService{
		published: observable.New[service.Result[[]service.Task]](),
		Seed:      store.NewMemory(),
	}
}

// AddTask adds a task to the remote list.
func (f *FakeService) AddTask(id, title string, completed bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(f.tasks, service.Task{ID: id, Title: title, IsCompleted: completed})
}

// Tasks returns a copy of the remote list.
func (f *FakeService) Tasks() []service.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]service.Task(nil), f.tasks...)
}

// Calls returns the names of the service methods called so far.
func (f *FakeService) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *FakeService) record(call string) {
	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.mu.Unlock()
}

// RefreshTasks implements service.Service.
func (f *FakeService) RefreshTasks(ctx context.Context) {
	f.record("RefreshTasks")
	f.published.Publish(f.GetTasks(ctx))
}

// RefreshTask implements service.Service.
func (f *FakeService) RefreshTask(ctx context.Context, taskID string) {
	f.record("RefreshTask " + taskID)
	f.published.Publish(f.GetTasks(ctx))
}

// ObserveTasks implements service.Service.
func (f *FakeService) ObserveTasks() observable.Observable[service.Result[[]service.Task]] {
	return f.published
}

// ObserveTask implements service.Service.
func (f *FakeService) ObserveTask(taskID string) observable.Observable[service.Result[service.Task]] {
	return observable.Map(f.ObserveTasks(), service.ObservedTask(taskID))
}

// GetTasks implements service.Service.
func (f *FakeService) GetTasks(ctx context.Context) service.Result[[]service.Task] {
	if f.RefreshErr != nil {
		return service.Failure[[]service.Task](f.RefreshErr)
	}
	return service.Success(f.Tasks())
}

// GetTask implements service.Service. It answers immediately.
func (f *FakeService) GetTask(ctx context.Context, taskID string) service.Result[service.Task] {
	f.record("GetTask " + taskID)
	if f.GetTaskErr != nil {
		return service.Failure[service.Task](f.GetTaskErr)
	}
	if task, ok := f.Seed.Get(taskID); ok {
		return service.Success(task)
	}
	return service.Failure[service.Task](service.ErrTaskNotFound)
}

// SaveTask implements service.Service.
func (f *FakeService) SaveTask(ctx context.Context, task service.Task) error {
	f.record("SaveTask " + task.Title)
	if f.SaveTaskErr != nil {
		return f.SaveTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(f.tasks, task)
	return nil
}

// CompleteTask implements service.Service.
func (f *FakeService) CompleteTask(ctx context.Context, taskID string) error {
	f.record("CompleteTask " + taskID)
	if f.CompleteTaskErr != nil {
		return f.CompleteTaskErr
	}
	return f.setCompleted(taskID, true)
}

// ActivateTask implements service.Service.
func (f *FakeService) ActivateTask(ctx context.Context, taskID string) error {
	f.record("ActivateTask " + taskID)
	if f.ActivateTaskErr != nil {
		return f.ActivateTaskErr
	}
	return f.setCompleted(taskID, false)
}

func (f *FakeService) setCompleted(taskID string, completed bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.tasks {
		if f.tasks[i].ID == taskID {
			f.tasks[i].IsCompleted = completed
			return nil
		}
	}
	return service.ErrTaskNotFound
}

// ClearCompletedTasks implements service.Service.
func (f *FakeService) ClearCompletedTasks(ctx context.Context) error {
	f.record("ClearCompletedTasks")
	if f.ClearCompletedErr != nil {
		return f.ClearCompletedErr
	}
	f.Seed.ClearCompleted()
	return nil
}

// DeleteAllTasks implements service.Service.
func (f *FakeService) DeleteAllTasks(ctx context.Context) error {
	f.record("DeleteAllTasks")
	if f.DeleteAllErr != nil {
		return f.DeleteAllErr
	}
	f.Seed.Clear()
	return nil
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(ctx context.Context, taskID string) error {
	f.record("DeleteTask " + taskID)
	if f.DeleteTaskErr != nil {
		return f.DeleteTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.tasks {
		if f.tasks[i].ID == taskID {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return service.ErrTaskNotFound
}

var _ service.Service = (*FakeService)(nil)
