// Package store holds the in-process seed tasks used by the legacy
// lookup paths of the remote data source.
package store

import (
	"sync"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"todoremote/internal/service"
)

// Memory is an insertion-ordered, concurrency-safe map of tasks keyed by ID.
type Memory struct {
	mu    sync.RWMutex
	tasks *orderedmap.OrderedMap[string, service.Task]
}

// NewMemory creates an empty store.
func NewMemory() *Memory {
	return &Memory{tasks: orderedmap.New[string, service.Task]()}
}

// NewSeeded creates a store holding the two example tasks.
func NewSeeded() *Memory {
	m := NewMemory()
	m.Add(service.NewTask("Build tower in Pisa", "Ground looks good, no foundation work required."))
	m.Add(service.NewTask("Finish bridge in Tacoma", "Found awesome girders at half the cost!"))
	return m
}

// Add inserts or replaces a task. Replacing keeps the original position.
func (m *Memory) Add(t service.Task) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tasks.Set(t.ID, t)
}

// Get returns the task with the given ID.
func (m *Memory) Get(id string) (service.Task, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.tasks.Get(id)
}

// All returns every task in insertion order.
func (m *Memory) All() []service.Task {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]service.Task, 0, m.tasks.Len())
	for pair := m.tasks.Oldest(); pair != nil; pair = pair.Next() {
		result = append(result, pair.Value)
	}
	return result
}

// Len returns the number of tasks.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.tasks.Len()
}

// ClearCompleted removes completed tasks and returns how many were removed.
func (m *Memory) ClearCompleted() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	var completed []string
	for pair := m.tasks.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.IsCompleted {
			completed = append(completed, pair.Key)
		}
	}
	for _, id := range completed {
		m.tasks.Delete(id)
	}
	return len(completed)
}

// Clear removes every task.
func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tasks = orderedmap.New[string, service.Task]()
}
