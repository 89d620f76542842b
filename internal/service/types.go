// Package service defines the backend-agnostic interface for task operations.
package service

import "github.com/google/uuid"

// Task represents a single to-do item.
type Task struct {
	ID          string
	Title       string
	Description string
	IsCompleted bool
}

// NewTask creates an open task with a freshly generated ID.
func NewTask(title, description string) Task {
	return Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
	}
}

// FindTask returns the first task in tasks with the given ID.
func FindTask(tasks []Task, id string) (Task, bool) {
	for _, t := range tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}
