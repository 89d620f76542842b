package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"todoremote/internal/service"
)

func TestNewSeeded(t *testing.T) {
	m := NewSeeded()

	all := m.All()
	require.Len(t, all, 2)
	assert.Equal(t, "Build tower in Pisa", all[0].Title)
	assert.Equal(t, "Ground looks good, no foundation work required.", all[0].Description)
	assert.Equal(t, "Finish bridge in Tacoma", all[1].Title)
	assert.Equal(t, "Found awesome girders at half the cost!", all[1].Description)

	for _, task := range all {
		assert.False(t, task.IsCompleted)
		got, ok := m.Get(task.ID)
		require.True(t, ok)
		assert.Equal(t, task, got)
	}
}

func TestMemory_AddReplaceKeepsOrder(t *testing.T) {
	m := NewMemory()
	m.Add(service.Task{ID: "a", Title: "first"})
	m.Add(service.Task{ID: "b", Title: "second"})
	m.Add(service.Task{ID: "a", Title: "first, edited"})

	all := m.All()
	require.Len(t, all, 2)
	assert.Equal(t, "first, edited", all[0].Title)
	assert.Equal(t, "b", all[1].ID)
}

func TestMemory_ClearCompleted(t *testing.T) {
	m := NewMemory()
	m.Add(service.Task{ID: "a", IsCompleted: true})
	m.Add(service.Task{ID: "b"})
	m.Add(service.Task{ID: "c", IsCompleted: true})
	m.Add(service.Task{ID: "d"})

	assert.Equal(t, 2, m.ClearCompleted())
	assert.Equal(t, 0, m.ClearCompleted())

	all := m.All()
	require.Len(t, all, 2)
	assert.Equal(t, "b", all[0].ID)
	assert.Equal(t, "d", all[1].ID)
}

func TestMemory_Clear(t *testing.T) {
	m := NewSeeded()
	m.Clear()

	assert.Equal(t, 0, m.Len())
	assert.Empty(t, m.All())
}

// TestMemory_ClearCompletedProperty checks that only completed tasks are
// removed, order is kept, and a second pass changes nothing.
func TestMemory_ClearCompletedProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		m := NewMemory()
		n := rapid.IntRange(0, 30).Draw(rt, "n")

		var open []string
		for i := 0; i < n; i++ {
			id := fmt.Sprintf("task-%d", i)
			done := rapid.Bool().Draw(rt, "completed")
			m.Add(service.Task{ID: id, IsCompleted: done})
			if !done {
				open = append(open, id)
			}
		}

		m.ClearCompleted()
		first := m.All()
		if removed := m.ClearCompleted(); removed != 0 {
			rt.Fatalf("second ClearCompleted removed %d tasks", removed)
		}

		if len(first) != len(open) {
			rt.Fatalf("kept %d tasks, want %d", len(first), len(open))
		}
		for i, task := range first {
			if task.ID != open[i] {
				rt.Fatalf("task[%d] = %s, want %s", i, task.ID, open[i])
			}
			if task.IsCompleted {
				rt.Fatalf("task %s is completed but was kept", task.ID)
			}
		}
	})
}
