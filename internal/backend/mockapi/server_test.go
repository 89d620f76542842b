package mockapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestListTasks(t *testing.T) {
	s := New()
	s.Seed(Task{ID: "a", Title: "first"}, Task{ID: "b", Title: "second", Completed: true})

	rec := do(t, s, http.MethodGet, "/api/tasks", "")

	require.Equal(t, http.StatusOK, rec.Code)
	data := gjson.Get(rec.Body.String(), "data")
	require.True(t, data.IsArray())
	assert.Equal(t, []string{"a", "b"}, []string{data.Get("0.id").String(), data.Get("1.id").String()})
	assert.True(t, data.Get("1.completed").Bool())
}

func TestListTasks_EmptyIsArray(t *testing.T) {
	rec := do(t, New(), http.MethodGet, "/api/tasks", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[]}`, rec.Body.String())
}

func TestCreateTask(t *testing.T) {
	s := New()

	rec := do(t, s, http.MethodPost, "/api/tasks", `{"title":"Buy milk","description":"2l"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	id := gjson.Get(rec.Body.String(), "id").String()
	assert.NotEmpty(t, id)

	tasks := s.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, Task{ID: id, Title: "Buy milk", Description: "2l"}, tasks[0])
}

func TestCreateTask_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"no title", `{"description":"x"}`, "title is required"},
		{"not json", `{`, "invalid JSON body"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			rec := do(t, s, http.MethodPost, "/api/tasks", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.want, gjson.Get(rec.Body.String(), "error").String())
			assert.Empty(t, s.Tasks())
		})
	}
}

func TestCompleteTask(t *testing.T) {
	s := New()
	s.Seed(Task{ID: "a", Title: "first"})

	rec := do(t, s, http.MethodPatch, "/api/tasks/a/complete", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, s.Tasks()[0].Completed)

	rec = do(t, s, http.MethodPatch, "/api/tasks/missing/complete", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "task not found: missing", gjson.Get(rec.Body.String(), "error").String())
}

func TestDeleteTask(t *testing.T) {
	s := New()
	s.Seed(Task{ID: "a"}, Task{ID: "b"}, Task{ID: "c"})

	rec := do(t, s, http.MethodDelete, "/api/tasks/b/delete", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var ids []string
	for _, task := range s.Tasks() {
		ids = append(ids, task.ID)
	}
	assert.Equal(t, []string{"a", "c"}, ids)

	rec = do(t, s, http.MethodDelete, "/api/tasks/b/delete", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSeed_GeneratesIDs(t *testing.T) {
	s := New()
	s.Seed(Task{Title: "x"}, Task{Title: "y"})

	tasks := s.Tasks()
	require.Len(t, tasks, 2)
	assert.NotEmpty(t, tasks[0].ID)
	assert.NotEqual(t, tasks[0].ID, tasks[1].ID)
}

func TestFailWith(t *testing.T) {
	s := New()
	s.FailWith(http.StatusServiceUnavailable)

	rec := do(t, s, http.MethodGet, "/api/tasks", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "Service Unavailable", gjson.Get(rec.Body.String(), "error").String())

	s.FailWith(0)
	rec = do(t, s, http.MethodGet, "/api/tasks", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRawBodies(t *testing.T) {
	s := New()
	s.SetRawListBody(`{"items":[]}`)
	s.SetRawCreateBody("ok")

	rec := do(t, s, http.MethodGet, "/api/tasks", "")
	assert.Equal(t, `{"items":[]}`, rec.Body.String())

	rec = do(t, s, http.MethodPost, "/api/tasks", `{"title":"t"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
	assert.Len(t, s.Tasks(), 1, "the task is stored even when the reply is replaced")
}

func TestRequests(t *testing.T) {
	s := New()
	do(t, s, http.MethodPost, "/api/tasks", `{"title":"t"}`)
	do(t, s, http.MethodGet, "/api/tasks", "")

	reqs := s.Requests()
	require.Len(t, reqs, 2)
	assert.Equal(t, Request{Method: http.MethodPost, Path: "/api/tasks", Body: `{"title":"t"}`}, reqs[0])
	assert.Equal(t, http.MethodGet, reqs[1].Method)
	assert.Empty(t, reqs[1].Body)
}
