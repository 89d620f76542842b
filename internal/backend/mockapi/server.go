// Package mockapi implements the to-do REST API in memory. It backs local
// development (cmd/mockapi) and the remote client tests.
package mockapi

import (
	"bytes"
	"io"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Task is the wire representation of a task.
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// Request records a request the server received.
type Request struct {
	Method string
	Path   string
	Body   string
}

type createRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Server is an in-memory task backend.
type Server struct {
	mu       sync.Mutex
	tasks    []Task
	requests []Request

	// Failure injection
	failStatus    int
	rawListBody   string
	rawCreateBody *string

	engine *gin.Engine
}

// New creates a server with no tasks.
func New() *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{}
	g := gin.New()
	g.Use(gin.Recovery(), s.record(), s.failures())

	api := g.Group("/api/tasks")
	api.GET("", s.listTasks)
	api.POST("", s.createTask)
	api.PATCH("/:id/complete", s.completeTask)
	api.DELETE("/:id/delete", s.deleteTask)

	s.engine = g
	return s
}

// Handler returns the HTTP handler serving the API.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Seed appends tasks, generating IDs for those without one.
func (s *Server) Seed(tasks ...Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range tasks {
		if t.ID == "" {
			t.ID = uuid.NewString()
		}
		s.tasks = append(s.tasks, t)
	}
}

// Tasks returns a copy of the stored tasks in order.
func (s *Server) Tasks() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]Task, len(s.tasks))
	copy(result, s.tasks)
	return result
}

// Requests returns every request received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]Request, len(s.requests))
	copy(result, s.requests)
	return result
}

// FailWith makes every request answer with status until called with 0.
func (s *Server) FailWith(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failStatus = status
}

// SetRawListBody makes GET /api/tasks answer 200 with body verbatim.
// An empty body restores normal behaviour.
func (s *Server) SetRawListBody(body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rawListBody = body
}

// SetRawCreateBody makes POST /api/tasks store the task but answer with
// body verbatim instead of the created task.
func (s *Server) SetRawCreateBody(body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rawCreateBody = &body
}

func (s *Server) record() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body string
		if c.Request.Body != nil {
			data, _ := c.GetRawData()
			body = string(data)
			c.Request.Body = io.NopCloser(bytes.NewReader(data))
		}
		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method: c.Request.Method,
			Path:   c.Request.URL.Path,
			Body:   body,
		})
		s.mu.Unlock()
		c.Next()
	}
}

func (s *Server) failures() gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		status := s.failStatus
		s.mu.Unlock()
		if status != 0 {
			c.AbortWithStatusJSON(status, gin.H{"error": http.StatusText(status)})
			return
		}
		c.Next()
	}
}

func (s *Server) listTasks(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rawListBody != "" {
		c.Data(http.StatusOK, "application/json", []byte(s.rawListBody))
		return
	}
	data := make([]Task, len(s.tasks))
	copy(data, s.tasks)
	c.JSON(http.StatusOK, gin.H{"data": data})
}

func (s *Server) createTask(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}
	if req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task := Task{ID: uuid.NewString(), Title: req.Title, Description: req.Description}
	s.tasks = append(s.tasks, task)

	if s.rawCreateBody != nil {
		c.Data(http.StatusCreated, "text/plain", []byte(*s.rawCreateBody))
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (s *Server) completeTask(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := c.Param("id")
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Completed = true
			c.Status(http.StatusOK)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "task not found: " + id})
}

func (s *Server) deleteTask(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := c.Param("id")
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			c.Status(http.StatusOK)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "task not found: " + id})
}
