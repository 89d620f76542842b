package remote

import "todoremote/internal/service"

// taskRequest is the body of a create call. ID and completion are
// assigned by the backend.
type taskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type taskListResponse struct {
	Data []taskResponse `json:"data"`
}

type taskResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

func (r taskResponse) toTask() service.Task {
	return service.Task{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		IsCompleted: r.Completed,
	}
}
