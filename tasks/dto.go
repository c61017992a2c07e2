package tasks

import "time"

// CreateTaskRequest is the body of POST /tasks/create-task.
type CreateTaskRequest struct {
	Title       string  `json:"title" validate:"required,max=256" example:"Write report"`
	DueDate     *string `json:"dueDate,omitempty" example:"2024-12-31"`
	Description *string `json:"description,omitempty" example:"Quarterly numbers"`
}

// DeleteTaskRequest is the body of DELETE /tasks/delete-task.
type DeleteTaskRequest struct {
	ID string `json:"id"`
}

// TaskResponse is a task as returned by create and update; the owner and creation
// time are not exposed.
type TaskResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	DueDate     *Date      `json:"dueDate" swaggertype:"string" example:"2024-12-31"`
	Status      Status     `json:"status" enums:"pending,hold,completed"`
	UpdatedAt   *time.Time `json:"updatedAt"`
}

func newTaskResponse(t *Task) *TaskResponse {
	return &TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		Status:      t.Status,
		UpdatedAt:   t.UpdatedAt,
	}
}

// TaskListItem is a task as returned by the list endpoint.
type TaskListItem struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	DueDate     *Date   `json:"dueDate" swaggertype:"string" example:"2024-12-31"`
	Status      Status  `json:"status" enums:"pending,hold,completed"`
}

// Pagination describes the page returned by the list endpoint.
type Pagination struct {
	TotalDocs     int  `json:"totalDocs"`
	Limit         int  `json:"limit"`
	Page          int  `json:"page"`
	TotalPages    int  `json:"totalPages"`
	HasNextPage   bool `json:"hasNextPage"`
	HasPrevPage   bool `json:"hasPrevPage"`
	NextPage      *int `json:"nextPage"`
	PrevPage      *int `json:"prevPage"`
	PagingCounter int  `json:"pagingCounter"`
}

// ListResponse is the body of GET /tasks.
type ListResponse struct {
	Tasks      []TaskListItem `json:"tasks"`
	Pagination Pagination     `json:"pagination"`
}
