package tasks

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/user/taskboard-go/auth"
)

// Handlers exposes the Service over HTTP. Every route expects auth.Gate.Middleware to
// have run first.
type Handlers struct {
	service *Service
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

// RegisterRoutes mounts the task endpoints on r.
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Get("/", h.HandleList())
	r.Post("/create-task", h.HandleCreate())
	r.Patch("/update-task", h.HandleUpdate())
	r.Delete("/delete-task/{id}", h.HandleDelete())
	r.Delete("/delete-task", h.HandleDelete())
}

// positiveInt parses a query value, falling back to def when it is missing,
// non-numeric or below 1.
func positiveInt(raw string, def int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}

// HandleList godoc
// @Summary List tasks
// @Description Returns one page of the caller's tasks in creation order.
// @Tags Tasks
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Success 200 {object} tasks.ListResponse
// @Failure 403 {object} apperror.ErrorResponse "Access denied or Unauthorized"
// @Router /tasks [get]
// @Security BearerAuth
func (h *Handlers) HandleList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := auth.RequireUser(r.Context())
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		q := r.URL.Query()
		page := positiveInt(q.Get("page"), DefaultPage)
		limit := positiveInt(q.Get("limit"), DefaultLimit)

		resp, err := h.service.List(r.Context(), u.ID, page, limit)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, resp)
	}
}

// HandleCreate godoc
// @Summary Create a task
// @Description Creates a pending task owned by the caller.
// @Tags Tasks
// @Accept json
// @Produce json
// @Param createTaskBody body tasks.CreateTaskRequest true "Task details"
// @Success 200 {object} tasks.TaskResponse
// @Failure 400 {object} apperror.ErrorResponse "Invalid title or due date"
// @Failure 403 {object} apperror.ErrorResponse "Access denied or Unauthorized"
// @Router /tasks/create-task [post]
// @Security BearerAuth
func (h *Handlers) HandleCreate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := auth.RequireUser(r.Context())
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		var req CreateTaskRequest
		if !auth.DecodeJSON(w, r, &req) {
			return
		}

		resp, err := h.service.Create(r.Context(), u.ID, req)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, resp)
	}
}

// HandleUpdate godoc
// @Summary Update a task
// @Description Applies the fields present in the body. Omitting dueDate clears it.
// @Tags Tasks
// @Accept json
// @Produce json
// @Param updateTaskBody body tasks.Patch true "Task id and fields to change"
// @Success 200 {object} tasks.TaskResponse
// @Failure 400 {object} apperror.ErrorResponse "Invalid input"
// @Failure 401 {object} apperror.ErrorResponse "Cannot find task."
// @Failure 403 {object} apperror.ErrorResponse "Access denied or Unauthorized"
// @Router /tasks/update-task [patch]
// @Security BearerAuth
func (h *Handlers) HandleUpdate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := auth.RequireUser(r.Context())
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		var p Patch
		if !auth.DecodeJSON(w, r, &p) {
			return
		}

		resp, err := h.service.Update(r.Context(), u.ID, p)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, resp)
	}
}

// HandleDelete godoc
// @Summary Delete a task
// @Description Permanently deletes one of the caller's tasks and returns it. The id is
// @Description taken from the path, or from the JSON body on /tasks/delete-task.
// @Tags Tasks
// @Produce json
// @Param id path string true "Task id"
// @Success 200 {object} tasks.Task
// @Failure 400 {object} apperror.ErrorResponse "Missing id"
// @Failure 401 {object} apperror.ErrorResponse "Cannot find task."
// @Failure 403 {object} apperror.ErrorResponse "Access denied or Unauthorized"
// @Router /tasks/delete-task/{id} [delete]
// @Security BearerAuth
func (h *Handlers) HandleDelete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := auth.RequireUser(r.Context())
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		id := chi.URLParam(r, "id")
		if id == "" && r.ContentLength != 0 {
			var req DeleteTaskRequest
			if !auth.DecodeJSON(w, r, &req) {
				return
			}
			id = req.ID
		}

		deleted, err := h.service.Delete(r.Context(), u.ID, id)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, deleted)
	}
}
