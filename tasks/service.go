package tasks

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/user/taskboard-go/apperror"
	"github.com/user/taskboard-go/logging"
	"github.com/user/taskboard-go/validation"
)

const (
	// DefaultPage and DefaultLimit apply when the query leaves them out or they are invalid.
	DefaultPage  = 1
	DefaultLimit = 10
	// MaxLimit caps the page size a client can ask for.
	MaxLimit = 100

	maxTitleLength = 256
)

// Messages returned to clients.
const (
	msgTaskNotFound  = "Cannot find task."
	msgIDRequired    = "ID should be required field."
	msgNoChanges     = "Either provide title, due date, description or status."
	msgInvalidStatus = "Invalid status."
	msgInvalidTitle  = "Enter valid title."
	msgTitleTooLong  = "Title must be at most 256 characters."
	msgInvalidDate   = "Invalid date."
)

// Service implements task CRUD scoped to an owner.
type Service struct {
	store Store
	now   func() time.Time
}

// NewService creates a Service. A nil now uses time.Now.
func NewService(store Store, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{store: store, now: now}
}

func notFound(err error) error {
	return apperror.NewNotFoundError(msgTaskNotFound, err)
}

// storeError maps store failures onto application errors.
func storeError(err error, action string) error {
	if errors.Is(err, ErrNotFound) {
		return notFound(err)
	}
	return apperror.NewDatabaseError("failed to "+action, err)
}

// List returns one page of owner's tasks. page and limit below 1 fall back to the
// defaults and limit is capped at MaxLimit. A page past the last one is empty.
func (s *Service) List(ctx context.Context, owner string, page, limit int) (*ListResponse, error) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	// The count and the page are read separately; a concurrent write between them can
	// make the two disagree.
	total, err := s.store.Count(ctx, owner)
	if err != nil {
		return nil, storeError(err, "count tasks")
	}

	var found []Task
	if page <= pageCount(total, limit) {
		found, err = s.store.List(ctx, owner, limit, (page-1)*limit)
		if err != nil {
			return nil, storeError(err, "list tasks")
		}
	}

	items := make([]TaskListItem, 0, len(found))
	for _, t := range found {
		items = append(items, TaskListItem{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			DueDate:     t.DueDate,
			Status:      t.Status,
		})
	}

	return &ListResponse{Tasks: items, Pagination: paginate(total, page, limit)}, nil
}

// pageCount is ceil(total/limit) without the overflow of total+limit-1.
func pageCount(total, limit int) int {
	n := total / limit
	if total%limit != 0 {
		n++
	}
	return n
}

func paginate(total, page, limit int) Pagination {
	totalPages := pageCount(total, limit)
	counter := math.MaxInt
	if page-1 <= (math.MaxInt-1)/limit {
		counter = (page-1)*limit + 1
	}
	p := Pagination{
		TotalDocs:     total,
		Limit:         limit,
		Page:          page,
		TotalPages:    totalPages,
		HasNextPage:   page < totalPages,
		HasPrevPage:   page > 1,
		PagingCounter: counter,
	}
	if p.HasNextPage {
		next := page + 1
		p.NextPage = &next
	}
	if p.HasPrevPage {
		prev := page - 1
		p.PrevPage = &prev
	}
	return p
}

// Create validates req and stores a new pending task for owner.
func (s *Service) Create(ctx context.Context, owner string, req CreateTaskRequest) (*TaskResponse, error) {
	req.Title = strings.TrimSpace(req.Title)
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	t := &Task{
		Title:     req.Title,
		Status:    StatusPending,
		UserID:    owner,
		CreatedAt: s.now().UTC(),
	}
	if req.DueDate != nil && strings.TrimSpace(*req.DueDate) != "" {
		d, err := ParseDate(*req.DueDate)
		if err != nil {
			return nil, apperror.NewValidationError(msgInvalidDate, err)
		}
		t.DueDate = &d
	}
	if req.Description != nil {
		desc := strings.TrimSpace(*req.Description)
		t.Description = &desc
	}

	if err := s.store.Create(ctx, t); err != nil {
		return nil, storeError(err, "create task")
	}

	logging.FromContext(ctx).Debug(ctx, "task created", "task_id", t.ID)
	return newTaskResponse(t), nil
}

// validate turns a Patch into Changes, or reports the first problem found.
func (p Patch) validate(now time.Time) (Changes, error) {
	c := Changes{UpdatedAt: now}

	if strings.TrimSpace(p.ID) == "" {
		return c, apperror.NewValidationError(msgIDRequired, nil)
	}
	if !p.hasChanges() {
		return c, apperror.NewValidationError(msgNoChanges, nil)
	}

	if p.Status.Present {
		status := Status(p.Status.Value)
		if p.Status.Null || !status.Valid() {
			return c, apperror.NewValidationError(msgInvalidStatus, nil)
		}
		c.Status = &status
	}

	if p.Title.Present {
		title := strings.TrimSpace(p.Title.Value)
		if p.Title.Null || title == "" {
			return c, apperror.NewValidationError(msgInvalidTitle, nil)
		}
		if utf8.RuneCountInString(title) > maxTitleLength {
			return c, apperror.NewValidationError(msgTitleTooLong, nil)
		}
		c.Title = &title
	}

	// An absent, null or empty dueDate clears the stored date.
	if p.DueDate.Present && !p.DueDate.Null && strings.TrimSpace(p.DueDate.Value) != "" {
		d, err := ParseDate(p.DueDate.Value)
		if err != nil {
			return c, apperror.NewValidationError(msgInvalidDate, err)
		}
		c.DueDate = &d
	}

	c.Description = p.Description
	if c.Description.Present && !c.Description.Null {
		c.Description.Value = strings.TrimSpace(c.Description.Value)
	}
	return c, nil
}

// Update applies p to one of owner's tasks.
func (s *Service) Update(ctx context.Context, owner string, p Patch) (*TaskResponse, error) {
	changes, err := p.validate(s.now().UTC())
	if err != nil {
		return nil, err
	}
	id := strings.TrimSpace(p.ID)

	if _, err := s.store.Get(ctx, owner, id); err != nil {
		return nil, storeError(err, "load task")
	}

	// A concurrent delete between the check and the write surfaces as ErrNotFound here.
	updated, err := s.store.Update(ctx, owner, id, changes)
	if err != nil {
		return nil, storeError(err, "update task")
	}
	return newTaskResponse(updated), nil
}

// Delete removes one of owner's tasks and returns it.
func (s *Service) Delete(ctx context.Context, owner, id string) (*Task, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperror.NewValidationError(msgIDRequired, nil)
	}

	deleted, err := s.store.Delete(ctx, owner, id)
	if err != nil {
		return nil, storeError(err, "delete task")
	}

	logging.FromContext(ctx).Debug(ctx, "task deleted", "task_id", deleted.ID)
	return deleted, nil
}
