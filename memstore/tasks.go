package memstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/user/taskboard-go/tasks"
)

// TaskStore is the tasks.Store view of a Store.
type TaskStore struct {
	s *Store
}

func (v *TaskStore) Count(_ context.Context, owner string) (int, error) {
	s := v.s
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.owned(owner)), nil
}

func (v *TaskStore) List(_ context.Context, owner string, limit, offset int) ([]tasks.Task, error) {
	s := v.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := s.owned(owner)
	if offset < 0 {
		offset = 0
	}
	if limit < 1 || offset >= len(all) {
		return []tasks.Task{}, nil
	}
	end := len(all)
	if limit < end-offset {
		end = offset + limit
	}

	result := make([]tasks.Task, 0, end-offset)
	for _, t := range all[offset:end] {
		result = append(result, *copyTask(t))
	}
	return result, nil
}

func (v *TaskStore) Get(_ context.Context, owner, id string) (*tasks.Task, error) {
	s := v.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tasks[id]
	if !ok || t.UserID != owner {
		return nil, tasks.ErrNotFound
	}
	return copyTask(t), nil
}

// Create inserts t. Like the foreign key in Postgres, the owner must exist.
func (v *TaskStore) Create(_ context.Context, t *tasks.Task) error {
	s := v.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[t.UserID]; !ok {
		return fmt.Errorf("task owner %s does not exist", t.UserID)
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	s.tasks[t.ID] = copyTask(t)
	return nil
}

func (v *TaskStore) Update(_ context.Context, owner, id string, c tasks.Changes) (*tasks.Task, error) {
	s := v.s
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok || t.UserID != owner {
		return nil, tasks.ErrNotFound
	}

	if c.Title != nil {
		t.Title = *c.Title
	}
	if c.Description.Present {
		if c.Description.Null {
			t.Description = nil
		} else {
			d := c.Description.Value
			t.Description = &d
		}
	}
	if c.Status != nil {
		t.Status = *c.Status
	}
	if c.DueDate != nil {
		d := *c.DueDate
		t.DueDate = &d
	} else {
		t.DueDate = nil
	}
	updated := c.UpdatedAt
	t.UpdatedAt = &updated

	return copyTask(t), nil
}

func (v *TaskStore) Delete(_ context.Context, owner, id string) (*tasks.Task, error) {
	s := v.s
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok || t.UserID != owner {
		return nil, tasks.ErrNotFound
	}
	delete(s.tasks, id)
	return t, nil
}
