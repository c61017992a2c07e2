// Package memstore keeps users and tasks in process memory. One Store holds the data;
// its Users, Tasks and Metrics views satisfy users.Store, tasks.Store and
// dashboard.Store. Deleting a user deletes the user's tasks, as the Postgres foreign
// key does. It backs `serve --store=memory` and the service and router tests.
package memstore

import (
	"sort"
	"sync"
	"time"

	"github.com/user/taskboard-go/dashboard"
	"github.com/user/taskboard-go/tasks"
	"github.com/user/taskboard-go/users"
)

var (
	_ users.Store     = (*UserStore)(nil)
	_ tasks.Store     = (*TaskStore)(nil)
	_ dashboard.Store = (*MetricsStore)(nil)
)

// Store is safe for concurrent use. Records are copied in and out so callers never
// share memory with the store.
type Store struct {
	mu    sync.RWMutex
	users map[string]*users.User
	tasks map[string]*tasks.Task
	now   func() time.Time
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		users: make(map[string]*users.User),
		tasks: make(map[string]*tasks.Task),
		now:   time.Now,
	}
}

// WithClock makes the store stamp new users with now instead of time.Now.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// Users returns the users.Store view.
func (s *Store) Users() *UserStore { return &UserStore{s: s} }

// Tasks returns the tasks.Store view.
func (s *Store) Tasks() *TaskStore { return &TaskStore{s: s} }

// Metrics returns the dashboard.Store view.
func (s *Store) Metrics() *MetricsStore { return &MetricsStore{s: s} }

func copyTask(t *tasks.Task) *tasks.Task {
	cp := *t
	if t.Description != nil {
		d := *t.Description
		cp.Description = &d
	}
	if t.DueDate != nil {
		d := *t.DueDate
		cp.DueDate = &d
	}
	if t.UpdatedAt != nil {
		u := *t.UpdatedAt
		cp.UpdatedAt = &u
	}
	return &cp
}

// owned returns owner's tasks ordered by creation time, then id. Callers hold s.mu.
func (s *Store) owned(owner string) []*tasks.Task {
	var result []*tasks.Task
	for _, t := range s.tasks {
		if t.UserID == owner {
			result = append(result, t)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		}
		return result[i].ID < result[j].ID
	})
	return result
}
