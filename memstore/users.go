package memstore

import (
	"context"

	"github.com/google/uuid"

	"github.com/user/taskboard-go/users"
)

// UserStore is the users.Store view of a Store.
type UserStore struct {
	s *Store
}

func (v *UserStore) Create(_ context.Context, u *users.User) error {
	s := v.s
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == u.Email {
			return users.ErrEmailTaken
		}
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	u.CreatedAt = s.now().UTC()

	cp := *u
	s.users[u.ID] = &cp
	return nil
}

func (v *UserStore) GetByID(_ context.Context, id string) (*users.User, error) {
	s := v.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, users.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (v *UserStore) GetByEmail(_ context.Context, email string) (*users.User, error) {
	s := v.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, users.ErrNotFound
}

// Delete removes the user and every task the user owns.
func (v *UserStore) Delete(_ context.Context, id string) error {
	s := v.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return users.ErrNotFound
	}
	delete(s.users, id)
	for taskID, t := range s.tasks {
		if t.UserID == id {
			delete(s.tasks, taskID)
		}
	}
	return nil
}
