// Package users is the credential store: it owns user records (id, name, email,
// password hash) and enforces email uniqueness. Deleting a user removes every task
// the user owns through the tasks.user_id foreign key (ON DELETE CASCADE).
package users

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when no user matches the lookup.
	ErrNotFound = errors.New("user not found")
	// ErrEmailTaken is returned by Create when the email is already registered.
	ErrEmailTaken = errors.New("email already exists")
)

// User is a registered account. Email is stored exactly as supplied (after trimming)
// and compared case-sensitively.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Do not expose hashed password
	CreatedAt    time.Time `json:"-"`
}

// Store persists users. Implementations: PostgresStore and memstore.Store.
type Store interface {
	// Create inserts u. An empty u.ID is replaced by a fresh UUID; CreatedAt is set
	// by the store.
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// Delete removes the user and, by cascade, all of their tasks.
	Delete(ctx context.Context, id string) error
}
