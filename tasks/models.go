// Package tasks manages task records owned by a single user: creation, paginated
// listing, partial updates and deletion. Every operation is scoped to the owner
// resolved by the auth gate; a task owned by someone else is indistinguishable from
// one that does not exist.
package tasks

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// ErrNotFound is returned when no task with the given id exists in the owner's scope.
var ErrNotFound = errors.New("task not found")

// Status is the lifecycle state of a task. Every transition between states is allowed.
type Status string

const (
	StatusPending   Status = "pending"
	StatusHold      Status = "hold"
	StatusCompleted Status = "completed"
)

// Valid reports whether s is one of the known states.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusHold, StatusCompleted:
		return true
	}
	return false
}

// DateLayout is the wire format of due dates.
const DateLayout = "2006-01-02"

// Date is a calendar date without a time of day, encoded as "YYYY-MM-DD".
type Date struct {
	time.Time
}

// NewDate truncates t to its calendar date in t's location, expressed in UTC.
func NewDate(t time.Time) Date {
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses s as a "YYYY-MM-DD" date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Task is a persisted task record.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	DueDate     *Date      `json:"dueDate"`
	Status      Status     `json:"status"`
	UserID      string     `json:"userId"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt"`
}

// Optional is a JSON field that records whether its key was present in the document.
// An explicit null counts as present, with Null set.
type Optional[T any] struct {
	Value   T
	Present bool
	Null    bool
}

// Some returns a present, non-null Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Present: true}
}

// Null returns a present Optional holding JSON null.
func Null[T any]() Optional[T] {
	return Optional[T]{Present: true, Null: true}
}

// UnmarshalJSON is only invoked when the key exists, which is what marks presence.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Present = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Null = true
		var zero T
		o.Value = zero
		return nil
	}
	o.Null = false
	return json.Unmarshal(data, &o.Value)
}

// Patch is a partial update request. ID selects the task; every other field is
// applied only when present, except DueDate, which is always overwritten: an absent
// or null dueDate clears the stored date.
type Patch struct {
	ID          string           `json:"id"`
	Title       Optional[string] `json:"title" swaggertype:"string"`
	DueDate     Optional[string] `json:"dueDate" swaggertype:"string" example:"2024-12-31"`
	Description Optional[string] `json:"description" swaggertype:"string"`
	Status      Optional[string] `json:"status" swaggertype:"string" enums:"pending,hold,completed"`
}

// hasChanges reports whether any mutable field is present.
func (p Patch) hasChanges() bool {
	return p.Title.Present || p.DueDate.Present || p.Description.Present || p.Status.Present
}

// Changes is a validated update handed to Store.Update.
type Changes struct {
	Title       *string          // nil leaves the title unchanged
	Description Optional[string] // applied when Present; Null clears it
	Status      *Status          // nil leaves the status unchanged
	DueDate     *Date            // always written; nil clears it
	UpdatedAt   time.Time
}
