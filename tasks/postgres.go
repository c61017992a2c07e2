package tasks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/user/taskboard-go/db"
)

const taskColumns = `id, title, description, due_date, status, user_id, created_at, updated_at`

// PostgresStore implements Store on top of a pgx pool.
type PostgresStore struct {
	db db.DBTX
}

// NewPostgresStore creates a new PostgresStore.
func NewPostgresStore(db db.DBTX) *PostgresStore {
	return &PostgresStore{db: db}
}

// scanTask reads one row selected with taskColumns.
func scanTask(row pgx.Row) (*Task, error) {
	var (
		t       Task
		status  string
		dueDate *time.Time
	)
	err := row.Scan(&t.ID, &t.Title, &t.Description, &dueDate, &status, &t.UserID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	t.Status = Status(status)
	if dueDate != nil {
		d := NewDate(*dueDate)
		t.DueDate = &d
	}
	return &t, nil
}

// validID reports whether id can match a row at all. Postgres rejects malformed UUID
// literals with an error; such ids are reported as not found instead.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func (s *PostgresStore) Count(ctx context.Context, owner string) (int, error) {
	var n int
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM tasks WHERE user_id = $1`, owner).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (s *PostgresStore) List(ctx context.Context, owner string, limit, offset int) ([]Task, error) {
	query := `SELECT ` + taskColumns + `
              FROM tasks
              WHERE user_id = $1
              ORDER BY created_at, id
              LIMIT $2 OFFSET $3`
	rows, err := s.db.Query(ctx, query, owner, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (s *PostgresStore) Get(ctx context.Context, owner, id string) (*Task, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1 AND user_id = $2`
	return s.one(s.db.QueryRow(ctx, query, id, owner))
}

func (s *PostgresStore) Create(ctx context.Context, t *Task) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	query := `INSERT INTO tasks (id, title, description, due_date, status, user_id, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7)
              RETURNING ` + taskColumns
	created, err := s.one(s.db.QueryRow(ctx, query,
		t.ID, t.Title, t.Description, dateArg(t.DueDate), string(t.Status), t.UserID, t.CreatedAt))
	if err != nil {
		return err
	}
	*t = *created
	return nil
}

// Update builds the SET clause from the fields present in c. due_date and updated_at
// are always written.
func (s *PostgresStore) Update(ctx context.Context, owner, id string, c Changes) (*Task, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}

	var (
		sets []string
		args []any
	)
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if c.Title != nil {
		set("title", *c.Title)
	}
	if c.Description.Present {
		if c.Description.Null {
			set("description", nil)
		} else {
			set("description", c.Description.Value)
		}
	}
	if c.Status != nil {
		set("status", string(*c.Status))
	}
	set("due_date", dateArg(c.DueDate))
	set("updated_at", c.UpdatedAt)

	args = append(args, id, owner)
	query := fmt.Sprintf(`UPDATE tasks SET %s WHERE id = $%d AND user_id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args)-1, len(args), taskColumns)

	return s.one(s.db.QueryRow(ctx, query, args...))
}

func (s *PostgresStore) Delete(ctx context.Context, owner, id string) (*Task, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}
	query := `DELETE FROM tasks WHERE id = $1 AND user_id = $2 RETURNING ` + taskColumns
	return s.one(s.db.QueryRow(ctx, query, id, owner))
}

func (s *PostgresStore) one(row pgx.Row) (*Task, error) {
	t, err := scanTask(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return t, nil
}

// dateArg converts an optional date into a query argument; nil becomes SQL NULL.
func dateArg(d *Date) any {
	if d == nil {
		return nil
	}
	return d.Time
}
