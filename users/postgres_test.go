package users

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*PostgresStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return NewPostgresStore(mock), mock
}

func TestPostgresStore_Create(t *testing.T) {
	s, mock := newMockStore(t)
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (id, name, email, password)")).
		WithArgs(pgxmock.AnyArg(), "Alice", "alice@example.com", "hash").
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(now))

	u := &User{Name: "Alice", Email: "alice@example.com", PasswordHash: "hash"}
	require.NoError(t, s.Create(context.Background(), u))

	_, err := uuid.Parse(u.ID)
	assert.NoError(t, err, "an id is generated when none is supplied")
	assert.Equal(t, now, u.CreatedAt)
}

func TestPostgresStore_Create_DuplicateEmail(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(pgxmock.AnyArg(), "Alice", "alice@example.com", "hash").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_unique"})

	err := s.Create(context.Background(), &User{Name: "Alice", Email: "alice@example.com", PasswordHash: "hash"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestPostgresStore_Create_OtherErrorIsWrapped(t *testing.T) {
	s, mock := newMockStore(t)
	boom := errors.New("connection reset")

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(pgxmock.AnyArg(), "Alice", "alice@example.com", "hash").
		WillReturnError(boom)

	err := s.Create(context.Background(), &User{Name: "Alice", Email: "alice@example.com", PasswordHash: "hash"})
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrEmailTaken)
}

func TestPostgresStore_GetByEmail(t *testing.T) {
	s, mock := newMockStore(t)
	id := uuid.NewString()
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
		WithArgs("alice@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email", "password", "created_at"}).
			AddRow(id, "Alice", "alice@example.com", "hash", now))

	u, err := s.GetByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, &User{ID: id, Name: "Alice", Email: "alice@example.com", PasswordHash: "hash", CreatedAt: now}, u)
}

func TestPostgresStore_GetByID_NotFound(t *testing.T) {
	s, mock := newMockStore(t)
	id := uuid.NewString()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	_, err := s.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, ErrNotFound)

	// Malformed ids never reach the database.
	_, err = s.GetByID(context.Background(), "42")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostgresStore_Delete(t *testing.T) {
	s, mock := newMockStore(t)
	id := uuid.NewString()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	require.NoError(t, s.Delete(context.Background(), id))
	assert.ErrorIs(t, s.Delete(context.Background(), id), ErrNotFound)
}
