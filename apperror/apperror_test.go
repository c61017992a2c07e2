package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want int
	}{
		{"access denied", NewAccessDeniedError(nil), http.StatusForbidden},
		{"unauthorized", NewUnauthorizedError(nil), http.StatusForbidden},
		{"bad credentials", NewAuthError("Invalid credentials.", nil), http.StatusUnauthorized},
		{"not found", NewNotFoundError("Cannot find task.", nil), http.StatusUnauthorized},
		{"validation", NewValidationError("bad", nil), http.StatusBadRequest},
		{"bad request", NewBadRequestError("bad", nil), http.StatusBadRequest},
		{"database", NewDatabaseError("db", nil), http.StatusInternalServerError},
		{"internal", NewInternalError("boom", nil), http.StatusInternalServerError},
		{"migration", NewMigrationError("mig", nil), http.StatusInternalServerError},
		{"config", NewConfigError("cfg", nil), http.StatusInternalServerError},
		{"unknown", NewAppError(UnknownError, "?", nil), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.StatusCode())
		})
	}
}

func TestToResponse_HidesServerErrors(t *testing.T) {
	dbErr := NewDatabaseError("failed to insert task", errors.New("pq: connection reset"))
	assert.Equal(t, ErrorResponse{Message: MsgInternal}, dbErr.ToResponse())

	v := NewValidationError("Enter valid title.", nil)
	assert.Equal(t, ErrorResponse{Message: "Enter valid title."}, v.ToResponse())

	assert.Equal(t, MsgUnauthorized, NewUnauthorizedError(errors.New("token expired")).ToResponse().Message)
}

func TestFromError(t *testing.T) {
	assert.Nil(t, FromError(nil))

	nf := NewNotFoundError("Cannot find task.", nil)
	wrapped := fmt.Errorf("service: %w", nf)
	assert.Same(t, nf, FromError(wrapped))

	plain := errors.New("boom")
	got := FromError(plain)
	require.NotNil(t, got)
	assert.Equal(t, InternalError, got.Type)
	assert.ErrorIs(t, got, plain)
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFoundError("x", nil)))
	assert.False(t, IsNotFound(NewValidationError("x", nil)))
	assert.True(t, IsValidationError(fmt.Errorf("wrap: %w", NewValidationError("x", nil))))
	assert.True(t, IsUnauthorizedError(NewUnauthorizedError(nil)))
	assert.False(t, IsUnauthorizedError(errors.New("plain")))
}
