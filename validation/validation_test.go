package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/taskboard-go/apperror"
)

type signUp struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name    string
		in      signUp
		wantMsg string
	}{
		{"valid", signUp{"Al", "al@example.com", "password"}, ""},
		{"missing name", signUp{"", "al@example.com", "password"}, "name is required."},
		{"short name", signUp{"A", "al@example.com", "password"}, "name must be at least 2 characters."},
		{"bad email", signUp{"Al", "not-an-email", "password"}, "email must be a valid email address."},
		{"short password", signUp{"Al", "al@example.com", "short"}, "password must be at least 8 characters."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Struct(tc.in)
			if tc.wantMsg == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, apperror.IsValidationError(err))
			assert.Equal(t, tc.wantMsg, apperror.FromError(err).Message)
		})
	}
}

func TestStruct_NonStructIsInternal(t *testing.T) {
	err := Struct("nope")
	require.Error(t, err)
	assert.Equal(t, apperror.InternalError, apperror.FromError(err).Type)
}
