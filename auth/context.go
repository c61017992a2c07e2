// Package auth, as part of the authentication module.
// This file, `context.go`, carries the authenticated user through a request's
// context.Context.
package auth

import (
	"context"

	"github.com/user/taskboard-go/apperror"
	"github.com/user/taskboard-go/users"
)

// `contextKey` is a custom type for context keys. Using a custom type prevents collisions
// with context keys defined in other packages.
type contextKey string

const (
	// `userContextKey` is the key under which Gate.Middleware stores the resolved user.
	userContextKey contextKey = "auth_user"
)

// WithUser returns a copy of ctx carrying u.
func WithUser(ctx context.Context, u *users.User) context.Context {
	return context.WithValue(ctx, userContextKey, u)
}

// UserFromContext extracts the user stored by Gate.Middleware.
// The second return value reports whether a user was present.
func UserFromContext(ctx context.Context) (*users.User, bool) {
	u, ok := ctx.Value(userContextKey).(*users.User)
	return u, ok && u != nil
}

// RequireUser is UserFromContext for handlers mounted behind the gate. A missing user
// means the handler was reached without authentication and is reported as AccessDenied.
func RequireUser(ctx context.Context) (*users.User, error) {
	u, ok := UserFromContext(ctx)
	if !ok {
		return nil, apperror.NewAccessDeniedError(nil)
	}
	return u, nil
}
