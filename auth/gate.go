package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/user/taskboard-go/apperror"
	"github.com/user/taskboard-go/logging"
	"github.com/user/taskboard-go/users"
)

// Gate resolves the bearer token on a request to a live user record.
//
// Every request re-reads the user from the store, so the tokens of a deleted account
// stop working immediately even though they have not expired.
type Gate struct {
	tokens *TokenIssuer
	users  users.Store
}

// NewGate creates a Gate.
func NewGate(tokens *TokenIssuer, store users.Store) *Gate {
	return &Gate{tokens: tokens, users: store}
}

// bearerToken extracts the token from an `Authorization: Bearer {token}` header value.
func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}

// Resolve maps an Authorization header value to the user it authenticates.
//
//   - no credential, or not a Bearer credential: AccessDeniedError
//   - a token that fails verification, lacks a UUID id or an email, or names a user
//     that no longer exists: UnauthorizedError
//   - a store failure: InternalError
func (g *Gate) Resolve(ctx context.Context, header string) (*users.User, error) {
	token, ok := bearerToken(header)
	if !ok {
		return nil, apperror.NewAccessDeniedError(nil)
	}

	claims, err := g.tokens.Verify(token)
	if err != nil {
		return nil, apperror.NewUnauthorizedError(err)
	}
	if _, err := uuid.Parse(claims.ID); err != nil || strings.TrimSpace(claims.Email) == "" {
		return nil, apperror.NewUnauthorizedError(errors.New("token claims lack a user id or email"))
	}

	u, err := g.users.GetByID(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, apperror.NewUnauthorizedError(err)
		}
		return nil, apperror.NewInternalError("failed to load user", err)
	}
	return u, nil
}

// Middleware authenticates the request with Resolve, stores the user in the request
// context and calls next. Rejected requests never reach next.
func (g *Gate) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, err := g.Resolve(r.Context(), r.Header.Get("Authorization"))
		if err != nil {
			WriteError(w, r, err)
			return
		}

		ctx := WithUser(r.Context(), u)
		ctx = logging.WithLogger(ctx, logging.FromContext(ctx).With("user_id", u.ID))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
