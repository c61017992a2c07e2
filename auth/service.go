// Package auth is responsible for handling authentication and authorization logic.
// This includes user registration, sign-in, bearer token issuance and the request gate
// that turns a token back into a live user.
package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/user/taskboard-go/apperror"
	"github.com/user/taskboard-go/logging"
	"github.com/user/taskboard-go/users"
	"github.com/user/taskboard-go/validation"
)

// Messages returned to clients by the auth endpoints.
const (
	msgUserCreated        = "User creation successful."
	msgEmailTaken         = "Email already exist."
	msgInvalidCredentials = "Invalid credentials."
)

// Service provides sign-up and sign-in.
type Service struct {
	users  users.Store
	hasher PasswordHasher
	tokens *TokenIssuer
}

// NewService creates a new Service.
// Dependencies are injected explicitly via constructor arguments.
func NewService(store users.Store, hasher PasswordHasher, tokens *TokenIssuer) *Service {
	return &Service{
		users:  store,
		hasher: hasher,
		tokens: tokens,
	}
}

// SignUp validates req, hashes the password and creates the user.
// Name and email are trimmed; email case is preserved.
func (s *Service) SignUp(ctx context.Context, req SignUpRequest) (*MessageResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, apperror.NewValidationError("password must be at most 72 bytes.", err)
		}
		return nil, apperror.NewInternalError("failed to hash password", err)
	}

	u := &users.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashed,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, users.ErrEmailTaken) {
			return nil, apperror.NewValidationError(msgEmailTaken, err)
		}
		return nil, apperror.NewDatabaseError("failed to create user", err)
	}

	logging.FromContext(ctx).Info(ctx, "user registered", "user_id", u.ID)
	return &MessageResponse{Message: msgUserCreated}, nil
}

// SignIn checks the credentials in req and issues a bearer token.
// An unknown email and a wrong password produce the same AuthError.
func (s *Service) SignIn(ctx context.Context, req SignInRequest) (*SignInResponse, error) {
	req.Email = strings.TrimSpace(req.Email)
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	log := logging.FromContext(ctx)

	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			log.Info(ctx, "sign-in failed", "reason", "unknown email")
			return nil, apperror.NewAuthError(msgInvalidCredentials, nil)
		}
		return nil, apperror.NewDatabaseError("failed to load user", err)
	}

	ok, err := s.hasher.Verify(req.Password, u.PasswordHash)
	if err != nil {
		return nil, apperror.NewInternalError("failed to verify password", err)
	}
	if !ok {
		log.Info(ctx, "sign-in failed", "reason", "wrong password", "user_id", u.ID)
		return nil, apperror.NewAuthError(msgInvalidCredentials, nil)
	}

	token, err := s.tokens.Issue(Identity{ID: u.ID, Name: u.Name, Email: u.Email})
	if err != nil {
		return nil, apperror.NewInternalError("failed to sign token", err)
	}

	return &SignInResponse{
		Token: token,
		User:  UserResponse{ID: u.ID, Name: u.Name, Email: u.Email},
	}, nil
}
