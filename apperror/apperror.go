// Package apperror defines a centralized system for application-specific errors.
// Services return *AppError values and the HTTP layer turns them into a status code
// and a `{"message": ...}` body, so every handler answers failures the same way.
package apperror

import (
	"errors"
	"fmt"
	// `net/http` is used for HTTP status codes.
	"net/http"
)

// ErrorType is an enumeration (using `iota`) for different categories of application errors.
type ErrorType int

const (
	// UnknownError is for unspecified errors
	UnknownError ErrorType = iota
	// DatabaseError represents an error originating from the database
	DatabaseError
	// ConfigError represents an error related to application configuration
	ConfigError
	// AuthError represents a failed sign-in (unknown email or wrong password)
	AuthError
	// AccessDeniedError means the request carried no bearer credential at all
	AccessDeniedError
	// UnauthorizedError means a credential was supplied but is invalid or stale
	UnauthorizedError
	// NotFoundError represents a resource that is absent or not owned by the caller
	NotFoundError
	// ValidationError represents an input validation error
	ValidationError
	// BadRequestError represents a generic bad request (e.g. undecodable JSON)
	BadRequestError
	// InternalError represents a generic internal server error
	InternalError
	// MigrationError represents an error during database migrations
	MigrationError
)

// Messages used for the auth failures. They are deliberately generic.
const (
	MsgAccessDenied = "Access denied"
	MsgUnauthorized = "Unauthorized"
	MsgInternal     = "Internal server error"
)

// AppError is a custom error type for the application.
// It allows wrapping an underlying error (`Err`) for more detailed debugging.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error // Underlying error
}

// Error returns the string representation of the error, satisfying the `error` interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error so `errors.Is` and `errors.As` can inspect the chain.
func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status code appropriate for the error type.
//
// Note that NotFoundError maps to 401: a task that does not exist and a task owned by
// somebody else must look identical to the caller.
func (e *AppError) StatusCode() int {
	switch e.Type {
	case DatabaseError, ConfigError, InternalError, MigrationError:
		return http.StatusInternalServerError
	case AuthError:
		return http.StatusUnauthorized
	case AccessDeniedError, UnauthorizedError:
		return http.StatusForbidden
	case NotFoundError:
		return http.StatusUnauthorized
	case ValidationError, BadRequestError:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// IsServerError reports whether the error maps to a 5xx response.
func (e *AppError) IsServerError() bool {
	return e.StatusCode() >= http.StatusInternalServerError
}

// NewAppError creates a new AppError.
// This is a general constructor; the specific constructors below are usually more convenient.
func NewAppError(errType ErrorType, message string, underlyingError error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Err:     underlyingError,
	}
}

// Helper functions for creating specific error types

func NewDatabaseError(message string, underlyingError error) *AppError {
	return NewAppError(DatabaseError, message, underlyingError)
}

func NewConfigError(message string, underlyingError error) *AppError {
	return NewAppError(ConfigError, message, underlyingError)
}

func NewAuthError(message string, underlyingError error) *AppError {
	return NewAppError(AuthError, message, underlyingError)
}

// NewAccessDeniedError is returned when no bearer token was supplied.
func NewAccessDeniedError(underlyingError error) *AppError {
	return NewAppError(AccessDeniedError, MsgAccessDenied, underlyingError)
}

// NewUnauthorizedError is returned for every kind of bad or stale token. The message is
// fixed so callers cannot tell which check failed.
func NewUnauthorizedError(underlyingError error) *AppError {
	return NewAppError(UnauthorizedError, MsgUnauthorized, underlyingError)
}

func NewNotFoundError(message string, underlyingError error) *AppError {
	return NewAppError(NotFoundError, message, underlyingError)
}

func NewValidationError(message string, underlyingError error) *AppError {
	return NewAppError(ValidationError, message, underlyingError)
}

func NewBadRequestError(message string, underlyingError error) *AppError {
	return NewAppError(BadRequestError, message, underlyingError)
}

func NewInternalError(message string, underlyingError error) *AppError {
	return NewAppError(InternalError, message, underlyingError)
}

func NewMigrationError(message string, underlyingError error) *AppError {
	return NewAppError(MigrationError, message, underlyingError)
}

// ErrorResponse is the standard JSON body for error responses.
type ErrorResponse struct {
	Message string `json:"message" example:"A description of the error"`
}

// ToResponse converts an AppError to an ErrorResponse suitable for JSON serialization.
// Server-side failures never expose their message or cause to the client.
func (e *AppError) ToResponse() ErrorResponse {
	if e.IsServerError() {
		return ErrorResponse{Message: MsgInternal}
	}
	return ErrorResponse{Message: e.Message}
}

// FromError converts any error into an *AppError. Errors that are not (and do not wrap)
// an AppError become an InternalError wrapping the original.
func FromError(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewInternalError("an unexpected error occurred", err)
}

// Is checks whether err is an AppError of the given type.
func Is(err error, errType ErrorType) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == errType
}

// IsNotFound checks if an error is a NotFoundError.
func IsNotFound(err error) bool {
	return Is(err, NotFoundError)
}

// IsValidationError checks if an error is a ValidationError.
func IsValidationError(err error) bool {
	return Is(err, ValidationError)
}

// IsUnauthorizedError checks if an error is an UnauthorizedError.
func IsUnauthorizedError(err error) bool {
	return Is(err, UnauthorizedError)
}
