// Package auth, as part of the authentication module.
// This file, `handlers.go`, is responsible for handling HTTP requests related to
// authentication, and holds the JSON response helpers shared by every handler package.
package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/user/taskboard-go/apperror"
	"github.com/user/taskboard-go/logging"
)

// Handlers wraps the Service to provide HTTP handlers.
type Handlers struct {
	service *Service
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

// RegisterRoutes mounts the /auth endpoints on r.
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Post("/sign-up", h.HandleSignUp())
	r.Post("/sign-in", h.HandleSignIn())
}

// HandleSignUp godoc
// @Summary User Registration
// @Description Registers a new user. Emails are unique and compared case-sensitively.
// @Tags Auth
// @Accept json
// @Produce json
// @Param signUpBody body auth.SignUpRequest true "User registration details"
// @Success 200 {object} auth.MessageResponse "User created"
// @Failure 400 {object} apperror.ErrorResponse "Invalid input or email already registered"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /auth/sign-up [post]
func (h *Handlers) HandleSignUp() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignUpRequest
		if !DecodeJSON(w, r, &req) {
			return
		}

		resp, err := h.service.SignUp(r.Context(), req)
		if err != nil {
			WriteError(w, r, err)
			return
		}
		WriteJSON(w, http.StatusOK, resp)
	}
}

// HandleSignIn godoc
// @Summary User Sign-in
// @Description Verifies credentials and returns a bearer token with the user's public profile.
// @Tags Auth
// @Accept json
// @Produce json
// @Param signInBody body auth.SignInRequest true "User credentials"
// @Success 200 {object} auth.SignInResponse "Signed in"
// @Failure 400 {object} apperror.ErrorResponse "Invalid input"
// @Failure 401 {object} apperror.ErrorResponse "Invalid credentials"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /auth/sign-in [post]
func (h *Handlers) HandleSignIn() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignInRequest
		if !DecodeJSON(w, r, &req) {
			return
		}

		resp, err := h.service.SignIn(r.Context(), req)
		if err != nil {
			WriteError(w, r, err)
			return
		}
		WriteJSON(w, http.StatusOK, resp)
	}
}

// Helper functions for reading and writing JSON.
// These helpers centralize request decoding and response writing.

// DecodeJSON decodes the request body into dst. On failure it writes a 400 response and
// returns false.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		WriteError(w, r, apperror.NewBadRequestError("invalid request body", err))
		return false
	}
	return true
}

// WriteJSON serializes data to JSON and writes it with the given status.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil { // Avoid writing nil, which can result in "null" response body
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Headers are already sent; nothing more can be done for the client.
			logging.Default().Error(context.Background(), "failed to encode response", "error", err)
		}
	}
}

// WriteError converts any error into the standard `{"message": ...}` body.
// Server-side failures are logged with their cause; the client sees a generic message.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := apperror.FromError(err)
	if appErr.IsServerError() {
		logging.FromContext(r.Context()).Error(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", appErr.Error(),
		)
	}
	WriteJSON(w, appErr.StatusCode(), appErr.ToResponse())
}
