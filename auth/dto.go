// Package auth, as part of the authentication module.
// This file, `dto.go`, defines Data Transfer Objects (DTOs) for the /auth endpoints.
// DTOs describe the shape of request and response bodies; the `validate` tags are
// enforced by the validation package.
package auth

// SignUpRequest defines the structure for a user registration request.
type SignUpRequest struct {
	Name     string `json:"name" validate:"required,min=2" example:"Jane Doe"`
	Email    string `json:"email" validate:"required,email" example:"jane@example.com"`
	Password string `json:"password" validate:"required,min=8" example:"correct-horse"`
}

// SignInRequest defines the structure for a user login request.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email" example:"jane@example.com"`
	Password string `json:"password" validate:"required,min=8" example:"correct-horse"`
}

// MessageResponse is a body carrying only a human-readable message.
type MessageResponse struct {
	Message string `json:"message" example:"User creation successful."`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID    string `json:"id" example:"6f1c2b1e-4a8b-4b6e-9d9a-3f1f7c1b2a10"`
	Name  string `json:"name" example:"Jane Doe"`
	Email string `json:"email" example:"jane@example.com"`
}

// SignInResponse is returned after a successful sign-in.
type SignInResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
