package handler

import "github.com/campusauth/auth-api/internal/core/domain"

// --- Request types ---

// loginRequest deliberately has no validate tags: empty credentials must
// take the same soft-failure path as a wrong password, never a field-level
// 400 hint.
type loginRequest struct {
	// Username carries the email address; the field name is part of the
	// historical API contract.
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=2"`
}

// selfUpdateRequest has no role field: a role supplied in the body is
// silently dropped by Bind on this path.
type selfUpdateRequest struct {
	Username string `json:"username" validate:"omitempty,min=3"`
	Email    string `json:"email"    validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,min=2"`
}

type adminUpdateRequest struct {
	ID       string `json:"id"       validate:"required"`
	Username string `json:"username" validate:"omitempty,min=3"`
	Email    string `json:"email"    validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,min=2"`
	Role     string `json:"role"     validate:"omitempty,oneof=admin user"`
}

// --- Response types ---

type userResponse struct {
	Message string            `json:"message"`
	User    domain.UserOutput `json:"user"`
}

type loginResponse struct {
	Message string            `json:"message"`
	Token   string            `json:"token"`
	User    domain.UserOutput `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}
