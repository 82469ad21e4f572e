package domain

import "errors"

var (
	// ErrUserNotFound is returned when no user matches the given id or email.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when a create or update collides with the
	// unique email index.
	ErrEmailTaken = errors.New("email already in use")
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// that login failures never reveal which part was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrInvalidToken covers missing, malformed, expired, and badly signed
	// tokens alike.
	ErrInvalidToken = errors.New("invalid token")
	// ErrUnauthorized is returned when an authenticated identity lacks the
	// role required for the operation.
	ErrUnauthorized = errors.New("unauthorized")
)
