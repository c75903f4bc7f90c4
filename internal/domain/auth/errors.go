package auth

import "errors"

// Auth domain errors
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")

	// ErrUnauthenticated means no identity was available for an operation
	// that requires one. Callers redirect to login; never retried.
	ErrUnauthenticated = errors.New("no authenticated identity")
)
