package auth

import (
	"context"
)

// AuthService defines registration and session issuing. The attendance
// core never calls this; it only ever sees the employee id the handlers
// extract from a verified token.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (AuthResponse, error)
	Refresh(ctx context.Context, req RefreshRequest) (TokenResponse, error)
}
