package http

import (
	"context"

	"github.com/go-chi/jwtauth/v5"
	"github.com/staffpulse/attendance-backend-go/internal/domain/auth"
	"github.com/staffpulse/attendance-backend-go/internal/domain/user"
)

// identity is the caller extracted from a verified access token. Handlers
// resolve it once and pass the id into services explicitly; services never
// look at the session themselves.
type identity struct {
	UserID string
	Role   user.Role
}

func (i identity) IsAdmin() bool {
	return i.Role == user.RoleAdmin
}

func identityFromContext(ctx context.Context) (identity, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return identity{}, auth.ErrUnauthenticated
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return identity{}, auth.ErrUnauthenticated
	}

	role, _ := claims["role"].(string)
	return identity{UserID: userID, Role: user.Role(role)}, nil
}
