package user

import (
	"time"
)

// Role distinguishes the admin fleet-wide dashboard from the personal one.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

type User struct {
	ID           string
	FullName     string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}
