package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/staffpulse/attendance-backend-go/internal/domain/user"
	"github.com/staffpulse/attendance-backend-go/internal/pkg/database"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepository{db: db}
}

// Create implements user.UserRepository.
func (r *userRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	query := `
		INSERT INTO users (id, full_name, email, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING created_at
	`

	u.ID = uuid.NewString()
	err := r.db.QueryRow(ctx, query, u.ID, u.FullName, u.Email, u.PasswordHash, u.Role).Scan(&u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.User{}, user.ErrEmailExists
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return u, nil
}

// GetByEmail implements user.UserRepository.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	query := `
		SELECT id, full_name, email, password_hash, role, created_at
		FROM users
		WHERE email = $1
	`
	return r.get(ctx, query, email)
}

// GetByID implements user.UserRepository.
func (r *userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	query := `
		SELECT id, full_name, email, password_hash, role, created_at
		FROM users
		WHERE id = $1
	`
	return r.get(ctx, query, id)
}

func (r *userRepository) get(ctx context.Context, query string, arg interface{}) (user.User, error) {
	var u user.User
	err := r.db.QueryRow(ctx, query, arg).Scan(&u.ID, &u.FullName, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}
