package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/duynhne/exam-service/internal/core/domain"
)

// PgxUserRepository implements domain.UserRepository using pgx.
type PgxUserRepository struct {
	db DBTX
}

// NewUserRepository creates a new PgxUserRepository.
func NewUserRepository(db DBTX) *PgxUserRepository {
	return &PgxUserRepository{db: db}
}

// Create inserts a new user and fills in the generated id and timestamps.
// Uniqueness of username and email is enforced by the database.
func (r *PgxUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `INSERT INTO users (username, email, password_hash, role) VALUES ($1, $2, $3, $4) RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query, user.Username, user.Email, user.PasswordHash, user.Role.String()).Scan(
		&user.ID, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return user, nil
}

// GetByEmail returns the user matching the given email.
func (r *PgxUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, username, email, password_hash, role, created_at, updated_at FROM users WHERE email = $1`

	var (
		user domain.User
		role string
	)
	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash, &role, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query user: %w", err)
	}

	if user.Role, err = domain.ParseRole(role); err != nil {
		return nil, fmt.Errorf("user %d: %w", user.ID, err)
	}

	return &user, nil
}
