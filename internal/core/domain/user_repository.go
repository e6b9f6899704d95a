package domain

import "context"

// UserRepository defines the data-access contract for user records.
// Implementations live in internal/core/repository (Core layer).
// The Logic layer depends on this interface only, never on SQL or pgx directly.
type UserRepository interface {
	// Create inserts the user and fills in ID and timestamps.
	// Returns ErrDuplicate when the username or email is already taken.
	Create(ctx context.Context, user *User) (*User, error)

	// GetByEmail returns the user with the given email, including its
	// password hash. Returns ErrNotFound when no user matches.
	GetByEmail(ctx context.Context, email string) (*User, error)
}
