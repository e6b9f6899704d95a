package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duynhne/exam-service/internal/core/domain"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestUserRepository_Create(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("alice", "a@x.com", "hash", "user").
		WillReturnRows(mock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(7), now, now))

	u, err := repo.Create(context.Background(), &domain.User{
		Username: "alice", Email: "a@x.com", PasswordHash: "hash", Role: domain.RoleUser,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), u.ID)
	assert.Equal(t, now, u.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_Duplicate(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("alice", "a@x.com", "hash", "admin").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.Create(context.Background(), &domain.User{
		Username: "alice", Email: "a@x.com", PasswordHash: "hash", Role: domain.RoleAdmin,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_OtherError(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)
	boom := errors.New("connection reset")

	mock.ExpectQuery(`INSERT INTO users`).WillReturnError(boom)

	_, err := repo.Create(context.Background(), &domain.User{Username: "bob", Role: domain.RoleUser})
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, domain.ErrDuplicate)
}

func TestUserRepository_GetByEmail(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)
	now := time.Now()
	cols := []string{"id", "username", "email", "password_hash", "role", "created_at", "updated_at"}

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE email = \$1`).
		WithArgs("a@x.com").
		WillReturnRows(mock.NewRows(cols).AddRow(int64(1), "alice", "a@x.com", "hash", "admin", now, now))

	u, err := repo.GetByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, "hash", u.PasswordHash)
	assert.Equal(t, domain.RoleAdmin, u.Role)
}

func TestUserRepository_GetByEmail_NotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery(`SELECT (.+) FROM users`).
		WithArgs("nobody@x.com").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "nobody@x.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserRepository_GetByEmail_UnknownRole(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)
	now := time.Now()
	cols := []string{"id", "username", "email", "password_hash", "role", "created_at", "updated_at"}

	mock.ExpectQuery(`SELECT (.+) FROM users`).
		WillReturnRows(mock.NewRows(cols).AddRow(int64(1), "alice", "a@x.com", "hash", "root", now, now))

	_, err := repo.GetByEmail(context.Background(), "a@x.com")
	assert.Error(t, err)
}
