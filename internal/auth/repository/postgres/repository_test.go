package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiangnanwaw/csfh-backend/internal/auth/domain"
	repo "github.com/jiangnanwaw/csfh-backend/internal/auth/repository/postgres"
)

var userColumns = []string{"id", "username", "email", "password_hash", "mobile_phone", "created_at", "updated_at"}

func TestGetByUsername(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, username").
			WithArgs("alice").
			WillReturnRows(pgxmock.NewRows(userColumns).
				AddRow("user-123", "alice", "a@x.com", "hash", "", time.Now(), time.Now()))

		user, err := r.GetByUsername(ctx, "alice")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "user-123", user.ID)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("not found returns nil, nil", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, username").
			WithArgs("ghost").
			WillReturnError(pgx.ErrNoRows)

		user, err := r.GetByUsername(ctx, "ghost")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByPhone(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)

	mock.ExpectQuery("SELECT id, username").
		WithArgs("13800000000").
		WillReturnRows(pgxmock.NewRows(userColumns).
			AddRow("user-456", "13800000000", "", "", "13800000000", time.Now(), time.Now()))

	user, err := r.GetByPhone(context.Background(), "13800000000")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "13800000000", user.MobilePhone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	now := time.Now()

	user := &domain.User{
		ID:           "user-123",
		Username:     "alice",
		Email:        "a@x.com",
		PasswordHash: "hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	mock.ExpectExec("INSERT INTO users").
		WithArgs(user.ID, user.Username, user.Email, user.PasswordHash, user.MobilePhone, user.CreatedAt, user.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, r.Create(context.Background(), user))
	assert.NoError(t, mock.ExpectationsWereMet())
}
