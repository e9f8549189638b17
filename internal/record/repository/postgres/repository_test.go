package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiangnanwaw/csfh-backend/internal/record/domain"
	repo "github.com/jiangnanwaw/csfh-backend/internal/record/repository/postgres"
)

var recordColumns = []string{"id", "username", "user_id", "method", "session_id", "phone", "ip_address", "device", "login_at", "logout_at"}

func TestInsert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)

	rec := &domain.LoginRecord{
		ID:        "rec-1",
		Username:  "alice",
		UserID:    "user-123",
		Method:    "web_form",
		SessionID: "session-123",
		IPAddress: "203.0.113.7",
		Device:    "Mozilla/5.0",
		LoginAt:   time.Now(),
	}

	mock.ExpectExec("INSERT INTO login_records").
		WithArgs(rec.ID, rec.Username, rec.UserID, rec.Method, rec.SessionID,
			rec.Phone, rec.IPAddress, rec.Device, rec.LoginAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, r.Insert(context.Background(), rec))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStampLogout(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	at := time.Now()

	mock.ExpectExec("UPDATE login_records").
		WithArgs(at, "rec-1", "session-123").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, r.StampLogout(context.Background(), "session-123", "rec-1", at))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByUsername(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	now := time.Now()

	mock.ExpectQuery("SELECT id, username").
		WithArgs("alice", 10).
		WillReturnRows(pgxmock.NewRows(recordColumns).
			AddRow("rec-2", "alice", "user-123", "sms", "s2", "", "203.0.113.7", "", now, nil).
			AddRow("rec-1", "alice", "user-123", "web_form", "s1", "", "203.0.113.7", "", now.Add(-time.Hour), nil))

	records, err := r.ListByUsername(context.Background(), "alice", 10)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "rec-2", records[0].ID)
	assert.Equal(t, "rec-1", records[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLastByUsername_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)

	mock.ExpectQuery("SELECT id, username").
		WithArgs("ghost").
		WillReturnError(pgx.ErrNoRows)

	rec, err := r.LastByUsername(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, rec)
	assert.NoError(t, mock.ExpectationsWereMet())
}
