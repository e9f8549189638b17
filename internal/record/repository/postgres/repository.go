package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jiangnanwaw/csfh-backend/internal/record/domain"
)

type DBTX interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type PostgresRepository struct {
	db DBTX
}

func NewPostgresRepository(db DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const recordColumns = `id, username, user_id, method, session_id, phone, ip_address, device, login_at, logout_at`

func (r *PostgresRepository) Insert(ctx context.Context, rec *domain.LoginRecord) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO login_records (id, username, user_id, method, session_id, phone, ip_address, device, login_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, rec.ID, rec.Username, rec.UserID, rec.Method, rec.SessionID, rec.Phone, rec.IPAddress, rec.Device, rec.LoginAt)
	if err != nil {
		return fmt.Errorf("failed to insert login record: %w", err)
	}

	return nil
}

func (r *PostgresRepository) StampLogout(ctx context.Context, sessionID, recordID string, at time.Time) error {
	_, err := r.db.Exec(ctx, `
		UPDATE login_records
		SET logout_at = $1
		WHERE id = $2 OR session_id = $3
	`, at, recordID, sessionID)
	if err != nil {
		return fmt.Errorf("failed to stamp logout: %w", err)
	}

	return nil
}

func (r *PostgresRepository) ListByUsername(ctx context.Context, username string, limit int) ([]domain.LoginRecord, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+recordColumns+`
		FROM login_records
		WHERE username = $1
		ORDER BY login_at DESC
		LIMIT $2;
	`, username, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list login records: %w", err)
	}
	defer rows.Close()

	var records []domain.LoginRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}

	return records, rows.Err()
}

func (r *PostgresRepository) LastByUsername(ctx context.Context, username string) (*domain.LoginRecord, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+recordColumns+`
		FROM login_records
		WHERE username = $1
		ORDER BY login_at DESC
		LIMIT 1;
	`, username)

	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return rec, nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanRecord(row scannable) (*domain.LoginRecord, error) {
	var rec domain.LoginRecord
	err := row.Scan(&rec.ID, &rec.Username, &rec.UserID, &rec.Method, &rec.SessionID,
		&rec.Phone, &rec.IPAddress, &rec.Device, &rec.LoginAt, &rec.LogoutAt)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
