package domain

import (
	"context"
	"time"
)

// LoginRecord is one append-only audit entry. Retention is not this service's
// concern; nothing here ever deletes a record.
type LoginRecord struct {
	ID        string
	Username  string
	UserID    string
	Method    string
	SessionID string
	Phone     string
	IPAddress string
	Device    string
	LoginAt   time.Time
	LogoutAt  *time.Time
}

type Repository interface {
	Insert(ctx context.Context, rec *LoginRecord) error
	StampLogout(ctx context.Context, sessionID, recordID string, at time.Time) error
	ListByUsername(ctx context.Context, username string, limit int) ([]LoginRecord, error)
	LastByUsername(ctx context.Context, username string) (*LoginRecord, error)
}
