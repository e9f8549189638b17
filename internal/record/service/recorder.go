// Package service implements the login-history recorder. Writes here are
// best-effort relative to the authentication flow that triggers them: a
// failed audit write is logged, never propagated into a login response.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jiangnanwaw/csfh-backend/internal/logging"
	"github.com/jiangnanwaw/csfh-backend/internal/record/domain"
	"github.com/jiangnanwaw/csfh-backend/pkg/constant"
)

type RecordInput struct {
	Username  string
	Method    string
	UserID    string
	SessionID string
	Phone     string
	IPAddress string
	Device    string
}

type Recorder struct {
	repo   domain.Repository
	logger logging.Logger
}

func NewRecorder(repo domain.Repository, logger logging.Logger) *Recorder {
	return &Recorder{repo: repo, logger: logger}
}

// Record appends one history entry and returns its id.
func (r *Recorder) Record(ctx context.Context, input RecordInput) (string, error) {
	rec := &domain.LoginRecord{
		ID:        uuid.New().String(),
		Username:  input.Username,
		UserID:    input.UserID,
		Method:    input.Method,
		SessionID: input.SessionID,
		Phone:     input.Phone,
		IPAddress: input.IPAddress,
		Device:    input.Device,
		LoginAt:   time.Now().UTC(),
	}

	if err := r.repo.Insert(ctx, rec); err != nil {
		r.logger.Warn(ctx, "failed to write login record",
			"username", input.Username, "error", err)
		return "", err
	}

	return rec.ID, nil
}

// RecordLogout stamps the logout time on an earlier entry. Failures are
// swallowed after logging; logout must not fail over bookkeeping.
func (r *Recorder) RecordLogout(ctx context.Context, sessionID, recordID string) {
	err := r.repo.StampLogout(ctx, sessionID, recordID, time.Now().UTC())
	if err != nil {
		r.logger.Warn(ctx, "failed to stamp logout",
			"session_id", sessionID, "record_id", recordID, "error", err)
	}
}

// History lists a user's entries, most recent first.
func (r *Recorder) History(ctx context.Context, username string, limit int) ([]domain.LoginRecord, error) {
	if limit <= 0 {
		limit = constant.DefaultHistoryLimit
	}
	return r.repo.ListByUsername(ctx, username, limit)
}

// Last returns the user's latest entry, or nil when none exists.
func (r *Recorder) Last(ctx context.Context, username string) (*domain.LoginRecord, error) {
	return r.repo.LastByUsername(ctx, username)
}
