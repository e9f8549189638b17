package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiangnanwaw/csfh-backend/internal/logging"
	"github.com/jiangnanwaw/csfh-backend/internal/mocks"
	"github.com/jiangnanwaw/csfh-backend/internal/record/domain"
	"github.com/jiangnanwaw/csfh-backend/internal/record/service"
	"github.com/jiangnanwaw/csfh-backend/pkg/constant"
)

func quietLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRecorder_Record(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRecordRepository(ctrl)
	r := service.NewRecorder(mockRepo, quietLogger())

	var inserted *domain.LoginRecord
	mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *domain.LoginRecord) error {
			inserted = rec
			return nil
		})

	id, err := r.Record(context.Background(), service.RecordInput{
		Username:  "alice",
		Method:    constant.LoginMethodPassword,
		UserID:    "user-123",
		SessionID: "session-123",
		IPAddress: "203.0.113.7",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, id)
	require.NotNil(t, inserted)
	assert.Equal(t, id, inserted.ID)
	assert.Equal(t, "alice", inserted.Username)
	assert.Equal(t, "session-123", inserted.SessionID)
	assert.False(t, inserted.LoginAt.IsZero())
	assert.Nil(t, inserted.LogoutAt)
}

func TestRecorder_RecordSurfacesRepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRecordRepository(ctrl)
	r := service.NewRecorder(mockRepo, quietLogger())

	mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))

	id, err := r.Record(context.Background(), service.RecordInput{
		Username: "alice",
		Method:   constant.LoginMethodPassword,
	})

	assert.Error(t, err)
	assert.Empty(t, id)
}

// RecordLogout swallows repository failures; logout bookkeeping is best
// effort.
func TestRecorder_RecordLogoutSwallowsErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRecordRepository(ctrl)
	r := service.NewRecorder(mockRepo, quietLogger())

	mockRepo.EXPECT().StampLogout(gomock.Any(), "session-123", "rec-1", gomock.Any()).
		Return(errors.New("update failed"))

	r.RecordLogout(context.Background(), "session-123", "rec-1")
}

func TestRecorder_HistoryDefaultsLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRecordRepository(ctrl)
	r := service.NewRecorder(mockRepo, quietLogger())

	now := time.Now()
	records := []domain.LoginRecord{
		{ID: "rec-2", Username: "alice", LoginAt: now},
		{ID: "rec-1", Username: "alice", LoginAt: now.Add(-time.Hour)},
	}

	mockRepo.EXPECT().ListByUsername(gomock.Any(), "alice", constant.DefaultHistoryLimit).
		Return(records, nil)

	got, err := r.History(context.Background(), "alice", 0)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "rec-2", got[0].ID)
	assert.True(t, got[0].LoginAt.After(got[1].LoginAt))
}

func TestRecorder_LastNone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRecordRepository(ctrl)
	r := service.NewRecorder(mockRepo, quietLogger())

	mockRepo.EXPECT().LastByUsername(gomock.Any(), "ghost").Return(nil, nil)

	rec, err := r.Last(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, rec)
}
