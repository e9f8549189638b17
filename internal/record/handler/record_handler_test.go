package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiangnanwaw/csfh-backend/internal/logging"
	"github.com/jiangnanwaw/csfh-backend/internal/mocks"
	"github.com/jiangnanwaw/csfh-backend/internal/record/domain"
	"github.com/jiangnanwaw/csfh-backend/internal/record/handler"
	"github.com/jiangnanwaw/csfh-backend/internal/record/service"
)

func quietLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func passthrough(c *fiber.Ctx) error { return c.Next() }

func newTestApp(t *testing.T, mockRepo *mocks.MockRecordRepository) *fiber.App {
	t.Helper()

	recorder := service.NewRecorder(mockRepo, quietLogger())
	h := handler.NewRecordHandler(recorder)

	app := fiber.New()
	handler.RegisterRoutes(app, h, passthrough)

	return app
}

type env struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func TestRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRecordRepository(ctrl)
	app := newTestApp(t, mockRepo)

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		body, _ := json.Marshal(fiber.Map{
			"username":    "alice",
			"loginMethod": "web_form",
			"additionalData": fiber.Map{
				"userId":    "user-123",
				"sessionId": "session-123",
			},
		})
		req := httptest.NewRequest("POST", "/login-records/record", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		var e env
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&e))
		require.True(t, e.Success)

		var data struct {
			ID string `json:"id"`
		}
		require.NoError(t, json.Unmarshal(e.Data, &data))
		assert.NotEmpty(t, data.ID)
	})

	t.Run("write failure reported with audit code", func(t *testing.T) {
		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))

		body, _ := json.Marshal(fiber.Map{"username": "alice", "loginMethod": "web_form"})
		req := httptest.NewRequest("POST", "/login-records/record", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

		var e env
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&e))
		require.NotNil(t, e.Error)
		assert.Equal(t, "AUDIT_WRITE_FAILED", e.Error.Code)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		body, _ := json.Marshal(fiber.Map{"loginMethod": "web_form"})
		req := httptest.NewRequest("POST", "/login-records/record", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestLogoutAlwaysSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRecordRepository(ctrl)
	app := newTestApp(t, mockRepo)

	mockRepo.EXPECT().StampLogout(gomock.Any(), "session-123", "rec-1", gomock.Any()).
		Return(errors.New("update failed"))

	body, _ := json.Marshal(fiber.Map{"sessionId": "session-123", "recordId": "rec-1"})
	req := httptest.NewRequest("POST", "/login-records/logout", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRecordRepository(ctrl)
	app := newTestApp(t, mockRepo)

	now := time.Now()
	mockRepo.EXPECT().ListByUsername(gomock.Any(), "alice", 5).
		Return([]domain.LoginRecord{
			{ID: "rec-2", Username: "alice", Method: "sms", LoginAt: now},
			{ID: "rec-1", Username: "alice", Method: "web_form", LoginAt: now.Add(-time.Hour)},
		}, nil)

	req := httptest.NewRequest("GET", "/login-records/history?username=alice&limit=5", nil)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var e env
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&e))
	require.True(t, e.Success)

	var entries []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(e.Data, &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "rec-2", entries[0].ID)
}

func TestLast(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRecordRepository(ctrl)
	app := newTestApp(t, mockRepo)

	t.Run("entry", func(t *testing.T) {
		mockRepo.EXPECT().LastByUsername(gomock.Any(), "alice").
			Return(&domain.LoginRecord{ID: "rec-9", Username: "alice", LoginAt: time.Now()}, nil)

		req := httptest.NewRequest("GET", "/login-records/last?username=alice", nil)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("none yields null data", func(t *testing.T) {
		mockRepo.EXPECT().LastByUsername(gomock.Any(), "ghost").Return(nil, nil)

		req := httptest.NewRequest("GET", "/login-records/last?username=ghost", nil)

		resp, err := app.Test(req)
		require.NoError(t, err)

		var e env
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&e))
		assert.True(t, e.Success)
		assert.Equal(t, "null", string(e.Data))
	})
}
