package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/jiangnanwaw/csfh-backend/internal/errors"
	"github.com/jiangnanwaw/csfh-backend/internal/httpx"
	"github.com/jiangnanwaw/csfh-backend/internal/record/domain"
	"github.com/jiangnanwaw/csfh-backend/internal/record/service"
)

type RecordHandler struct {
	recorder *service.Recorder
}

func NewRecordHandler(recorder *service.Recorder) *RecordHandler {
	return &RecordHandler{recorder: recorder}
}

type recordInput struct {
	Username       string `json:"username"`
	LoginMethod    string `json:"loginMethod"`
	AdditionalData struct {
		UserID    string `json:"userId"`
		SessionID string `json:"sessionId"`
		Phone     string `json:"phone"`
	} `json:"additionalData"`
}

type logoutInput struct {
	SessionID string `json:"sessionId"`
	RecordID  string `json:"recordId"`
}

type recordOutput struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Method    string     `json:"loginMethod"`
	SessionID string     `json:"sessionId,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	IPAddress string     `json:"ipAddress,omitempty"`
	Device    string     `json:"device,omitempty"`
	LoginAt   time.Time  `json:"loginTime"`
	LogoutAt  *time.Time `json:"logoutTime,omitempty"`
}

func newRecordOutput(rec *domain.LoginRecord) recordOutput {
	return recordOutput{
		ID:        rec.ID,
		Username:  rec.Username,
		Method:    rec.Method,
		SessionID: rec.SessionID,
		Phone:     rec.Phone,
		IPAddress: rec.IPAddress,
		Device:    rec.Device,
		LoginAt:   rec.LoginAt,
		LogoutAt:  rec.LogoutAt,
	}
}

func (h *RecordHandler) Record(c *fiber.Ctx) error {
	var input recordInput
	if err := c.BodyParser(&input); err != nil {
		return httpx.Fail(c, apperrors.ErrInvalidInput)
	}
	if input.Username == "" || input.LoginMethod == "" {
		return httpx.Fail(c, apperrors.ErrInvalidInput)
	}

	id, err := h.recorder.Record(c.Context(), service.RecordInput{
		Username:  input.Username,
		Method:    input.LoginMethod,
		UserID:    input.AdditionalData.UserID,
		SessionID: input.AdditionalData.SessionID,
		Phone:     input.AdditionalData.Phone,
		IPAddress: c.IP(),
		Device:    string(c.Request().Header.UserAgent()),
	})
	if err != nil {
		return httpx.Fail(c, apperrors.ErrAuditWriteFailed)
	}

	return httpx.Success(c, fiber.StatusCreated, fiber.Map{"id": id})
}

// Logout stamps the logout time; it always reports success because audit
// bookkeeping must never fail a logout.
func (h *RecordHandler) Logout(c *fiber.Ctx) error {
	var input logoutInput
	if err := c.BodyParser(&input); err != nil {
		return httpx.Fail(c, apperrors.ErrInvalidInput)
	}

	h.recorder.RecordLogout(c.Context(), input.SessionID, input.RecordID)

	return httpx.Success(c, fiber.StatusOK, nil)
}

func (h *RecordHandler) History(c *fiber.Ctx) error {
	username := c.Query("username")
	if username == "" {
		return httpx.Fail(c, apperrors.ErrInvalidInput)
	}
	limit := c.QueryInt("limit")

	records, err := h.recorder.History(c.Context(), username, limit)
	if err != nil {
		return httpx.Fail(c, err)
	}

	out := make([]recordOutput, 0, len(records))
	for i := range records {
		out = append(out, newRecordOutput(&records[i]))
	}

	return httpx.Success(c, fiber.StatusOK, out)
}

func (h *RecordHandler) Last(c *fiber.Ctx) error {
	username := c.Query("username")
	if username == "" {
		return httpx.Fail(c, apperrors.ErrInvalidInput)
	}

	rec, err := h.recorder.Last(c.Context(), username)
	if err != nil {
		return httpx.Fail(c, err)
	}
	if rec == nil {
		return httpx.Success(c, fiber.StatusOK, nil)
	}

	return httpx.Success(c, fiber.StatusOK, newRecordOutput(rec))
}

// RegisterRoutes mounts the login-record endpoints. Writes require a bearer
// token; history reads are left open like the original surface.
func RegisterRoutes(router fiber.Router, h *RecordHandler, requireAuth fiber.Handler) {
	g := router.Group("/login-records")
	g.Post("/record", requireAuth, h.Record)
	g.Post("/logout", requireAuth, h.Logout)
	g.Get("/history", h.History)
	g.Get("/last", h.Last)
}
