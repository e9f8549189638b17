package handler

import (
	"math"

	"github.com/gofiber/fiber/v2"

	"github.com/jiangnanwaw/csfh-backend/config"
	"github.com/jiangnanwaw/csfh-backend/internal/auth/dto"
	"github.com/jiangnanwaw/csfh-backend/internal/auth/service"
	apperrors "github.com/jiangnanwaw/csfh-backend/internal/errors"
	"github.com/jiangnanwaw/csfh-backend/internal/httpx"
)

type AuthHandler struct {
	userService *service.UserService
	smsService  *service.SMSService
	tokens      service.TokenGenerator
	cfg         *config.Config
}

func NewAuthHandler(userService *service.UserService, smsService *service.SMSService, tokens service.TokenGenerator, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		smsService:  smsService,
		tokens:      tokens,
		cfg:         cfg,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return httpx.Fail(c, apperrors.ErrInvalidInput)
	}

	user, err := h.userService.Register(c.Context(), input)
	if err != nil {
		return httpx.Fail(c, err)
	}

	return httpx.Success(c, fiber.StatusCreated, fiber.Map{
		"user": dto.NewUserOutput(user),
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return httpx.Fail(c, apperrors.ErrInvalidInput)
	}

	// Capture metadata
	input.IPAddress = c.IP()
	input.UserAgent = string(c.Request().Header.UserAgent())

	data, err := h.userService.Login(c.Context(), input)
	if err != nil {
		return httpx.Fail(c, err)
	}

	return httpx.Success(c, fiber.StatusOK, data)
}

func (h *AuthHandler) SMSLogin(c *fiber.Ctx) error {
	var input dto.SMSLoginInput
	if err := c.BodyParser(&input); err != nil {
		return httpx.Fail(c, apperrors.ErrInvalidInput)
	}

	input.IPAddress = c.IP()
	input.UserAgent = string(c.Request().Header.UserAgent())

	data, err := h.userService.SMSLogin(c.Context(), input)
	if err != nil {
		return httpx.Fail(c, err)
	}

	return httpx.Success(c, fiber.StatusOK, data)
}

func (h *AuthHandler) SendSMSCode(c *fiber.Ctx) error {
	var input dto.SendCodeInput
	if err := c.BodyParser(&input); err != nil {
		return httpx.Fail(c, apperrors.ErrInvalidInput)
	}

	code, err := h.smsService.Issue(c.Context(), input.Phone)
	if err != nil {
		return httpx.Fail(c, err)
	}

	data := dto.SendCodeData{Phone: code.Phone}
	if !h.cfg.IsProduction() {
		data.Code = code.Code
	}

	return httpx.Success(c, fiber.StatusOK, data)
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var input dto.ResetPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return httpx.Fail(c, apperrors.ErrInvalidInput)
	}

	// Always accepted, whether or not the email exists.
	h.userService.ResetPassword(c.Context(), input.Email)

	return httpx.Success(c, fiber.StatusOK, nil)
}

// CheckAuthorization reports whether the presented token (if any) is valid.
// It never errors.
func (h *AuthHandler) CheckAuthorization(c *fiber.Ctx) error {
	authorized := false
	if token := bearerToken(c); token != "" {
		if _, err := h.tokens.Verify(token); err == nil {
			authorized = true
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"authorized": authorized})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	claims := ClaimsFromCtx(c)
	if claims == nil {
		return httpx.Fail(c, apperrors.ErrUnauthorized)
	}

	user, err := h.userService.CurrentUser(c.Context(), claims.UserID)
	if err != nil {
		return httpx.Fail(c, err)
	}

	return httpx.Success(c, fiber.StatusOK, fiber.Map{
		"user": dto.NewUserOutput(user),
	})
}

// Logout acknowledges the end of a session. Tokens are self-describing, so
// there is nothing to revoke server-side; the client clears its own state.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return httpx.Success(c, fiber.StatusOK, nil)
}

// SMSCooldown exposes the remaining resend wait for a phone, for the UI's
// countdown button.
func (h *AuthHandler) SMSCooldown(c *fiber.Ctx) error {
	phone := c.Query("phone")
	if phone == "" {
		return httpx.Fail(c, apperrors.ErrInvalidInput)
	}

	remaining := h.smsService.CooldownRemaining(phone)

	return httpx.Success(c, fiber.StatusOK, fiber.Map{
		"remainingSeconds": int(math.Ceil(remaining.Seconds())),
	})
}
