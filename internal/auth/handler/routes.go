package handler

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the auth endpoints on the given router (normally the
// rate-limited /api group). smsLimiter is the stricter limiter applied only
// to code issuance.
func RegisterRoutes(router fiber.Router, h *AuthHandler, smsLimiter fiber.Handler) {
	auth := router.Group("/auth")

	auth.Post("/register", h.Register)
	auth.Post("/login", h.Login)
	auth.Post("/sms-login", h.SMSLogin)
	auth.Post("/send-sms-code", smsLimiter, h.SendSMSCode)
	auth.Post("/reset-password", h.ResetPassword)
	auth.Get("/check-authorization", h.CheckAuthorization)
	auth.Get("/sms-cooldown", h.SMSCooldown)

	requireAuth := RequireAuth(h.tokens)
	auth.Get("/me", requireAuth, h.Me)
	auth.Post("/logout", requireAuth, h.Logout)
}
