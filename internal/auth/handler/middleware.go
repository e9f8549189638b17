package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jiangnanwaw/csfh-backend/internal/auth/service"
	apperrors "github.com/jiangnanwaw/csfh-backend/internal/errors"
	"github.com/jiangnanwaw/csfh-backend/internal/httpx"
	"github.com/jiangnanwaw/csfh-backend/pkg/constant"
)

const claimsKey = "session_claims"

// RequireAuth rejects requests without a valid bearer token and stores the
// verified claims on the request context.
func RequireAuth(tokens service.TokenGenerator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return httpx.Fail(c, apperrors.ErrUnauthorized)
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			return httpx.Fail(c, apperrors.ErrUnauthorized)
		}

		c.Locals(claimsKey, claims)

		return c.Next()
	}
}

// ClaimsFromCtx returns the verified claims stored by RequireAuth, or nil.
func ClaimsFromCtx(c *fiber.Ctx) *service.SessionClaims {
	claims, _ := c.Locals(claimsKey).(*service.SessionClaims)
	return claims
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return ""
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, constant.BearerScheme) {
		return ""
	}

	return strings.TrimSpace(token)
}
