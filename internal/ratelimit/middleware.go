package ratelimit

import (
	"math"
	"time"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/jiangnanwaw/csfh-backend/internal/errors"
	"github.com/jiangnanwaw/csfh-backend/internal/httpx"
)

// Middleware rejects requests over the limit with 429 and a Retry-After hint.
// Clients are identified by network address.
func Middleware(l *Limiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res := l.Allow(c.IP(), time.Now())
		if res.Allowed {
			return c.Next()
		}

		retryAfter := int(math.Ceil(res.RetryAfter.Seconds()))

		return httpx.Fail(c, apperrors.RateLimited(retryAfter))
	}
}
