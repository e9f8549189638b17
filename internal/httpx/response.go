// Package httpx builds the JSON response envelope used by every handler:
// {success:true, data:...} on success, {success:false, error:{code,message}}
// on failure.
package httpx

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/jiangnanwaw/csfh-backend/internal/errors"
)

// devMode controls whether unexpected errors leak their detail into the
// response. Set once at startup.
var devMode bool

func SetDevMode(on bool) {
	devMode = on
}

func Success(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// Fail maps an error to the envelope. Anything that is not an AppError comes
// out as a generic 500 so internals never leak in production.
func Fail(c *fiber.Ctx, err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Status != 0 {
		errObj := fiber.Map{
			"code":    appErr.Code,
			"message": appErr.Message,
		}
		if appErr.RetryAfter > 0 {
			errObj["retryAfter"] = appErr.RetryAfter
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(appErr.RetryAfter))
		}

		return c.Status(appErr.Status).JSON(fiber.Map{
			"success": false,
			"error":   errObj,
		})
	}

	errObj := fiber.Map{
		"code":    apperrors.ErrInternal.Code,
		"message": apperrors.ErrInternal.Message,
	}
	if devMode && err != nil {
		errObj["detail"] = err.Error()
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"error":   errObj,
	})
}
