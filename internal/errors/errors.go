// Package errors defines the error vocabulary shared by services, handlers
// and the API client. Every error carries a stable machine code plus the HTTP
// status it maps to at the boundary.
package errors

import "fmt"

type AppError struct {
	Code       string
	Message    string
	Status     int
	RetryAfter int // seconds, set only on throttle errors
}

func (e *AppError) Error() string {
	return e.Message
}

// Is matches by code so that errors.Is works against the sentinel values even
// for instances built by the constructors below.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

var (
	ErrInvalidInput       = &AppError{Code: "INVALID_INPUT", Message: "invalid input", Status: 400}
	ErrInvalidPhoneFormat = &AppError{Code: "INVALID_PHONE_FORMAT", Message: "invalid mobile phone format", Status: 400}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "invalid username or password", Status: 401}
	ErrInvalidCode        = &AppError{Code: "INVALID_CODE", Message: "invalid verification code", Status: 401}
	ErrCodeExpired        = &AppError{Code: "CODE_EXPIRED", Message: "verification code expired", Status: 401}
	ErrUsernameTaken      = &AppError{Code: "USERNAME_TAKEN", Message: "username already exists", Status: 409}
	ErrEmailTaken         = &AppError{Code: "EMAIL_TAKEN", Message: "email already registered", Status: 409}
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "missing or invalid token", Status: 401}
	ErrForbidden          = &AppError{Code: "FORBIDDEN", Message: "access to this resource is denied", Status: 403}
	ErrRateLimited        = &AppError{Code: "RATE_LIMITED", Message: "too many requests, try again later", Status: 429}
	ErrCooldownActive     = &AppError{Code: "SMS_COOLDOWN_ACTIVE", Message: "a code was sent recently, wait before requesting another", Status: 429}
	ErrAuditWriteFailed   = &AppError{Code: "AUDIT_WRITE_FAILED", Message: "failed to write login record", Status: 500}
	ErrServerUnreachable  = &AppError{Code: "SERVER_UNREACHABLE", Message: "cannot reach the server", Status: 0}
	ErrInternal           = &AppError{Code: "INTERNAL_ERROR", Message: "internal server error", Status: 500}
)

// RateLimited returns a rate-limit denial with a retry hint.
func RateLimited(retryAfterSec int) *AppError {
	return &AppError{
		Code:       ErrRateLimited.Code,
		Message:    ErrRateLimited.Message,
		Status:     ErrRateLimited.Status,
		RetryAfter: retryAfterSec,
	}
}

// CooldownActive returns a per-phone cooldown denial with the seconds left.
func CooldownActive(secondsRemaining int) *AppError {
	return &AppError{
		Code:       ErrCooldownActive.Code,
		Message:    fmt.Sprintf("a code was sent recently, retry in %ds", secondsRemaining),
		Status:     ErrCooldownActive.Status,
		RetryAfter: secondsRemaining,
	}
}
