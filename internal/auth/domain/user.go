package domain

import "time"

type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	MobilePhone  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Session is the server-side view of a minted credential. It exists only in
// signed form (the token) once handed to a client.
type Session struct {
	Token     string
	SessionID string
	UserID    string
	Method    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// OneTimeCode is a short-lived, single-use code bound to a phone number.
// At most one unconsumed, unexpired code exists per phone at any instant.
type OneTimeCode struct {
	Phone     string
	Code      string
	CreatedAt time.Time
	ExpiresAt time.Time
	Consumed  bool
}
