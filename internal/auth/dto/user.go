package dto

import (
	"time"

	"github.com/jiangnanwaw/csfh-backend/internal/auth/domain"
)

type UserOutput struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email,omitempty"`
	MobilePhone string    `json:"mobilePhone,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func NewUserOutput(u *domain.User) UserOutput {
	return UserOutput{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		MobilePhone: u.MobilePhone,
		CreatedAt:   u.CreatedAt,
	}
}

// LoginData is the success payload of both login paths.
type LoginData struct {
	Token     string     `json:"token"`
	User      UserOutput `json:"user"`
	SessionID string     `json:"sessionId"`
	ExpiresAt time.Time  `json:"expiresAt"`
}

type SendCodeData struct {
	Phone string `json:"phone"`
	// Code is echoed only outside production so the front end can show it
	// during development.
	Code string `json:"code,omitempty"`
}
