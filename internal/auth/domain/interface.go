package domain

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/jiangnanwaw/csfh-backend/internal/auth/domain UserRepository

import "context"

// UserRepository lookups return (nil, nil) when no row matches, so callers can
// keep "not found" indistinguishable from "wrong password" where that matters.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByPhone(ctx context.Context, phone string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, user *User) error
}

// SMSSender delivers an issued code to a phone. The development implementation
// only logs it.
type SMSSender interface {
	Send(ctx context.Context, phone, code string) error
}
