package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/jiangnanwaw/csfh-backend/internal/auth/service TokenGenerator

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/jiangnanwaw/csfh-backend/internal/auth/domain"
)

type TokenGenerator interface {
	Generate(userID, username, method string) (*domain.Session, error)
	Verify(tokenString string) (*SessionClaims, error)
}

// TokenService mints and validates the opaque bearer credential. Sessions are
// self-describing signed tokens; the server keeps no session table.
type TokenService struct {
	secret []byte
	expiry time.Duration
}

type SessionClaims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	SessionID string `json:"session_id"`
	Method    string `json:"login_method"`
}

func NewTokenService(secret string, expiryMinutes int) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		expiry: time.Duration(expiryMinutes) * time.Minute,
	}
}

func (ts *TokenService) Generate(userID, username, method string) (*domain.Session, error) {
	now := time.Now()
	sessionID := uuid.New().String()

	claims := SessionClaims{
		UserID:    userID,
		Username:  username,
		SessionID: sessionID,
		Method:    method,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ts.secret)
	if err != nil {
		return nil, err
	}

	return &domain.Session{
		Token:     token,
		SessionID: sessionID,
		UserID:    userID,
		Method:    method,
		IssuedAt:  now,
		ExpiresAt: now.Add(ts.expiry),
	}, nil
}

// Verify parses and validates the given token string.
func (ts *TokenService) Verify(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return ts.secret, nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
