package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jiangnanwaw/csfh-backend/internal/auth/domain"
	"github.com/jiangnanwaw/csfh-backend/internal/auth/dto"
	apperrors "github.com/jiangnanwaw/csfh-backend/internal/errors"
	"github.com/jiangnanwaw/csfh-backend/internal/logging"
	"github.com/jiangnanwaw/csfh-backend/pkg/constant"
)

// dummyHash keeps the missing-user path doing the same bcrypt work as the
// wrong-password path, so the two stay indistinguishable to callers.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

type UserService struct {
	repo   domain.UserRepository
	tokens TokenGenerator
	codes  CodeVerifier
	logger logging.Logger
}

func NewUserService(repo domain.UserRepository, tokens TokenGenerator, codes CodeVerifier, logger logging.Logger) *UserService {
	return &UserService{
		repo:   repo,
		tokens: tokens,
		codes:  codes,
		logger: logger,
	}
}

func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*domain.User, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)

	if username == "" || email == "" || input.Password == "" {
		return nil, apperrors.ErrInvalidInput
	}

	existing, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrUsernameTaken
	}

	existing, err = s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := nowUTC()

	user := &domain.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "user registered", "username", username)

	return user, nil
}

// Login authenticates a username/password pair. A missing user and a wrong
// password return the same error so usernames cannot be enumerated.
func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.LoginData, error) {
	if input.Username == "" || input.Password == "" {
		return nil, apperrors.ErrInvalidInput
	}

	user, err := s.repo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}

	hash := dummyHash
	if user != nil {
		hash = []byte(user.PasswordHash)
	}

	if bcrypt.CompareHashAndPassword(hash, []byte(input.Password)) != nil || user == nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.mintSession(ctx, user, constant.LoginMethodPassword)
}

// SMSLogin authenticates a phone/code pair. The first successful SMS login
// for an unknown phone provisions a user bound to it.
func (s *UserService) SMSLogin(ctx context.Context, input dto.SMSLoginInput) (*dto.LoginData, error) {
	if input.Phone == "" || input.Code == "" {
		return nil, apperrors.ErrInvalidInput
	}

	if err := s.codes.Verify(ctx, input.Phone, input.Code); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByPhone(ctx, input.Phone)
	if err != nil {
		return nil, err
	}

	if user == nil {
		user, err = s.provisionPhoneUser(ctx, input.Phone)
		if err != nil {
			return nil, err
		}
	}

	return s.mintSession(ctx, user, constant.LoginMethodSMS)
}

// ResetPassword always reports acceptance so account existence never leaks.
// The actual reset-link dispatch is an external side effect.
func (s *UserService) ResetPassword(ctx context.Context, email string) {
	s.logger.Info(ctx, "password reset requested", "email", email)
}

func (s *UserService) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

func (s *UserService) mintSession(ctx context.Context, user *domain.User, method string) (*dto.LoginData, error) {
	session, err := s.tokens.Generate(user.ID, user.Username, method)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "login succeeded",
		"username", user.Username, "method", method, "session_id", session.SessionID)

	return &dto.LoginData{
		Token:     session.Token,
		User:      dto.NewUserOutput(user),
		SessionID: session.SessionID,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

func (s *UserService) provisionPhoneUser(ctx context.Context, phone string) (*domain.User, error) {
	now := nowUTC()

	user := &domain.User{
		ID:          uuid.New().String(),
		Username:    phone,
		MobilePhone: phone,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "user provisioned from sms login", "phone", phone)

	return user, nil
}
