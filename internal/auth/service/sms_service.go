package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math"
	"math/big"
	"regexp"
	"time"

	"github.com/jiangnanwaw/csfh-backend/config"
	"github.com/jiangnanwaw/csfh-backend/internal/auth/domain"
	"github.com/jiangnanwaw/csfh-backend/internal/auth/repository/memory"
	apperrors "github.com/jiangnanwaw/csfh-backend/internal/errors"
	"github.com/jiangnanwaw/csfh-backend/internal/logging"
	"github.com/jiangnanwaw/csfh-backend/pkg/constant"
)

// CodeVerifier is the slice of SMSService the login path needs.
type CodeVerifier interface {
	Verify(ctx context.Context, phone, code string) error
}

var phoneRegexp = regexp.MustCompile(constant.PhonePattern)

// SMSService issues and validates one-time codes. Issuing a new code replaces
// any prior active code for the phone; verification consumes the code.
type SMSService struct {
	store    *memory.CodeStore
	sender   domain.SMSSender
	logger   logging.Logger
	ttl      time.Duration
	cooldown time.Duration
	now      func() time.Time
}

func NewSMSService(store *memory.CodeStore, sender domain.SMSSender, logger logging.Logger, cfg *config.Config) *SMSService {
	return &SMSService{
		store:    store,
		sender:   sender,
		logger:   logger,
		ttl:      time.Duration(cfg.SMSCodeTTLMin) * time.Minute,
		cooldown: time.Duration(cfg.SMSCooldownSec) * time.Second,
		now:      time.Now,
	}
}

// Issue generates a fresh code for the phone and hands it to the sender.
// Malformed numbers fail before the phone's slot is touched, so they never
// consume a cooldown.
func (s *SMSService) Issue(ctx context.Context, phone string) (*domain.OneTimeCode, error) {
	if !phoneRegexp.MatchString(phone) {
		return nil, apperrors.ErrInvalidPhoneFormat
	}

	code, err := generateCode(constant.SMSCodeLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate code: %w", err)
	}

	now := s.now()
	otc := &domain.OneTimeCode{
		Phone:     phone,
		Code:      code,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	var prev memory.Slot
	err = s.store.Update(phone, func(sl *memory.Slot) error {
		if !sl.LastIssued.IsZero() {
			if elapsed := now.Sub(sl.LastIssued); elapsed < s.cooldown {
				remaining := int(math.Ceil((s.cooldown - elapsed).Seconds()))
				return apperrors.CooldownActive(remaining)
			}
		}

		// replacing the slot invalidates any prior active code
		prev = *sl
		sl.Code = otc
		sl.LastIssued = now

		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.sender.Send(ctx, phone, code); err != nil {
		// undelivered codes must not hold the cooldown; restore the slot
		// unless someone replaced it meanwhile
		_ = s.store.Update(phone, func(sl *memory.Slot) error {
			if sl.Code == otc {
				*sl = prev
			}
			return nil
		})
		return nil, fmt.Errorf("failed to send code to %s: %w", phone, err)
	}

	s.logger.Info(ctx, "sms code issued", "phone", phone)

	return otc, nil
}

// Verify consumes the phone's active code on match. Consumed, expired and
// missing codes are all rejected; the code is single use even inside its TTL.
func (s *SMSService) Verify(ctx context.Context, phone, code string) error {
	if !phoneRegexp.MatchString(phone) {
		return apperrors.ErrInvalidPhoneFormat
	}

	return s.store.Update(phone, func(sl *memory.Slot) error {
		if sl.Code == nil || sl.Code.Consumed {
			return apperrors.ErrInvalidCode
		}
		if s.now().After(sl.Code.ExpiresAt) {
			return apperrors.ErrCodeExpired
		}
		if subtle.ConstantTimeCompare([]byte(sl.Code.Code), []byte(code)) != 1 {
			return apperrors.ErrInvalidCode
		}

		sl.Code.Consumed = true

		return nil
	})
}

// CooldownRemaining reports how long the phone must wait before the next
// issuance. Zero means a new code may be requested now.
func (s *SMSService) CooldownRemaining(phone string) time.Duration {
	sl := s.store.Peek(phone)
	if sl.LastIssued.IsZero() {
		return 0
	}

	remaining := s.cooldown - s.now().Sub(sl.LastIssued)
	if remaining < 0 {
		return 0
	}
	return remaining
}

func generateCode(digits int) (string, error) {
	max := big.NewInt(1)
	for i := 0; i < digits; i++ {
		max.Mul(max, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%0*d", digits, n), nil
}
