// Package memory holds the in-process store for one-time codes. Codes live
// minutes and never need to survive a restart, so they stay out of Postgres.
package memory

import (
	"sync"
	"time"

	"github.com/jiangnanwaw/csfh-backend/internal/auth/domain"
)

// Slot is the per-phone state: the current active code (nil when none) and
// when a code was last issued, which drives the resend cooldown.
type Slot struct {
	Code       *domain.OneTimeCode
	LastIssued time.Time
}

type slot struct {
	mu sync.Mutex
	Slot
}

// CodeStore serializes read-modify-write per phone number. The outer mutex
// only guards slot lookup; two phones never contend on the same lock.
type CodeStore struct {
	mu    sync.Mutex
	slots map[string]*slot
}

func NewCodeStore() *CodeStore {
	return &CodeStore{slots: make(map[string]*slot)}
}

func (s *CodeStore) slotFor(phone string) *slot {
	s.mu.Lock()
	defer s.mu.Unlock()

	sl, ok := s.slots[phone]
	if !ok {
		sl = &slot{}
		s.slots[phone] = sl
	}
	return sl
}

// Update runs fn with exclusive access to the phone's slot. Mutations fn makes
// to the slot are retained; the error is passed through.
func (s *CodeStore) Update(phone string, fn func(sl *Slot) error) error {
	sl := s.slotFor(phone)

	sl.mu.Lock()
	defer sl.mu.Unlock()

	return fn(&sl.Slot)
}

// Peek returns a copy of the phone's slot without mutating it.
func (s *CodeStore) Peek(phone string) Slot {
	sl := s.slotFor(phone)

	sl.mu.Lock()
	defer sl.mu.Unlock()

	out := sl.Slot
	if sl.Code != nil {
		code := *sl.Code
		out.Code = &code
	}
	return out
}
