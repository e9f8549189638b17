// Package session persists the client's login state: the bearer token, a
// summary of the last successful login, and the id of its history record.
// All three live in one JSON file and are cleared together, so a partial
// logout is never observable.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/jiangnanwaw/csfh-backend/pkg/constant"
)

type Status int

const (
	StatusAbsent Status = iota
	StatusValid
	StatusExpired
)

// LoginRecord mirrors the browser's persisted login summary.
type LoginRecord struct {
	Username    string    `json:"username"`
	MobilePhone string    `json:"mobilePhone,omitempty"`
	Method      string    `json:"loginMethod"`
	LoginTime   time.Time `json:"loginTime"`
}

type state struct {
	Token        string       `json:"jwtToken,omitempty"`
	Login        *LoginRecord `json:"userLoginInfo,omitempty"`
	LastRecordID string       `json:"lastLoginRecordId,omitempty"`
}

// Store state is shared between the UI goroutine and the background history
// write that attaches the record id, so every access goes through the mutex;
// writes are atomic on disk via rename.
type Store struct {
	path     string
	mu       sync.Mutex
	s        state
	validity time.Duration
	now      func() time.Time
}

func NewStore(path string) (*Store, error) {
	st := &Store{
		path:     path,
		validity: constant.ClientLoginValidity,
		now:      time.Now,
	}
	if err := st.load(); err != nil {
		return nil, err
	}
	return st, nil
}

func (st *Store) load() error {
	b, err := os.ReadFile(st.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if err := json.Unmarshal(b, &st.s); err != nil {
		// A corrupt state file is treated as logged out.
		st.s = state{}
	}
	return nil
}

func (st *Store) persist() error {
	b, err := json.MarshalIndent(st.s, "", "  ")
	if err != nil {
		return err
	}

	tmp := st.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(st.path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, st.path)
}

// SaveLogin stores the token and login record issued by a successful
// authentication.
func (st *Store) SaveLogin(token string, rec LoginRecord) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.s.Token = token
	st.s.Login = &rec
	st.s.LastRecordID = ""
	return st.persist()
}

// SetLastRecordID attaches the history record id produced by the background
// audit write. After the session was cleared it is a no-op, so a late write
// cannot resurrect a logged-out state file.
func (st *Store) SetLastRecordID(id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.s.Token == "" {
		return nil
	}

	st.s.LastRecordID = id
	return st.persist()
}

func (st *Store) Token() string {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.s.Token
}

func (st *Store) LastRecordID() string {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.s.LastRecordID
}

// CheckStatus reports whether a prior login can still be trusted. A record
// older than the validity window is treated as absent and the stale state is
// cleared.
func (st *Store) CheckStatus() (Status, *LoginRecord) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.s.Login == nil || st.s.Token == "" {
		return StatusAbsent, nil
	}

	if st.now().Sub(st.s.Login.LoginTime) >= st.validity {
		_ = st.clearLocked()
		return StatusExpired, nil
	}

	rec := *st.s.Login
	return StatusValid, &rec
}

// Clear removes the token, login record and last-record id together.
func (st *Store) Clear() error {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.clearLocked()
}

func (st *Store) clearLocked() error {
	st.s = state{}

	err := os.Remove(st.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
