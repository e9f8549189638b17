package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

type RecordMetadata struct {
	UserID    string `json:"userId,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

type HistoryEntry struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Method    string     `json:"loginMethod"`
	SessionID string     `json:"sessionId,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	IPAddress string     `json:"ipAddress,omitempty"`
	Device    string     `json:"device,omitempty"`
	LoginAt   time.Time  `json:"loginTime"`
	LogoutAt  *time.Time `json:"logoutTime,omitempty"`
}

func (c *Client) RecordLogin(ctx context.Context, username, method string, meta RecordMetadata) (string, error) {
	body := map[string]any{
		"username":       username,
		"loginMethod":    method,
		"additionalData": meta,
	}

	var out struct {
		ID string `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/login-records/record", body, &out); err != nil {
		return "", err
	}

	return out.ID, nil
}

func (c *Client) RecordLogout(ctx context.Context, sessionID, recordID string) error {
	body := map[string]any{
		"sessionId": sessionID,
		"recordId":  recordID,
	}
	return c.do(ctx, http.MethodPost, "/api/login-records/logout", body, nil)
}

func (c *Client) LoginHistory(ctx context.Context, username string, limit int) ([]HistoryEntry, error) {
	q := url.Values{"username": {username}}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var out []HistoryEntry
	err := c.do(ctx, http.MethodGet, "/api/login-records/history?"+q.Encode(), nil, &out)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// LastLoginRecord returns the user's latest entry, or nil when none exists.
func (c *Client) LastLoginRecord(ctx context.Context, username string) (*HistoryEntry, error) {
	q := url.Values{"username": {username}}

	var out *HistoryEntry
	err := c.do(ctx, http.MethodGet, "/api/login-records/last?"+q.Encode(), nil, &out)
	if err != nil {
		return nil, err
	}

	return out, nil
}
