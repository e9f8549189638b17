// Package client is the Go counterpart of the browser front end's API layer:
// it attaches the bearer token to every call, keeps the local session store in
// step with the server's answers, and evicts the session on any 401.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/jiangnanwaw/csfh-backend/internal/client/session"
	apperrors "github.com/jiangnanwaw/csfh-backend/internal/errors"
	"github.com/jiangnanwaw/csfh-backend/internal/logging"
	"github.com/jiangnanwaw/csfh-backend/pkg/constant"
)

const requestTimeout = 30 * time.Second

type Client struct {
	baseURL string
	http    *http.Client
	store   *session.Store
	logger  logging.Logger

	// onUnauthorized forces the UI back to the unauthenticated state after a
	// 401 evicted the session.
	onUnauthorized func()

	// sessionID of the last successful login, needed for the logout record.
	sessionID string

	audit sync.WaitGroup
}

type Option func(*Client)

// WithOnUnauthorized registers the callback run after a 401 eviction.
func WithOnUnauthorized(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// WithHTTPClient overrides the underlying HTTP client (tests use this).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func New(baseURL string, store *session.Store, logger logging.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
		store:   store,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code       string `json:"code"`
		Message    string `json:"message"`
		RetryAfter int    `json:"retryAfter"`
	} `json:"error"`
}

// do runs one API call and decodes the standard envelope into out. Transport
// failures surface as ErrServerUnreachable, never as an auth error; a 401
// clears the session, a 403 does not.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	resp, err := c.send(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		c.evict()
		// keep the server's error kind so callers can tell a bad code from
		// an expired one
		var env envelope
		if err := json.NewDecoder(resp.Body).Decode(&env); err == nil && env.Error != nil {
			return envelopeError(&env, resp.StatusCode)
		}
		return apperrors.ErrUnauthorized
	case http.StatusForbidden:
		// authorization failure, the session itself stays valid
		return apperrors.ErrForbidden
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("malformed response: %w", err)
	}

	if !env.Success {
		return envelopeError(&env, resp.StatusCode)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("malformed response data: %w", err)
		}
	}

	return nil
}

// envelopeError rebuilds the server's AppError from a failure envelope.
func envelopeError(env *envelope, status int) error {
	if env.Error == nil {
		return apperrors.ErrInternal
	}
	return &apperrors.AppError{
		Code:       env.Error.Code,
		Message:    env.Error.Message,
		Status:     status,
		RetryAfter: env.Error.RetryAfter,
	}
}

func (c *Client) send(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.store.Token(); token != "" {
		req.Header.Set("Authorization", constant.BearerScheme+" "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrServerUnreachable, err)
	}

	return resp, nil
}

func (c *Client) evict() {
	if err := c.store.Clear(); err != nil {
		c.logger.Warn(context.Background(), "failed to clear session state", "error", err)
	}
	c.sessionID = ""
	if c.onUnauthorized != nil {
		c.onUnauthorized()
	}
}

// CheckStatus reports the locally persisted login state without a server
// round trip.
func (c *Client) CheckStatus() (session.Status, *session.LoginRecord) {
	return c.store.CheckStatus()
}

// Flush waits for pending fire-and-forget audit writes. The login path never
// calls this; it exists for shutdown and tests.
func (c *Client) Flush() {
	c.audit.Wait()
}
