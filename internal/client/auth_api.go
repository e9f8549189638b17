package client

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/jiangnanwaw/csfh-backend/internal/auth/dto"
	"github.com/jiangnanwaw/csfh-backend/internal/client/session"
	"github.com/jiangnanwaw/csfh-backend/pkg/constant"
)

func (c *Client) Register(ctx context.Context, username, password, email string) (*dto.UserOutput, error) {
	var data struct {
		User dto.UserOutput `json:"user"`
	}
	err := c.do(ctx, http.MethodPost, "/api/auth/register", dto.RegisterInput{
		Username: username,
		Password: password,
		Email:    email,
	}, &data)
	if err != nil {
		return nil, err
	}
	return &data.User, nil
}

// Login authenticates with a password and persists the issued session. The
// history write is dispatched without blocking the login transition.
func (c *Client) Login(ctx context.Context, username, password string) (*dto.LoginData, error) {
	var data dto.LoginData
	err := c.do(ctx, http.MethodPost, "/api/auth/login", dto.LoginInput{
		Username: username,
		Password: password,
	}, &data)
	if err != nil {
		return nil, err
	}

	c.finishLogin(&data, constant.LoginMethodPassword, data.User.MobilePhone)

	return &data, nil
}

// SMSLogin authenticates with a phone and one-time code.
func (c *Client) SMSLogin(ctx context.Context, phone, code string) (*dto.LoginData, error) {
	var data dto.LoginData
	err := c.do(ctx, http.MethodPost, "/api/auth/sms-login", dto.SMSLoginInput{
		Phone: phone,
		Code:  code,
	}, &data)
	if err != nil {
		return nil, err
	}

	c.finishLogin(&data, constant.LoginMethodSMS, phone)

	return &data, nil
}

func (c *Client) SendSMSCode(ctx context.Context, phone string) (*dto.SendCodeData, error) {
	var data dto.SendCodeData
	err := c.do(ctx, http.MethodPost, "/api/auth/send-sms-code", dto.SendCodeInput{Phone: phone}, &data)
	if err != nil {
		return nil, err
	}
	return &data, nil
}

func (c *Client) ResetPassword(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/api/auth/reset-password", dto.ResetPasswordInput{Email: email}, nil)
}

// CheckAuthorization asks the server whether the current token is still
// accepted. The endpoint answers outside the standard envelope.
func (c *Client) CheckAuthorization(ctx context.Context) (bool, error) {
	resp, err := c.send(ctx, http.MethodGet, "/api/auth/check-authorization", nil)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	var out struct {
		Authorized bool `json:"authorized"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return false, err
	}

	return out.Authorized, nil
}

func (c *Client) Me(ctx context.Context) (*dto.UserOutput, error) {
	var data struct {
		User dto.UserOutput `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &data); err != nil {
		return nil, err
	}
	return &data.User, nil
}

// Logout ends the session: it stamps the logout on the last history record,
// tells the server, and clears all local state. Bookkeeping failures are
// logged and never stop the logout.
func (c *Client) Logout(ctx context.Context) error {
	if recordID := c.store.LastRecordID(); recordID != "" || c.sessionID != "" {
		if err := c.RecordLogout(ctx, c.sessionID, recordID); err != nil {
			c.logger.Warn(ctx, "logout record write failed", "error", err)
		}
	}

	if err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil); err != nil {
		c.logger.Warn(ctx, "server logout failed", "error", err)
	}

	c.sessionID = ""

	return c.store.Clear()
}

// finishLogin persists the session locally and fires the history write.
func (c *Client) finishLogin(data *dto.LoginData, method, phone string) {
	c.sessionID = data.SessionID

	rec := session.LoginRecord{
		Username:    data.User.Username,
		MobilePhone: phone,
		Method:      method,
		LoginTime:   time.Now(),
	}
	if err := c.store.SaveLogin(data.Token, rec); err != nil {
		c.logger.Warn(context.Background(), "failed to persist login state", "error", err)
	}

	c.audit.Add(1)
	go func() {
		defer c.audit.Done()

		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		id, err := c.RecordLogin(ctx, data.User.Username, method, RecordMetadata{
			UserID:    data.User.ID,
			SessionID: data.SessionID,
			Phone:     phone,
		})
		if err != nil {
			c.logger.Warn(ctx, "login record write failed",
				"username", data.User.Username, "error", err)
			return
		}

		if err := c.store.SetLastRecordID(id); err != nil {
			c.logger.Warn(ctx, "failed to persist login record id", "error", err)
		}
	}()
}
