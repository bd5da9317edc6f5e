// Package api is a small client for the MyGastronomy HTTP API. Server
// outcomes are mapped back onto the sentinel errors in internal/common so
// callers can use errors.Is.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Jovinull/MyGastronomy/internal/common"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-Id"

// Account mirrors the sanitized account returned by the server.
type Account struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Session is a token plus the account it was issued for.
type Session struct {
	Token   string   `json:"token"`
	Account *Account `json:"user"`
}

type envelope struct {
	Success    bool            `json:"success"`
	StatusCode int             `json:"statusCode"`
	Body       json.RawMessage `json:"body"`
}

type message struct {
	Text string `json:"text"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// SignUp registers a new account and returns the issued session.
func (c *Client) SignUp(ctx context.Context, email string, password []byte) (*Session, error) {
	return c.credentials(ctx, "/auth/signup", email, password)
}

// Login authenticates and returns the issued session.
func (c *Client) Login(ctx context.Context, email string, password []byte) (*Session, error) {
	return c.credentials(ctx, "/auth/login", email, password)
}

// Me returns the account the token was issued for.
func (c *Client) Me(ctx context.Context, token string) (*Account, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/auth/me", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)

	var out struct {
		User *Account `json:"user"`
	}
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return out.User, nil
}

func (c *Client) credentials(ctx context.Context, path, email string, password []byte) (*Session, error) {
	payload, err := json.Marshal(struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{email, string(password)})
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(payload)

	req, err := c.newRequest(ctx, http.MethodPost, path, payload)
	if err != nil {
		return nil, err
	}

	var s Session
	if err := c.do(req, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body []byte) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(requestIDHeader, uuid.NewString())
	return req, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("%w: decoding response: %w", ErrUnavailable, err)
	}

	if resp.StatusCode == http.StatusOK {
		return json.Unmarshal(env.Body, out)
	}

	var m message
	_ = json.Unmarshal(env.Body, &m)

	switch resp.StatusCode {
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", common.ErrConflict, m.Text)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, m.Text)
	case http.StatusBadRequest:
		if m.Text == "Credentials are not correct" {
			return fmt.Errorf("%w: %s", common.ErrInvalidCredentials, m.Text)
		}
		return fmt.Errorf("%w: %s", ErrBadRequest, m.Text)
	case http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %s", ErrUnavailable, m.Text)
	default:
		return fmt.Errorf("%w: status %d: %s", common.ErrorInternal, resp.StatusCode, m.Text)
	}
}
