// Package client talks to the ISKIO Spa REST API. It owns the auth session,
// the booking form workflow and the admin availability editor.
package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// DefaultBaseURL matches the server's default port and /api prefix.
const DefaultBaseURL = "http://localhost:8000/api"

// Client is a thin JSON wrapper around the REST API. It reads the bearer
// token from its Session on every call, so a logout takes effect on the
// next request.
type Client struct {
	baseURL string
	session *Session
	timeout time.Duration
	now     func() time.Time
}

type Option func(*Client)

// WithTimeout bounds every request. Zero means no client-side timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.timeout = timeout }
}

// WithClock replaces time.Now for token expiry checks.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

func New(baseURL string, session *Session, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if session == nil {
		session = NewSession(NewMemoryStore(), NewMemoryStore())
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		session: session,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Session() *Session {
	return c.session
}

// RequestOption adjusts a single request before it is sent.
type RequestOption func(*fiber.Agent)

// WithHeader sets a header on one request. It is applied after the
// defaults, so it can replace Content-Type or Authorization.
func WithHeader(key, value string) RequestOption {
	return func(a *fiber.Agent) { a.Set(key, value) }
}

// Do sends an arbitrary request against the API and decodes a 2xx body
// into out. It follows the same session rules as the typed calls.
func (c *Client) Do(method, path string, body, out interface{}, opts ...RequestOption) error {
	return c.do(method, path, body, out, opts...)
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "/") {
		return path
	}
	return "/" + path
}

// tokenExpired decodes the exp claim without verifying the signature.
// Tokens that cannot be decoded or carry no exp are left to the server.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return false
	}
	return now.After(time.Unix(int64(exp), 0))
}

// do sends one request. A 401 clears the session before the error is returned.
func (c *Client) do(method, path string, body, out interface{}, opts ...RequestOption) error {
	token := c.session.AccessToken()
	if token != "" && tokenExpired(token, c.now()) {
		c.session.Clear()
		token = ""
	}

	agent := fiber.AcquireAgent()
	req := agent.Request()
	req.Header.SetMethod(method)
	req.SetRequestURI(c.baseURL + normalizePath(path))
	agent.ContentType(fiber.MIMEApplicationJSON)
	if token != "" {
		agent.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	for _, opt := range opts {
		opt(agent)
	}
	if c.timeout > 0 {
		agent.Timeout(c.timeout)
	}
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			fiber.ReleaseAgent(agent)
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		agent.Body(raw)
	}

	if err := agent.Parse(); err != nil {
		fiber.ReleaseAgent(agent)
		return fmt.Errorf("prepare %s %s: %w", method, path, err)
	}
	status, respBody, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("%s %s: %w", method, path, errors.Join(errs...))
	}

	if status == fiber.StatusUnauthorized {
		c.session.Clear()
	}
	if status < 200 || status >= 300 {
		return newAPIError(status, respBody)
	}
	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
