// Package client is the typed HTTP client the shiftctl CLI uses to talk to the
// shift scheduler API.
//
// Errors in the API envelope come back as domain errors, so callers branch
// with errors.Is on the same sentinels the server uses.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/winner-security/shift-scheduler/internal/core/domain"
)

const defaultTimeout = 15 * time.Second

var (
	// ErrUnauthorized is returned when the API rejects the caller's token.
	ErrUnauthorized = errors.New("not signed in")
	// ErrLoading is returned while the caller's profile is still being resolved.
	ErrLoading = errors.New("profile is still loading")
)

// Client talks to one API server with an optional bearer token.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithToken sets the bearer token sent on every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Token returns the bearer token currently in use.
func (c *Client) Token() string { return c.token }

// SetToken replaces the bearer token.
func (c *Client) SetToken(token string) { c.token = token }

// BaseURL returns the server address the client was built for.
func (c *Client) BaseURL() string { return c.baseURL }

// APIError is a non-2xx response that did not map to a domain error.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: status %d", e.Status)
	}
	return e.Message
}

// sentinelError keeps the server's message while matching a domain sentinel.
type sentinelError struct {
	msg string
	err error
}

func (e *sentinelError) Error() string { return e.msg }

func (e *sentinelError) Unwrap() error { return e.err }

type errorEnvelope struct {
	Error string `json:"error"`
	Code  string `json:"code"`
	Field string `json:"field"`
}

// decodeError maps the error envelope to the error a caller branches on.
func decodeError(op string, resp *http.Response) error {
	var env errorEnvelope
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err := json.Unmarshal(body, &env); err != nil || env.Error == "" {
		env.Error = strings.TrimSpace(string(body))
	}

	switch env.Code {
	case "validation":
		return &domain.ValidationError{Field: env.Field, Message: env.Error}
	case "invalid_credentials":
		return domain.ErrInvalidCredentials
	case "already_registered":
		return domain.ErrAlreadyRegistered
	case "conflict":
		return &sentinelError{msg: env.Error, err: domain.ErrConflict}
	case "remote":
		return &domain.RemoteError{Op: op, Err: errors.New(env.Error)}
	case "invalid_transition":
		return &sentinelError{msg: env.Error, err: domain.ErrInvalidTransition}
	case "unauthorized":
		return ErrUnauthorized
	case "loading":
		return ErrLoading
	case "forbidden":
		return domain.ErrForbidden
	case "not_found":
		if strings.Contains(env.Error, "shift") {
			return domain.ErrShiftNotFound
		}
		if strings.Contains(env.Error, "user") {
			return domain.ErrUserNotFound
		}
	}
	return &APIError{Status: resp.StatusCode, Code: env.Code, Message: env.Error}
}

// do sends one request and decodes a 2xx body into out when out is non-nil.
func (c *Client) do(ctx context.Context, op, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &domain.RemoteError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return decodeError(op, resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

func shiftPath(id, action string) string {
	return "/v1/admin/shifts/" + url.PathEscape(id) + "/" + action
}
