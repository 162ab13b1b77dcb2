// Package client is a Go SDK for the phishing trainer JSON endpoints.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"phish_trainer/pkg/api"
)

// Client talks to the trainer server. It holds no per-request state and is
// safe for concurrent use.
type Client struct {
	baseURL    string
	token      string
	timeout    time.Duration
	httpClient *http.Client
}

// Option configures the client
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the request timeout. The default is no timeout, like a
// browser fetch. It applies to a copy of the HTTP client, so it combines
// with WithHTTPClient in any order.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithToken sends token as a bearer credential on every request.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// NewClient creates a client for baseURL. An empty baseURL makes requests
// relative to the page origin, which is what the browser host wants.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.timeout > 0 {
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}

	return c
}

// TransportError means no response envelope was obtained: the request could
// not be sent or the connection failed.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ErrDecode is wrapped by every error caused by a body that is not a JSON
// envelope.
var ErrDecode = errors.New("response is not a JSON envelope")

// GetUserStats fetches the caller's dashboard statistics.
func (c *Client) GetUserStats(ctx context.Context) (*api.Response, error) {
	return c.do(ctx, http.MethodGet, api.PathUserStats, nil)
}

// UpdateProfile posts the profile form.
func (c *Client) UpdateProfile(ctx context.Context, req api.ProfileUpdateRequest) (*api.Response, error) {
	return c.do(ctx, http.MethodPost, api.PathUpdateProfile, req)
}

// ChangePassword posts the password form. The confirmation field is never
// part of the request.
func (c *Client) ChangePassword(ctx context.Context, req api.PasswordChangeRequest) (*api.Response, error) {
	return c.do(ctx, http.MethodPost, api.PathChangePassword, req)
}

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.Response, error) {
	return c.do(ctx, http.MethodPost, api.PathLogin, req)
}

func (c *Client) Logout(ctx context.Context) (*api.Response, error) {
	return c.do(ctx, http.MethodPost, api.PathLogout, nil)
}

// do sends one request and decodes the envelope whatever the status code is;
// the envelope's Success flag carries the outcome.
func (c *Client) do(ctx context.Context, method, path string, body interface{}) (*api.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(b)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Method: method, URL: url, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Method: method, URL: url, Err: err}
	}

	var result api.Response
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("%w (status %d): %v", ErrDecode, resp.StatusCode, err)
	}

	return &result, nil
}
