package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// TokenSource supplies the bearer token attached to authenticated requests.
// An empty token means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// StaticToken is a fixed TokenSource, mainly for tests and one-off calls
type StaticToken string

func (t StaticToken) Token() string { return string(t) }

// APIError is a non-2xx response from the commerce API with its message
// field decoded. The message is surfaced to the user verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// AuthFailure reports whether the error indicates an expired or invalid
// session rather than an ordinary rejection.
func (e *APIError) AuthFailure() bool {
	if e.StatusCode == http.StatusUnauthorized {
		return true
	}
	msg := strings.ToLower(e.Message)
	return strings.Contains(msg, "401") || strings.Contains(msg, "token")
}

// IsAuthFailure reports whether err is an APIError describing a session
// problem that should force a logout.
func IsAuthFailure(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.AuthFailure()
}

// Client wraps HTTP access to the external commerce REST API. All business
// logic (inventory, pricing, payment verification, order transitions) lives
// behind this API; the client only normalizes transport and error shapes.
type Client struct {
	baseURL string
	tokens  TokenSource
	client  *http.Client
}

// NewClient creates a commerce API client rooted at baseURL
func NewClient(baseURL string, tokens TokenSource) *Client {
	if tokens == nil {
		tokens = StaticToken("")
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// HTTPClient exposes the underlying client for collaborators that talk to
// the same hosts with the same timeout policy.
func (c *Client) HTTPClient() *http.Client {
	return c.client
}

// request performs one JSON round trip against the commerce API. payload is
// marshaled when non-nil; out is decoded into when non-nil and the response
// succeeded. Non-2xx responses become *APIError carrying the backend's
// message field.
func (c *Client) request(ctx context.Context, method, endpoint string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return c.consume(resp, out)
}

// do sends a prepared request (multipart uploads and the like) with the
// bearer token attached and decodes the response the same way request does.
func (c *Client) do(req *http.Request, out interface{}) error {
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return c.consume(resp, out)
}

func (c *Client) consume(resp *http.Response, out interface{}) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("Request failed with status %d", resp.StatusCode),
		}
		var envelope struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(data, &envelope) == nil && envelope.Message != "" {
			apiErr.Message = envelope.Message
		}
		return apiErr
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
