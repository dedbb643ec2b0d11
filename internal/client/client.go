// Package client implements the HTTP client the CLI uses to talk to a YAUS
// server's management API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/MikMuellerDev/yaus/internal/api"
	"github.com/MikMuellerDev/yaus/internal/build"
	"github.com/MikMuellerDev/yaus/internal/store"
)

// APIError is a non-200 response from the server, carrying the decoded
// envelope when the body contained one.
type APIError struct {
	Status  int
	Message string
	Detail  string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("server returned %d: %s: %s", e.Status, e.Message, e.Detail)
	}
	if e.Message != "" {
		return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server returned %d", e.Status)
}

// Client talks to one YAUS server with one credential pair.
type Client struct {
	http     *http.Client
	base     *url.URL
	username string
	password string
}

// New builds a client for the server at rawURL and verifies the credentials
// against GET /api/auth before returning. A non-200 probe response is
// surfaced as an *APIError so the caller can fail fast with a clear message.
func New(ctx context.Context, rawURL, username, password string) (*Client, error) {
	base, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server URL %q: %w", rawURL, err)
	}

	c := &Client{
		http:     &http.Client{Timeout: 10 * time.Second},
		base:     base,
		username: username,
		password: password,
	}

	if err := c.do(ctx, http.MethodGet, "/api/auth", nil, nil); err != nil {
		return nil, err
	}
	return c, nil
}

// CreateURL registers a new redirect mapping.
func (c *Client) CreateURL(ctx context.Context, u store.URL) error {
	return c.do(ctx, http.MethodPost, "/api/url", u, nil)
}

// DeleteURL removes the mapping for short.
func (c *Client) DeleteURL(ctx context.Context, short string) error {
	return c.do(ctx, http.MethodDelete, "/api/url/"+short, nil, nil)
}

// GetURL fetches the mapping for short.
func (c *Client) GetURL(ctx context.Context, short string) (*store.URL, error) {
	var u store.URL
	if err := c.do(ctx, http.MethodGet, "/api/url/"+short, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// ListURLs fetches up to limit mappings.
func (c *Client) ListURLs(ctx context.Context, limit uint32) ([]store.URL, error) {
	var urls []store.URL
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/urls/%d", limit), nil, &urls); err != nil {
		return nil, err
	}
	return urls, nil
}

// do issues one request with credentials attached as query parameters,
// decoding the response into out when out is non-nil. Non-200 statuses are
// returned as *APIError with the envelope decoded when present.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	target := *c.base
	target.Path = path
	q := target.Query()
	q.Set("username", c.username)
	q.Set("password", c.password)
	target.RawQuery = q.Encode()

	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", build.UserAgent())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("cannot reach server: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{Status: resp.StatusCode}
		var envelope api.GenericResponse
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil {
			apiErr.Message = envelope.Message
			apiErr.Detail = envelope.Error
		}
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
