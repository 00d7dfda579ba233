// Package roadmap implements the HTTP client for the remote roadmap
// endpoint that serves the board payload.
package roadmap

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/anshpatel080/kanban/internal/source"
)

// Client is a thin HTTP client for the roadmap payload endpoint. It handles
// optional Bearer token authentication, JSON decoding, and automatic retry
// with exponential backoff on HTTP 429.
type Client struct {
	baseURL    string
	path       string
	token      string
	httpClient *http.Client
	maxRetries int
}

// NewClient creates a new roadmap client. The baseURL is the root URL of
// the service; path is the payload endpoint (e.g., /api/roadmap). The token
// may be empty when the endpoint is public.
func NewClient(baseURL, path, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		path:    path,
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		maxRetries: 3,
	}
}

// FetchPayload retrieves and decodes the current board payload.
func (c *Client) FetchPayload(ctx context.Context) (*source.Payload, error) {
	var payload source.Payload
	if err := c.get(ctx, c.path, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// get performs an HTTP GET, handling auth, rate limiting with backoff, and
// JSON deserialization.
func (c *Client) get(ctx context.Context, path string, result interface{}) error {
	url := c.baseURL + path

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return fmt.Errorf("creating request: %w", err)
		}

		req.Header.Set("Accept", "application/json")
		if c.token != "" {
			req.Header.Set("Authorization", "Bearer "+c.token)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("executing request GET %s: %w", path, err)
		}

		respBody, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			return fmt.Errorf("reading response body: %w", readErr)
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			waitDuration := retryAfterDuration(resp, attempt)
			lastErr = fmt.Errorf("rate limited (429) on GET %s", path)

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(waitDuration):
				continue
			}
		}

		if resp.StatusCode == http.StatusUnauthorized {
			return &source.AuthError{
				Endpoint: c.baseURL,
				Message:  "authentication failed (401): check your API token",
			}
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return fmt.Errorf(
				"unexpected status %d on GET %s: %s",
				resp.StatusCode, path, string(respBody),
			)
		}

		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("unmarshaling response from GET %s: %w", path, err)
		}

		return nil
	}

	return fmt.Errorf("max retries (%d) exceeded: %w", c.maxRetries, lastErr)
}

// retryAfterDuration reads the Retry-After header and computes a wait
// duration. Falls back to exponential backoff if the header is missing.
func retryAfterDuration(resp *http.Response, attempt int) time.Duration {
	if header := resp.Header.Get("Retry-After"); header != "" {
		if seconds, err := strconv.Atoi(header); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}

	// Exponential backoff: 1s, 2s, 4s, ...
	backoff := time.Duration(1<<uint(attempt)) * time.Second
	if backoff > 30*time.Second {
		backoff = 30 * time.Second
	}
	return backoff
}
