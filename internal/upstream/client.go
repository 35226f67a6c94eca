package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"hospital-portal-gateway/internal/config"

	"github.com/rs/zerolog"
)

// Client is the single configured HTTP client for the hospital REST API.
// Every request carries the browser's session cookies; the portal never
// attaches a token of its own.
type Client struct {
	baseURL string
	httpc   *http.Client
	log     zerolog.Logger
}

// NewClient creates a Client for the configured upstream.
func NewClient(cfg config.UpstreamConfig, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.APIBaseURL, "/"),
		httpc:   &http.Client{Timeout: cfg.Timeout},
		log:     logger.With().Str("component", "upstream").Logger(),
	}
}

// Error is a non-2xx upstream response. Message holds the server's own
// error text when the body carried one, so callers can surface it verbatim.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("upstream returned status %d", e.StatusCode)
}

// IsUnauthorized reports whether err is an upstream 401 or 403. A missing
// session is classified as "guest", never surfaced as an error.
func IsUnauthorized(err error) bool {
	ue, ok := err.(*Error)
	return ok && (ue.StatusCode == http.StatusUnauthorized || ue.StatusCode == http.StatusForbidden)
}

// ErrorMessage extracts the upstream-provided error text from err, or
// returns fallback when none is available.
func ErrorMessage(err error, fallback string) string {
	if ue, ok := err.(*Error); ok && ue.Message != "" {
		return ue.Message
	}
	return fallback
}

// Get issues a GET and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, cookie, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, cookie, path, "", nil, out)
}

// PostJSON issues a POST with a JSON body and decodes the response into out.
// out may be nil when the caller only cares about success.
func (c *Client) PostJSON(ctx context.Context, cookie, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, cookie, path, "application/json", body, out)
}

// PostText issues a POST with a plain-text body. The appointment status
// endpoint expects the new status as raw text, not JSON.
func (c *Client) PostText(ctx context.Context, cookie, path, text string, out interface{}) error {
	return c.do(ctx, http.MethodPost, cookie, path, "text/plain", text, out)
}

// PutJSON issues a PUT with a JSON body and decodes the response into out.
func (c *Client) PutJSON(ctx context.Context, cookie, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, cookie, path, "application/json", body, out)
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, cookie, path string) error {
	return c.do(ctx, http.MethodDelete, cookie, path, "", nil, nil)
}

func (c *Client) do(ctx context.Context, method, cookie, path, contentType string, body, out interface{}) error {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		encoded, err := json.Marshal(b)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.asError(resp)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode upstream response: %w", err)
	}
	return nil
}

// asError reads a failed response and pulls out the upstream's error text.
// The hospital API reports write failures as {"error": "..."}.
func (c *Client) asError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	msg := ""
	if err := json.Unmarshal(raw, &payload); err == nil {
		if payload.Error != "" {
			msg = payload.Error
		} else if payload.Message != "" {
			msg = payload.Message
		}
	}

	c.log.Debug().Int("status", resp.StatusCode).Str("path", resp.Request.URL.Path).Msg("upstream error response")
	return &Error{StatusCode: resp.StatusCode, Message: msg}
}
