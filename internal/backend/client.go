package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

const defaultTimeout = 8 * time.Second

// Client issues JSON requests against the SearchScope API service. All
// responses, including failures, flow through one normalization path so
// callers never see a raw decode panic: a non-JSON body is wrapped as
// {"raw": <text>} and a non-2xx status becomes an *APIError.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient constructs an API client. An empty baseURL keeps paths
// relative, for deployments where the API is reverse-proxied same-origin.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// NewClientFromEnv reads the base URL from SEARCHSCOPE_API_URL.
func NewClientFromEnv() *Client {
	return NewClient(os.Getenv("SEARCHSCOPE_API_URL"))
}

// APIError carries a normalized backend failure. Message is, in priority
// order, the parsed body's "detail" field, the body text, or a generic
// fallback supplied by the caller.
type APIError struct {
	Status  int
	Message string
	Body    json.RawMessage
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
}

// URL joins path against the configured base. Absolute URLs pass through.
func (c *Client) URL(path string) string {
	if path == "" {
		return c.baseURL
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if c.baseURL == "" {
		return path
	}
	return c.baseURL + path
}

// HTTPClient exposes the underlying client, primarily for tests.
func (c *Client) HTTPClient() *http.Client {
	if c.http == nil {
		c.http = &http.Client{Timeout: defaultTimeout}
	}
	return c.http
}

func (c *Client) postJSON(ctx context.Context, path, token string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("backend: marshal %s: %w", path, err)
	}
	return c.do(ctx, http.MethodPost, path, token, "application/json", bytes.NewReader(payload), out)
}

func (c *Client) postForm(ctx context.Context, path string, form url.Values, out any) error {
	body := strings.NewReader(form.Encode())
	return c.do(ctx, http.MethodPost, path, "", "application/x-www-form-urlencoded", body, out)
}

func (c *Client) getJSON(ctx context.Context, path, token string, out any) error {
	return c.do(ctx, http.MethodGet, path, token, "", nil, out)
}

func (c *Client) do(ctx context.Context, method, path, token, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.URL(path), body)
	if err != nil {
		return fmt.Errorf("backend: build %s %s: %w", method, path, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient().Do(req)
	if err != nil {
		return &APIError{Status: 0, Message: err.Error()}
	}
	defer resp.Body.Close()

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Status: resp.StatusCode, Message: err.Error()}
	}
	payload := NormalizeBody(text)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			Status:  resp.StatusCode,
			Message: errorMessage(payload, text),
			Body:    payload,
		}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("backend: decode %s: %w", path, err)
	}
	return nil
}

// NormalizeBody returns the body as JSON. A body that is not valid JSON
// is wrapped as {"raw": <text>} instead of failing the call.
func NormalizeBody(text []byte) json.RawMessage {
	trimmed := bytes.TrimSpace(text)
	if len(trimmed) > 0 && json.Valid(trimmed) {
		return json.RawMessage(trimmed)
	}
	wrapped, _ := json.Marshal(map[string]string{"raw": string(text)})
	return json.RawMessage(wrapped)
}

const genericFailure = "request failed"

func errorMessage(payload json.RawMessage, text []byte) string {
	var detail struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(payload, &detail); err == nil {
		if detail.Detail != "" {
			return detail.Detail
		}
		if detail.Message != "" {
			return detail.Message
		}
	}
	if s := strings.TrimSpace(string(text)); s != "" {
		return s
	}
	return genericFailure
}
