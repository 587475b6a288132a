package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Default endpoints and client configuration.
const (
	DefaultBaseURL          = "https://haveibeenpwned.com/api/v3"
	DefaultPasswordsBaseURL = "https://api.pwnedpasswords.com"

	defaultTimeout = 30 * time.Second
)

// Client is the HTTP API client shared by all resource lookups. It talks to
// two hosts: the main breach-notification API and the Pwned Passwords range
// API. The configuration is read-only after New, so a single Client is safe
// for concurrent use.
type Client struct {
	baseURL          string
	passwordsBaseURL string
	apiKey           string
	userAgent        string
	httpClient       *http.Client
}

// Option configures the API client.
type Option func(*Client)

// WithBaseURL sets the breach-notification API base URL.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithPasswordsBaseURL sets the Pwned Passwords API base URL.
func WithPasswordsBaseURL(url string) Option {
	return func(c *Client) {
		c.passwordsBaseURL = url
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// New creates a new API client. The API key may be empty; the Pwned
// Passwords endpoints never require one and the main API responds 401
// where a key is needed.
func New(apiKey, userAgent string, opts ...Option) (*Client, error) {
	if userAgent == "" {
		return nil, fmt.Errorf("user agent is required")
	}

	c := &Client{
		baseURL:          DefaultBaseURL,
		passwordsBaseURL: DefaultPasswordsBaseURL,
		apiKey:           apiKey,
		userAgent:        userAgent,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// SetHTTPClient sets a custom HTTP client. Must be called before the client
// is shared across goroutines.
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// get performs a GET against base+"/"+path, maps non-2xx statuses to typed
// errors and returns the open response for 2xx. The caller must close the
// body. When authed is true the API key header is attached if a key is set.
func (c *Client) get(ctx context.Context, base, path string, params url.Values, headers map[string]string, authed bool) (*http.Response, error) {
	reqURL := base + "/" + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	if authed && c.apiKey != "" {
		req.Header.Set("hibp-api-key", c.apiKey)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{
			Err:     err,
			URL:     reqURL,
			Timeout: isTimeout(err),
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		return nil, parseErrorResponse(resp)
	}

	return resp, nil
}

// getJSON performs a GET against the main API host and decodes the JSON
// body into result. A 200 with an empty body leaves result untouched;
// callers treat that as absence.
func (c *Client) getJSON(ctx context.Context, path string, params url.Values, authed bool, result interface{}) error {
	resp, err := c.get(ctx, c.baseURL, path, params, nil, authed)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err, URL: resp.Request.URL.String(), Timeout: isTimeout(err)}
	}
	if len(body) == 0 || result == nil {
		return nil
	}

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// getText performs a GET against the Pwned Passwords host and returns the
// raw text body.
func (c *Client) getText(ctx context.Context, path string, params url.Values, headers map[string]string) (string, error) {
	resp, err := c.get(ctx, c.passwordsBaseURL, path, params, headers, false)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &NetworkError{Err: err, URL: resp.Request.URL.String(), Timeout: isTimeout(err)}
	}
	return string(body), nil
}

// parseErrorResponse maps a non-2xx response to an *Error, capturing the
// retry-after hint on 429 responses when the server provides one.
func parseErrorResponse(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	apiErr := &Error{
		StatusCode: resp.StatusCode,
		Message:    string(body),
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		if v := resp.Header.Get("retry-after"); v != "" {
			if secs, err := strconv.Atoi(v); err == nil {
				d := time.Duration(secs) * time.Second
				apiErr.RetryAfter = &d
			}
		}
	}

	return apiErr
}

// isTimeout reports whether err is a deadline or timeout failure.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// Error represents an HTTP error status from either API host.
type Error struct {
	StatusCode int
	Message    string
	RetryAfter *time.Duration // 429 only, nil when the server sent no hint
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// NetworkError represents a transport-level failure, including timeouts.
type NetworkError struct {
	Err     error
	URL     string
	Timeout bool
}

func (e *NetworkError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("request timed out: %v", e.Err)
	}
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}
