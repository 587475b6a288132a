package hibp

import (
	"net/http"
	"time"
)

const (
	defaultUserAgent = "haveibeenpwned-go-client"
	defaultTimeout   = 30 * time.Second
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL          string
	passwordsBaseURL string
	userAgent        string
	timeout          time.Duration
	httpClient       *http.Client
}

// passwordConfig holds configuration for password checks.
type passwordConfig struct {
	mode    HashMode
	padding bool
}

// breachConfig holds configuration for breach lookups. The defaults match
// the API: truncated responses, unverified breaches included, no filters.
type breachConfig struct {
	fullBreachData    bool
	excludeUnverified bool
	domain            string
	isSpamList        *bool
}

// Option configures the client.
type Option func(*clientConfig)

// PasswordOption configures a password exposure check or range search.
type PasswordOption func(*passwordConfig)

// BreachOption configures breach lookups.
type BreachOption func(*breachConfig)

// WithBaseURL sets the breach-notification API base URL.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithPasswordsBaseURL sets the Pwned Passwords API base URL.
func WithPasswordsBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.passwordsBaseURL = url
	}
}

// WithUserAgent sets the User-Agent header sent on every request.
// The API rejects requests without one.
func WithUserAgent(ua string) Option {
	return func(c *clientConfig) {
		c.userAgent = ua
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithNTLM selects the NTLM hash (MD4 over UTF-16LE) instead of SHA-1.
// Use it to check credentials stored in the legacy Windows format.
func WithNTLM() PasswordOption {
	return func(c *passwordConfig) {
		c.mode = HashNTLM
	}
}

// WithPadding asks the server to pad the range response with zero-count
// entries so that response size does not reveal whether the password was
// found. Padded entries are dropped from the result.
func WithPadding() PasswordOption {
	return func(c *passwordConfig) {
		c.padding = true
	}
}

// WithFullBreachData requests complete breach records instead of the
// default name-only truncated response.
func WithFullBreachData() BreachOption {
	return func(c *breachConfig) {
		c.fullBreachData = true
	}
}

// WithoutUnverified excludes unverified breaches from the results.
func WithoutUnverified() BreachOption {
	return func(c *breachConfig) {
		c.excludeUnverified = true
	}
}

// WithDomainFilter restricts results to breaches of the given domain.
func WithDomainFilter(domain string) BreachOption {
	return func(c *breachConfig) {
		c.domain = domain
	}
}

// WithSpamListFilter restricts results to breaches that are (true) or are
// not (false) spam lists.
func WithSpamListFilter(isSpamList bool) BreachOption {
	return func(c *breachConfig) {
		c.isSpamList = &isSpamList
	}
}
