package hibp

import (
	"github.com/haveibeenpwned/client-go/internal/api"
)

// Client is the main Have I Been Pwned client. Its configuration is
// read-only after New, so a single Client is safe for concurrent use.
// It holds no state between calls beyond the pooled HTTP connections.
type Client struct {
	api *api.Client
}

// New creates a new client with the given API key. The key may be empty:
// the Pwned Passwords endpoints and the public breach catalogue work
// without one, and authenticated endpoints will surface ErrUnauthorized.
func New(apiKey string, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		baseURL:          api.DefaultBaseURL,
		passwordsBaseURL: api.DefaultPasswordsBaseURL,
		userAgent:        defaultUserAgent,
		timeout:          defaultTimeout,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.userAgent == "" {
		return nil, ErrMissingUserAgent
	}

	apiClient, err := api.New(apiKey, cfg.userAgent,
		api.WithBaseURL(cfg.baseURL),
		api.WithPasswordsBaseURL(cfg.passwordsBaseURL),
		api.WithTimeout(cfg.timeout),
	)
	if err != nil {
		return nil, err
	}

	if cfg.httpClient != nil {
		apiClient.SetHTTPClient(cfg.httpClient)
	}

	return &Client{api: apiClient}, nil
}
