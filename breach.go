package hibp

import (
	"context"
	"net/url"

	"github.com/haveibeenpwned/client-go/internal/api"
)

// Breach represents a data breach.
type Breach struct {
	Name               string
	Title              string
	Domain             string
	BreachDate         string
	AddedDate          string
	ModifiedDate       string
	PwnCount           int64
	Description        string
	LogoPath           string
	DataClasses        []string
	IsVerified         bool
	IsFabricated       bool
	IsSensitive        bool
	IsRetired          bool
	IsSpamList         bool
	IsMalware          bool
	IsStealerLog       bool
	IsSubscriptionFree bool
	Attribution        string
}

func newBreachFromAPI(b *api.Breach) Breach {
	return Breach{
		Name:               b.Name,
		Title:              b.Title,
		Domain:             b.Domain,
		BreachDate:         b.BreachDate,
		AddedDate:          b.AddedDate,
		ModifiedDate:       b.ModifiedDate,
		PwnCount:           b.PwnCount,
		Description:        b.Description,
		LogoPath:           b.LogoPath,
		DataClasses:        b.DataClasses,
		IsVerified:         b.IsVerified,
		IsFabricated:       b.IsFabricated,
		IsSensitive:        b.IsSensitive,
		IsRetired:          b.IsRetired,
		IsSpamList:         b.IsSpamList,
		IsMalware:          b.IsMalware,
		IsStealerLog:       b.IsStealerLog,
		IsSubscriptionFree: b.IsSubscriptionFree,
		Attribution:        b.Attribution,
	}
}

func newBreachesFromAPI(raw []api.Breach) []Breach {
	breaches := make([]Breach, 0, len(raw))
	for i := range raw {
		breaches = append(breaches, newBreachFromAPI(&raw[i]))
	}
	return breaches
}

// GetAccountBreaches returns all breaches for an account (email address,
// username or phone number). Requires an API key. An account found in no
// breaches yields an empty slice, not an error.
//
// By default the API returns truncated records carrying only the breach
// name; use WithFullBreachData for complete records.
func (c *Client) GetAccountBreaches(ctx context.Context, account string, opts ...BreachOption) ([]Breach, error) {
	cfg := &breachConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	params := url.Values{}
	if cfg.fullBreachData {
		params.Set("truncateResponse", "false")
	}
	if cfg.excludeUnverified {
		params.Set("includeUnverified", "false")
	}
	if cfg.domain != "" {
		params.Set("domain", cfg.domain)
	}

	raw, err := c.api.BreachedAccount(ctx, account, params)
	if err != nil {
		if isNotFound(err) {
			return []Breach{}, nil
		}
		return nil, wrapError(err)
	}

	return newBreachesFromAPI(raw), nil
}

// GetAllBreaches returns every breached site in the system. No API key
// required.
func (c *Client) GetAllBreaches(ctx context.Context, opts ...BreachOption) ([]Breach, error) {
	cfg := &breachConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	params := url.Values{}
	if cfg.domain != "" {
		params.Set("domain", cfg.domain)
	}
	if cfg.isSpamList != nil {
		if *cfg.isSpamList {
			params.Set("isSpamList", "true")
		} else {
			params.Set("isSpamList", "false")
		}
	}

	raw, err := c.api.Breaches(ctx, params)
	if err != nil {
		return nil, wrapError(err)
	}

	return newBreachesFromAPI(raw), nil
}

// GetBreach returns a single breach by name (e.g. "Adobe"). An unknown
// name fails with ErrNotFound. No API key required.
func (c *Client) GetBreach(ctx context.Context, name string) (*Breach, error) {
	raw, err := c.api.Breach(ctx, name)
	if err != nil {
		return nil, wrapError(err)
	}

	breach := newBreachFromAPI(raw)
	return &breach, nil
}

// GetLatestBreach returns the most recently added breach. No API key
// required.
func (c *Client) GetLatestBreach(ctx context.Context) (*Breach, error) {
	raw, err := c.api.LatestBreach(ctx)
	if err != nil {
		return nil, wrapError(err)
	}

	breach := newBreachFromAPI(raw)
	return &breach, nil
}

// GetDataClasses returns all data classes in the system, e.g.
// "Email addresses" or "Passwords". No API key required.
func (c *Client) GetDataClasses(ctx context.Context) ([]string, error) {
	classes, err := c.api.DataClasses(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	if classes == nil {
		classes = []string{}
	}
	return classes, nil
}

// GetDomainBreaches returns all breached email addresses for a domain
// verified in the caller's account, mapping each email alias to the names
// of the breaches it appears in. Requires an API key. A domain with no
// breached addresses yields an empty map.
func (c *Client) GetDomainBreaches(ctx context.Context, domain string) (map[string][]string, error) {
	result, err := c.api.BreachedDomain(ctx, domain)
	if err != nil {
		if isNotFound(err) {
			return map[string][]string{}, nil
		}
		return nil, wrapError(err)
	}
	if result == nil {
		result = map[string][]string{}
	}
	return result, nil
}
