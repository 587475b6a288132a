package hibp

import (
	"context"
)

// GetStealerLogsByEmail returns the website domains where the given email
// address was captured by an info stealer. Requires an API key for a
// verified domain. No entries yields an empty slice.
func (c *Client) GetStealerLogsByEmail(ctx context.Context, email string) ([]string, error) {
	domains, err := c.api.StealerLogsByEmail(ctx, email)
	if err != nil {
		if isNotFound(err) {
			return []string{}, nil
		}
		return nil, wrapError(err)
	}
	if domains == nil {
		domains = []string{}
	}
	return domains, nil
}

// GetStealerLogsByWebsiteDomain returns the email addresses captured when
// users authenticated to the given website domain. Requires an API key for
// a verified domain. No entries yields an empty slice.
func (c *Client) GetStealerLogsByWebsiteDomain(ctx context.Context, domain string) ([]string, error) {
	emails, err := c.api.StealerLogsByWebsiteDomain(ctx, domain)
	if err != nil {
		if isNotFound(err) {
			return []string{}, nil
		}
		return nil, wrapError(err)
	}
	if emails == nil {
		emails = []string{}
	}
	return emails, nil
}

// GetStealerLogsByEmailDomain returns the email aliases on the given email
// domain mapped to the website domains where they were captured. Requires
// an API key for a verified domain. No entries yields an empty map.
func (c *Client) GetStealerLogsByEmailDomain(ctx context.Context, domain string) (map[string][]string, error) {
	aliases, err := c.api.StealerLogsByEmailDomain(ctx, domain)
	if err != nil {
		if isNotFound(err) {
			return map[string][]string{}, nil
		}
		return nil, wrapError(err)
	}
	if aliases == nil {
		aliases = map[string][]string{}
	}
	return aliases, nil
}
