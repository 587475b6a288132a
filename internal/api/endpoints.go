package api

import (
	"context"
	"fmt"
	"net/url"
)

// BreachedAccount lists breaches for an account. The params may carry
// truncateResponse, domain and includeUnverified filters.
func (c *Client) BreachedAccount(ctx context.Context, account string, params url.Values) ([]Breach, error) {
	path := fmt.Sprintf("breachedaccount/%s", url.PathEscape(account))
	var result []Breach
	if err := c.getJSON(ctx, path, params, true, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// Breaches lists all breached sites in the system.
func (c *Client) Breaches(ctx context.Context, params url.Values) ([]Breach, error) {
	var result []Breach
	if err := c.getJSON(ctx, "breaches", params, false, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// Breach retrieves a single breach by name.
func (c *Client) Breach(ctx context.Context, name string) (*Breach, error) {
	path := fmt.Sprintf("breach/%s", url.PathEscape(name))
	var result Breach
	if err := c.getJSON(ctx, path, nil, false, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// LatestBreach retrieves the most recently added breach.
func (c *Client) LatestBreach(ctx context.Context) (*Breach, error) {
	var result Breach
	if err := c.getJSON(ctx, "latestbreach", nil, false, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DataClasses lists all data classes in the system.
func (c *Client) DataClasses(ctx context.Context) ([]string, error) {
	var result []string
	if err := c.getJSON(ctx, "dataclasses", nil, false, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// BreachedDomain maps email aliases on a verified domain to breach names.
func (c *Client) BreachedDomain(ctx context.Context, domain string) (map[string][]string, error) {
	path := fmt.Sprintf("breacheddomain/%s", url.PathEscape(domain))
	var result map[string][]string
	if err := c.getJSON(ctx, path, nil, true, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// SubscribedDomains lists domains subscribed to domain search.
func (c *Client) SubscribedDomains(ctx context.Context) ([]SubscribedDomain, error) {
	var result []SubscribedDomain
	if err := c.getJSON(ctx, "subscribeddomains", nil, true, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// PasteAccount lists pastes for an email address.
func (c *Client) PasteAccount(ctx context.Context, account string) ([]Paste, error) {
	path := fmt.Sprintf("pasteaccount/%s", url.PathEscape(account))
	var result []Paste
	if err := c.getJSON(ctx, path, nil, true, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// StealerLogsByEmail lists website domains where the email was captured.
func (c *Client) StealerLogsByEmail(ctx context.Context, email string) ([]string, error) {
	path := fmt.Sprintf("stealerlogsbyemail/%s", url.PathEscape(email))
	var result []string
	if err := c.getJSON(ctx, path, nil, true, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// StealerLogsByWebsiteDomain lists email addresses captured on a website.
func (c *Client) StealerLogsByWebsiteDomain(ctx context.Context, domain string) ([]string, error) {
	path := fmt.Sprintf("stealerlogsbywebsitedomain/%s", url.PathEscape(domain))
	var result []string
	if err := c.getJSON(ctx, path, nil, true, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// StealerLogsByEmailDomain maps email aliases on a domain to the website
// domains where they were captured.
func (c *Client) StealerLogsByEmailDomain(ctx context.Context, domain string) (map[string][]string, error) {
	path := fmt.Sprintf("stealerlogsbyemaildomain/%s", url.PathEscape(domain))
	var result map[string][]string
	if err := c.getJSON(ctx, path, nil, true, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// SubscriptionStatus retrieves the current subscription status.
func (c *Client) SubscriptionStatus(ctx context.Context) (*Subscription, error) {
	var result Subscription
	if err := c.getJSON(ctx, "subscription/status", nil, true, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// PasswordRange fetches the raw range response for an uppercase 5-character
// hash prefix. Prefix validation happens in the public package before any
// network access.
func (c *Client) PasswordRange(ctx context.Context, prefix string, ntlm, padding bool) (string, error) {
	params := url.Values{}
	if ntlm {
		params.Set("mode", "ntlm")
	}

	var headers map[string]string
	if padding {
		headers = map[string]string{"Add-Padding": "true"}
	}

	path := fmt.Sprintf("range/%s", url.PathEscape(prefix))
	return c.getText(ctx, path, params, headers)
}
