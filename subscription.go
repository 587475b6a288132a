package hibp

import (
	"context"

	"github.com/haveibeenpwned/client-go/internal/api"
)

// Subscription describes the current API subscription.
type Subscription struct {
	SubscriptionName                string
	Description                     string
	SubscribedUntil                 string
	Rpm                             int
	DomainSearchMaxBreachedAccounts int
	IncludesStealerLogs             bool
}

// SubscribedDomain describes a domain subscribed to domain search.
type SubscribedDomain struct {
	DomainName                                          string
	PwnCount                                            int64
	PwnCountExcludingSpamLists                          int64
	PwnCountExcludingSpamListsAtLastSubscriptionRenewal int64
	NextSubscriptionRenewal                             string
}

// GetSubscriptionStatus returns the subscription attached to the API key.
// Requires an API key.
func (c *Client) GetSubscriptionStatus(ctx context.Context) (*Subscription, error) {
	raw, err := c.api.SubscriptionStatus(ctx)
	if err != nil {
		return nil, wrapError(err)
	}

	return &Subscription{
		SubscriptionName:                raw.SubscriptionName,
		Description:                     raw.Description,
		SubscribedUntil:                 raw.SubscribedUntil,
		Rpm:                             raw.Rpm,
		DomainSearchMaxBreachedAccounts: raw.DomainSearchMaxBreachedAccounts,
		IncludesStealerLogs:             raw.IncludesStealerLogs,
	}, nil
}

// GetSubscribedDomains returns all domains subscribed to domain search.
// Requires an API key.
func (c *Client) GetSubscribedDomains(ctx context.Context) ([]SubscribedDomain, error) {
	raw, err := c.api.SubscribedDomains(ctx)
	if err != nil {
		return nil, wrapError(err)
	}

	domains := make([]SubscribedDomain, 0, len(raw))
	for _, d := range raw {
		domains = append(domains, newSubscribedDomainFromAPI(&d))
	}
	return domains, nil
}

func newSubscribedDomainFromAPI(d *api.SubscribedDomain) SubscribedDomain {
	return SubscribedDomain{
		DomainName:                 d.DomainName,
		PwnCount:                   d.PwnCount,
		PwnCountExcludingSpamLists: d.PwnCountExcludingSpamLists,
		PwnCountExcludingSpamListsAtLastSubscriptionRenewal: d.PwnCountExcludingSpamListsAtLastSubscriptionRenewal,
		NextSubscriptionRenewal:                             d.NextSubscriptionRenewal,
	}
}
