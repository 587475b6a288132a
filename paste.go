package hibp

import (
	"context"
)

// Paste represents a paste containing breached data.
type Paste struct {
	Source     string
	ID         string
	Title      string
	Date       string
	EmailCount int
}

// GetAccountPastes returns all pastes for an email address. Requires an
// API key. An account found in no pastes yields an empty slice, not an
// error.
func (c *Client) GetAccountPastes(ctx context.Context, account string) ([]Paste, error) {
	raw, err := c.api.PasteAccount(ctx, account)
	if err != nil {
		if isNotFound(err) {
			return []Paste{}, nil
		}
		return nil, wrapError(err)
	}

	pastes := make([]Paste, 0, len(raw))
	for _, p := range raw {
		pastes = append(pastes, Paste{
			Source:     p.Source,
			ID:         p.ID,
			Title:      p.Title,
			Date:       p.Date,
			EmailCount: p.EmailCount,
		})
	}
	return pastes, nil
}
