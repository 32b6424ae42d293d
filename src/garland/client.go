package garland

import (
	"context"
	"encoding/json"
	"fmt"

	httpclient "github.com/loot-scout/loot-scout-go/src/http"
	"github.com/loot-scout/loot-scout-go/src/retry"
)

const (
	Host = "https://www.garlandtools.org"

	// English item document; the wiki is English-only, so localized game
	// clients resolve their display names through this endpoint first.
	itemPathFormat = "/db/doc/item/en/3/%d.json"
)

// itemDocument is the slice of the garland item payload this client needs.
type itemDocument struct {
	Item struct {
		Name string `json:"name"`
	} `json:"item"`
}

// Client looks up canonical English item names by item id from the Garland
// Tools database. Used when the game client runs in another language and
// its display names cannot locate a wiki page.
type Client struct {
	http        httpclient.HTTPClient
	retryConfig retry.Config
}

// NewClient creates a garland client on top of the given HTTP client.
func NewClient(client httpclient.HTTPClient) *Client {
	return &Client{
		http:        client,
		retryConfig: retry.DefaultConfig(),
	}
}

// ItemURL returns the item document URL for an item id.
func ItemURL(itemID uint32) string {
	return Host + fmt.Sprintf(itemPathFormat, itemID)
}

// GetItemName fetches the English name of an item. An item unknown to
// garland yields an empty name, not an error.
func (c *Client) GetItemName(ctx context.Context, itemID uint32) (string, error) {
	resp, err := retry.WithRetry(ctx, c.http, ItemURL(itemID), c.retryConfig)
	if err != nil {
		return "", fmt.Errorf("failed to fetch garland item %d: %w", itemID, err)
	}
	if resp.StatusCode != 200 {
		return "", nil
	}

	var doc itemDocument
	if err := json.Unmarshal(resp.Body, &doc); err != nil {
		return "", fmt.Errorf("failed to parse garland item %d: %w", itemID, err)
	}

	return doc.Item.Name, nil
}
