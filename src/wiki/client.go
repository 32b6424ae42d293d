package wiki

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	httpclient "github.com/loot-scout/loot-scout-go/src/http"
	"github.com/loot-scout/loot-scout-go/src/retry"
	"github.com/loot-scout/loot-scout-go/src/types"
)

// Client fetches one item's wiki article and runs the parser over it.
type Client struct {
	http        httpclient.HTTPClient
	parser      *Parser
	retryConfig retry.Config
}

// NewClient creates a wiki client on top of the given HTTP client.
func NewClient(client httpclient.HTTPClient) *Client {
	return &Client{
		http:        client,
		parser:      NewParser(),
		retryConfig: retry.DefaultConfig(),
	}
}

// PageURL builds the article URL for an item name, after alias correction.
// The wiki titles pages with underscores in place of spaces.
func PageURL(pageName string) string {
	return Host + ArticlePath + url.PathEscape(strings.ReplaceAll(pageName, " ", "_"))
}

// LookupLoot fetches and parses the loot page for subjectName. Fetch
// failures are returned as errors; parse trouble degrades to an empty
// result, matching the parser's no-crash contract.
func (c *Client) LookupLoot(ctx context.Context, subjectName string) (*types.LootResult, error) {
	pageName := ResolvePageName(subjectName)
	pageURL := PageURL(pageName)

	resp, err := retry.WithRetry(ctx, c.http, pageURL, c.retryConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch wiki page for %q: %w", pageName, err)
	}
	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("wiki returned status %d for %q", resp.StatusCode, pageName)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body))
	if err != nil {
		slog.Error("failed to parse wiki page", "subject", pageName, "error", err)
		return types.NewLootResult(pageName), nil
	}

	return c.parser.Parse(ctx, doc, pageName), nil
}
