package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kaelux/assistant/pkg/shared/httputil"
	"github.com/kaelux/assistant/pkg/shared/stringutil"
)

type firecrawlFetcher struct {
	cfg FirecrawlConfig
}

func newFirecrawlFetcher(cfg FirecrawlConfig) *firecrawlFetcher {
	return &firecrawlFetcher{cfg: cfg}
}

func (f *firecrawlFetcher) Name() string {
	return FetcherFirecrawl
}

// Configured reports whether the fetcher has credentials. Without them
// the router reroutes scrape-bucket URLs to the direct fetcher.
func (f *firecrawlFetcher) Configured() bool {
	return strings.TrimSpace(f.cfg.APIKey) != ""
}

func (f *firecrawlFetcher) Fetch(ctx context.Context, url string) Document {
	doc := Document{URL: url, Fetcher: FetcherFirecrawl}

	if !f.Configured() {
		doc.Error = "firecrawl api key not configured"
		return doc
	}

	endpoint := strings.TrimRight(f.cfg.BaseURL, "/") + "/scrape"
	payload := map[string]any{
		"url":             url,
		"formats":         []string{"markdown"},
		"onlyMainContent": true,
	}
	data, _, err := httputil.PostJSON(ctx, endpoint, map[string]string{
		"Authorization": "Bearer " + f.cfg.APIKey,
	}, payload, f.cfg.TimeoutSecs)
	if err != nil {
		doc.Error = fmt.Sprintf("firecrawl: %v", err)
		return doc
	}

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Markdown string `json:"markdown"`
			Metadata struct {
				Title string `json:"title"`
			} `json:"metadata"`
		} `json:"data"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		doc.Error = fmt.Sprintf("firecrawl: parsing response: %v", err)
		return doc
	}
	if !resp.Success || resp.Data.Markdown == "" {
		doc.Error = "firecrawl: no content extracted"
		return doc
	}

	doc.Title = strings.TrimSpace(resp.Data.Metadata.Title)
	if doc.Title == "" {
		doc.Title = "Untitled"
	}
	doc.Text = stringutil.Truncate(resp.Data.Markdown, f.cfg.MaxChars, scrapeMarkerSuffix)
	doc.Succeeded = true
	return doc
}
