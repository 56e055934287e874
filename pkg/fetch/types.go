// Package fetch retrieves readable page content for the augmentation
// pipeline. Two fetchers share one contract: a lightweight direct HTTP
// fetch for plain pages and a Firecrawl scrape for JavaScript-heavy
// sites. Neither returns an error; every failure is absorbed into the
// returned Document so callers filter on Succeeded instead of catching.
package fetch

import "context"

// Document is the normalized output of a single page fetch.
type Document struct {
	URL       string
	Title     string
	Text      string
	Fetcher   string
	Succeeded bool
	Error     string
}

// Fetcher retrieves one URL. Implementations absorb all failures.
type Fetcher interface {
	Name() string
	Fetch(ctx context.Context, url string) Document
}
