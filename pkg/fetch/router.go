package fetch

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Router partitions candidate URLs between the two fetchers and
// enforces the shared fetch budget.
type Router struct {
	cfg       *Config
	direct    *directFetcher
	firecrawl *firecrawlFetcher
	log       zerolog.Logger
}

// NewRouter creates a router from config.
func NewRouter(cfg *Config, log zerolog.Logger) *Router {
	cfg = cfg.WithDefaults()
	return &Router{
		cfg:       cfg,
		direct:    newDirectFetcher(cfg.Direct),
		firecrawl: newFirecrawlFetcher(cfg.Firecrawl),
		log:       log.With().Str("component", "fetch").Logger(),
	}
}

// FetchMany fetches up to budget documents from the candidate URLs,
// concurrently. URLs on scraping-preferred domains go to Firecrawl (at
// most MaxScrapes of the budget); everything else, including the
// scrape bucket when Firecrawl has no credentials, goes to the direct
// fetcher. The returned slice preserves dispatch order and includes
// failed documents; callers filter on Succeeded.
func (r *Router) FetchMany(ctx context.Context, urls []string, budget int) []Document {
	if budget <= 0 {
		budget = DefaultBudget
	}

	useFirecrawl := isEnabled(r.cfg.Firecrawl.Enabled, true) && r.firecrawl.Configured()

	var scrapeBucket, directBucket []string
	for _, url := range urls {
		if useFirecrawl && NeedsScraping(url) {
			scrapeBucket = append(scrapeBucket, url)
		} else {
			directBucket = append(directBucket, url)
		}
	}

	scrapeQuota := MaxScrapes
	if scrapeQuota > budget {
		scrapeQuota = budget
	}
	if len(scrapeBucket) > scrapeQuota {
		// Leftover scrape-bucket URLs compete for direct slots rather
		// than being dropped outright.
		directBucket = append(directBucket, scrapeBucket[scrapeQuota:]...)
		scrapeBucket = scrapeBucket[:scrapeQuota]
	}
	directQuota := budget - len(scrapeBucket)
	if len(directBucket) > directQuota {
		directBucket = directBucket[:directQuota]
	}

	type target struct {
		url     string
		fetcher Fetcher
	}
	targets := make([]target, 0, len(scrapeBucket)+len(directBucket))
	for _, url := range scrapeBucket {
		targets = append(targets, target{url: url, fetcher: r.firecrawl})
	}
	for _, url := range directBucket {
		targets = append(targets, target{url: url, fetcher: r.direct})
	}
	if len(targets) == 0 {
		return nil
	}

	docs := make([]Document, len(targets))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, t := range targets {
		group.Go(func() error {
			docs[i] = t.fetcher.Fetch(groupCtx, t.url)
			if !docs[i].Succeeded {
				r.log.Debug().
					Str("url", t.url).
					Str("fetcher", t.fetcher.Name()).
					Str("error", docs[i].Error).
					Msg("Page fetch failed")
			}
			return nil
		})
	}
	_ = group.Wait()

	return docs
}

// Successful filters documents to those that fetched non-empty content.
func Successful(docs []Document) []Document {
	var out []Document
	for _, doc := range docs {
		if doc.Succeeded && doc.Text != "" {
			out = append(out, doc)
		}
	}
	return out
}
