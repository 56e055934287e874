// Package assistant orchestrates one chat request: it gathers
// repository documentation and web content best-effort, composes a
// single prompt, and calls the model exactly once. Every gathering
// branch absorbs its own failures; only the model call can fail the
// request.
package assistant

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/kaelux/assistant/pkg/fetch"
	"github.com/kaelux/assistant/pkg/gitdocs"
	"github.com/kaelux/assistant/pkg/model"
	"github.com/kaelux/assistant/pkg/prompt"
	"github.com/kaelux/assistant/pkg/relevance"
	"github.com/kaelux/assistant/pkg/search"
)

// Tool names recorded in a Reply when the source contributed content.
const (
	ToolSearch = "search"
	ToolScrape = "scrape"
	ToolDocs   = "docs"
)

// ErrEmptyMessage rejects requests without a message.
var ErrEmptyMessage = errors.New("message is required")

// Generator issues one completion call.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// DocsClient looks up repository documentation.
type DocsClient interface {
	FetchDocs(ctx context.Context, owner, repo string) gitdocs.Doc
	SearchCode(ctx context.Context, owner, repo, query string) gitdocs.CodeSearch
}

// Searcher performs one web search.
type Searcher interface {
	Search(ctx context.Context, query string) (*search.Response, error)
}

// PageFetcher fetches up to budget candidate URLs.
type PageFetcher interface {
	FetchMany(ctx context.Context, urls []string, budget int) []fetch.Document
}

// Reply is the outcome of one request, including which sources
// actually contributed to the prompt.
type Reply struct {
	Text          string
	UsedTools     []string
	UsedWebSearch bool
	UsedGitMCP    bool
	UsedFirecrawl bool
}

// Orchestrator wires the pipeline for one request at a time. It holds
// no per-request state; a single instance serves concurrent requests.
type Orchestrator struct {
	generator Generator
	searcher  Searcher
	fetcher   PageFetcher
	docs      DocsClient
	now       func() time.Time
	log       zerolog.Logger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithSearcher enables the web search branch.
func WithSearcher(s Searcher) Option {
	return func(o *Orchestrator) { o.searcher = s }
}

// WithPageFetcher enables content fetching for search results.
func WithPageFetcher(f PageFetcher) Option {
	return func(o *Orchestrator) { o.fetcher = f }
}

// WithDocsClient enables the repository documentation branch.
func WithDocsClient(d DocsClient) Option {
	return func(o *Orchestrator) { o.docs = d }
}

// WithClock overrides the clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) { o.now = now }
}

// New creates an orchestrator. A nil generator is allowed and makes
// every Respond call fail with model.ErrNotConfigured before any
// external call is attempted.
func New(generator Generator, log zerolog.Logger, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		generator: generator,
		now:       time.Now,
		log:       log.With().Str("component", "assistant").Logger(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

type docsOutcome struct {
	repository string
	text       string
	code       string
}

type searchOutcome struct {
	block     string
	pages     []prompt.Page
	firecrawl bool
}

// Respond handles one message end to end.
func (o *Orchestrator) Respond(ctx context.Context, message string) (*Reply, error) {
	if strings.TrimSpace(message) == "" {
		return nil, ErrEmptyMessage
	}
	// Configuration is checked before any external call.
	if o.generator == nil {
		return nil, model.ErrNotConfigured
	}

	var (
		wg      sync.WaitGroup
		docsOut docsOutcome
		srchOut searchOutcome
	)

	// The documentation branch and the search+fetch branch have no
	// data dependency; run them concurrently and join before
	// composition.
	wg.Add(2)
	go func() {
		defer wg.Done()
		docsOut = o.docsBranch(ctx, message)
	}()
	go func() {
		defer wg.Done()
		srchOut = o.searchBranch(ctx, message)
	}()
	wg.Wait()

	in := prompt.Input{
		Message:        message,
		Now:            o.now(),
		DocsRepository: docsOut.repository,
		DocsText:       docsOut.text,
		CodeResults:    docsOut.code,
		SearchBlock:    srchOut.block,
		Pages:          srchOut.pages,
	}

	text, err := o.generator.Generate(ctx, prompt.Compose(in))
	if err != nil {
		return nil, err
	}

	reply := &Reply{Text: text}
	if srchOut.block != "" {
		reply.UsedTools = append(reply.UsedTools, ToolSearch)
		reply.UsedWebSearch = true
	}
	if len(srchOut.pages) > 0 {
		reply.UsedTools = append(reply.UsedTools, ToolScrape)
		reply.UsedFirecrawl = srchOut.firecrawl
	}
	if docsOut.text != "" {
		reply.UsedTools = append(reply.UsedTools, ToolDocs)
		reply.UsedGitMCP = true
	}
	return reply, nil
}

// docsBranch resolves a repository reference and fetches its
// documentation. Every failure degrades to an empty outcome.
func (o *Orchestrator) docsBranch(ctx context.Context, message string) docsOutcome {
	var out docsOutcome
	if o.docs == nil || !relevance.ShouldUseDocs(message) {
		return out
	}
	ref := gitdocs.ExtractRepository(message)
	if ref == nil {
		return out
	}

	doc := o.docs.FetchDocs(ctx, ref.Owner, ref.Repo)
	if !doc.Succeeded {
		o.log.Warn().Str("repository", ref.String()).Str("error", doc.Error).Msg("Documentation lookup failed")
		return out
	}
	out.repository = doc.Repository
	out.text = doc.Text

	if wantsCodeSearch(message) {
		code := o.docs.SearchCode(ctx, ref.Owner, ref.Repo, message)
		if code.Succeeded {
			out.code = code.Results
		} else {
			o.log.Debug().Str("repository", ref.String()).Str("error", code.Error).Msg("Code search returned nothing")
		}
	}
	return out
}

// searchBranch runs the web search and fetches top result pages.
// Every failure degrades to an empty outcome.
func (o *Orchestrator) searchBranch(ctx context.Context, message string) searchOutcome {
	var out searchOutcome
	if o.searcher == nil || !relevance.ShouldSearch(message) {
		return out
	}

	resp, err := o.searcher.Search(ctx, message)
	if err != nil {
		o.log.Warn().Err(err).Msg("Web search failed")
		return out
	}
	if resp == nil || resp.NoResults {
		return out
	}
	out.block = search.FormatResults(resp)

	if o.fetcher == nil {
		return out
	}
	docs := fetch.Successful(o.fetcher.FetchMany(ctx, resp.CandidateURLs(), fetch.DefaultBudget))
	for _, doc := range docs {
		out.pages = append(out.pages, prompt.Page{URL: doc.URL, Title: doc.Title, Text: doc.Text})
		if doc.Fetcher == fetch.FetcherFirecrawl {
			out.firecrawl = true
		}
	}
	return out
}

var codeSearchHints = []string{"how does", "how to", "implementation", "example"}

func wantsCodeSearch(message string) bool {
	lower := strings.ToLower(message)
	for _, hint := range codeSearchHints {
		if strings.Contains(lower, hint) {
			return true
		}
	}
	return false
}
