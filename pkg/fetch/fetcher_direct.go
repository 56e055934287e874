package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/dyatlov/go-opengraph/opengraph"

	"github.com/kaelux/assistant/pkg/shared/stringutil"
)

// maxPageBytes bounds how much of a page body is read before parsing.
const maxPageBytes = 2 << 20

type directFetcher struct {
	cfg    DirectConfig
	client *http.Client
}

func newDirectFetcher(cfg DirectConfig) *directFetcher {
	return &directFetcher{
		cfg: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSecs) * time.Second,
		},
	}
}

func (f *directFetcher) Name() string {
	return FetcherDirect
}

func (f *directFetcher) Fetch(ctx context.Context, url string) Document {
	doc := Document{URL: url, Fetcher: FetcherDirect}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(f.cfg.TimeoutSecs)*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		doc.Error = fmt.Sprintf("invalid url: %v", err)
		return doc
	}
	req.Header.Set("User-Agent", f.cfg.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		doc.Error = err.Error()
		return doc
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		doc.Error = fmt.Sprintf("http %d: %s", resp.StatusCode, resp.Status)
		return doc
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		doc.Error = fmt.Sprintf("reading body: %v", err)
		return doc
	}

	html := string(body)
	doc.Title = extractTitle(html)
	text, err := extractText(html)
	if err != nil {
		doc.Error = fmt.Sprintf("parsing html: %v", err)
		return doc
	}

	doc.Text = stringutil.Truncate(text, f.cfg.MaxChars, TruncationMarker)
	doc.Succeeded = true
	return doc
}

// extractTitle prefers og:title, then the <title> tag, then "Untitled".
func extractTitle(html string) string {
	og := opengraph.NewOpenGraph()
	if err := og.ProcessHTML(strings.NewReader(html)); err == nil && og.Title != "" {
		return strings.TrimSpace(og.Title)
	}
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(html)); err == nil {
		if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
			return title
		}
	}
	return "Untitled"
}

// extractText strips script/style/noscript blocks and all markup,
// decodes entities via the parser, and collapses whitespace.
func extractText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}
	doc.Find("script, style, noscript").Remove()

	root := doc.Find("body")
	text := root.Text()
	if strings.TrimSpace(text) == "" {
		text = doc.Text()
	}
	return strings.Join(strings.Fields(text), " "), nil
}
