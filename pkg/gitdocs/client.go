package gitdocs

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kaelux/assistant/pkg/shared/httputil"
	"github.com/kaelux/assistant/pkg/shared/stringutil"
)

const (
	DefaultBaseURL     = "https://gitmcp.io"
	DefaultTimeoutSecs = 30
	DocsMaxChars       = 10_000

	truncationMarker = "\n\n... [content truncated]"
	maxCodeResults   = 5
)

// Config controls the GitMCP client.
type Config struct {
	BaseURL     string `yaml:"base_url"`
	TimeoutSecs int    `yaml:"timeout_seconds"`
	UserAgent   string `yaml:"user_agent"`
}

func (c *Config) WithDefaults() *Config {
	if c == nil {
		c = &Config{}
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.TimeoutSecs <= 0 {
		c.TimeoutSecs = DefaultTimeoutSecs
	}
	if c.UserAgent == "" {
		c.UserAgent = "Teremaailm-AI/1.0"
	}
	return c
}

// Doc is the outcome of a documentation lookup. Failures are absorbed
// into the struct; FetchDocs never returns an error.
type Doc struct {
	Repository string
	Text       string
	Succeeded  bool
	Error      string
}

// CodeSearch is the outcome of a repository code search.
type CodeSearch struct {
	Repository string
	Results    string
	Succeeded  bool
	Error      string
}

// Client fetches repository documentation from GitMCP.
type Client struct {
	cfg *Config
	log zerolog.Logger
}

// NewClient creates a GitMCP client.
func NewClient(cfg *Config, log zerolog.Logger) *Client {
	return &Client{
		cfg: cfg.WithDefaults(),
		log: log.With().Str("component", "gitdocs").Logger(),
	}
}

// FetchDocs retrieves documentation for a repository, capped at
// DocsMaxChars.
func (c *Client) FetchDocs(ctx context.Context, owner, repo string) Doc {
	doc := Doc{Repository: owner + "/" + repo}

	url := fmt.Sprintf("%s/%s/%s", strings.TrimRight(c.cfg.BaseURL, "/"), owner, repo)
	data, _, err := httputil.GetJSON(ctx, url, map[string]string{
		"Accept":     "application/json",
		"User-Agent": c.cfg.UserAgent,
	}, c.cfg.TimeoutSecs)
	if err != nil {
		doc.Error = fmt.Sprintf("gitmcp: %v", err)
		return doc
	}

	var resp struct {
		Documentation string `json:"documentation"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		doc.Error = fmt.Sprintf("gitmcp: parsing response: %v", err)
		return doc
	}
	if resp.Documentation == "" {
		doc.Error = "gitmcp: no documentation found"
		return doc
	}

	doc.Text = stringutil.Truncate(resp.Documentation, DocsMaxChars, truncationMarker)
	doc.Succeeded = true
	return doc
}

// SearchCode searches a repository's code through GitMCP and formats
// the top matches as a readable list.
func (c *Client) SearchCode(ctx context.Context, owner, repo, query string) CodeSearch {
	result := CodeSearch{Repository: owner + "/" + repo}

	url := fmt.Sprintf("%s/%s/%s/search", strings.TrimRight(c.cfg.BaseURL, "/"), owner, repo)
	data, _, err := httputil.PostJSON(ctx, url, map[string]string{
		"Accept":     "application/json",
		"User-Agent": c.cfg.UserAgent,
	}, map[string]string{
		"query": query,
		"type":  "code",
	}, c.cfg.TimeoutSecs)
	if err != nil {
		result.Error = fmt.Sprintf("gitmcp search: %v", err)
		return result
	}

	var resp struct {
		Results []struct {
			File    string `json:"file"`
			Snippet string `json:"snippet"`
		} `json:"results"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		result.Error = fmt.Sprintf("gitmcp search: parsing response: %v", err)
		return result
	}
	if len(resp.Results) == 0 {
		result.Error = "gitmcp search: no results"
		return result
	}

	entries := resp.Results
	if len(entries) > maxCodeResults {
		entries = entries[:maxCodeResults]
	}
	var b strings.Builder
	for i, entry := range entries {
		file := entry.File
		if file == "" {
			file = "Unknown file"
		}
		snippet := entry.Snippet
		if snippet == "" {
			snippet = "No snippet available"
		}
		fmt.Fprintf(&b, "%d. %s\n   %s\n", i+1, file, snippet)
	}
	result.Results = b.String()
	result.Succeeded = true
	return result
}
