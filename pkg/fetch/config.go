package fetch

import "strings"

const (
	FetcherDirect    = "direct"
	FetcherFirecrawl = "firecrawl"

	// DefaultBudget bounds the total documents fetched per request,
	// shared across both fetchers.
	DefaultBudget = 3
	// MaxScrapes bounds how much of the budget Firecrawl may consume.
	MaxScrapes = 2

	DirectMaxChars     = 5_000
	ScrapeMaxChars     = 8_000
	DirectTimeoutSecs  = 10
	ScrapeTimeoutSecs  = 30
	TruncationMarker   = "... [content truncated]"
	scrapeMarkerSuffix = "\n\n" + TruncationMarker
)

// Config controls fetcher credentials and limits.
type Config struct {
	Direct    DirectConfig    `yaml:"direct"`
	Firecrawl FirecrawlConfig `yaml:"firecrawl"`
}

type DirectConfig struct {
	Enabled     *bool  `yaml:"enabled"`
	TimeoutSecs int    `yaml:"timeout_seconds"`
	UserAgent   string `yaml:"user_agent"`
	MaxChars    int    `yaml:"max_chars"`
}

type FirecrawlConfig struct {
	Enabled     *bool  `yaml:"enabled"`
	BaseURL     string `yaml:"base_url"`
	APIKey      string `yaml:"api_key"`
	TimeoutSecs int    `yaml:"timeout_seconds"`
	MaxChars    int    `yaml:"max_chars"`
}

func (c *Config) WithDefaults() *Config {
	if c == nil {
		c = &Config{}
	}
	c.Direct = c.Direct.withDefaults()
	c.Firecrawl = c.Firecrawl.withDefaults()
	return c
}

func (c DirectConfig) withDefaults() DirectConfig {
	if c.TimeoutSecs <= 0 {
		c.TimeoutSecs = DirectTimeoutSecs
	}
	if c.UserAgent == "" {
		c.UserAgent = "Mozilla/5.0 (compatible; GeminiBot/1.0; +http://www.google.com/bot.html)"
	}
	if c.MaxChars <= 0 {
		c.MaxChars = DirectMaxChars
	}
	return c
}

func (c FirecrawlConfig) withDefaults() FirecrawlConfig {
	if c.BaseURL == "" {
		c.BaseURL = "https://api.firecrawl.dev/v1"
	}
	if c.TimeoutSecs <= 0 {
		c.TimeoutSecs = ScrapeTimeoutSecs
	}
	if c.MaxChars <= 0 {
		c.MaxChars = ScrapeMaxChars
	}
	return c
}

// scrapeDomains lists sites that block simple fetches or need
// JavaScript rendering; their URLs prefer the Firecrawl fetcher.
var scrapeDomains = []string{
	"medium.com",
	"linkedin.com",
	"twitter.com",
	"facebook.com",
	"instagram.com",
	"reddit.com",
	"github.com",
	"stackoverflow.com",
	"quora.com",
	"youtube.com",
}

// NeedsScraping reports whether a URL belongs to a domain that prefers
// the managed scraping fetcher.
func NeedsScraping(url string) bool {
	lower := strings.ToLower(url)
	for _, domain := range scrapeDomains {
		if strings.Contains(lower, domain) {
			return true
		}
	}
	return false
}

func isEnabled(flag *bool, fallback bool) bool {
	if flag == nil {
		return fallback
	}
	return *flag
}
