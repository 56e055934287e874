package search

import "strings"

const (
	ProviderBrave      = "brave"
	ProviderDuckDuckGo = "ddg"

	DefaultSearchCount = 5
	MaxSearchCount     = 10
	DefaultTimeoutSecs = 30
)

// Config controls search provider selection and credentials.
type Config struct {
	Provider  string   `yaml:"provider"`
	Fallbacks []string `yaml:"fallbacks"`

	Brave BraveConfig `yaml:"brave"`
	DDG   DDGConfig   `yaml:"ddg"`
}

type BraveConfig struct {
	Enabled     *bool  `yaml:"enabled"`
	BaseURL     string `yaml:"base_url"`
	APIKey      string `yaml:"api_key"`
	TimeoutSecs int    `yaml:"timeout_seconds"`
}

type DDGConfig struct {
	Enabled     *bool `yaml:"enabled"`
	TimeoutSecs int   `yaml:"timeout_seconds"`
}

func (c *Config) WithDefaults() *Config {
	if c == nil {
		c = &Config{}
	}
	// One provider by default: a request issues at most one search
	// call unless the operator opts into fallbacks.
	if strings.TrimSpace(c.Provider) == "" {
		c.Provider = ProviderBrave
	}
	c.Brave = c.Brave.withDefaults()
	c.DDG = c.DDG.withDefaults()
	return c
}

func (c BraveConfig) withDefaults() BraveConfig {
	if c.BaseURL == "" {
		c.BaseURL = "https://api.search.brave.com/res/v1/web/search"
	}
	if c.TimeoutSecs <= 0 {
		c.TimeoutSecs = DefaultTimeoutSecs
	}
	return c
}

func (c DDGConfig) withDefaults() DDGConfig {
	if c.TimeoutSecs <= 0 {
		c.TimeoutSecs = DefaultTimeoutSecs
	}
	return c
}

func isEnabled(flag *bool, fallback bool) bool {
	if flag == nil {
		return fallback
	}
	return *flag
}

// Configured reports whether at least one provider can be registered.
func (c *Config) Configured() bool {
	cfg := c.WithDefaults()
	if isEnabled(cfg.Brave.Enabled, true) && strings.TrimSpace(cfg.Brave.APIKey) != "" {
		return true
	}
	for _, name := range cfg.order() {
		if name == ProviderDuckDuckGo && isEnabled(cfg.DDG.Enabled, true) {
			return true
		}
	}
	return false
}
