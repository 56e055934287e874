package fetch

import (
	"os"

	"github.com/kaelux/assistant/pkg/shared/stringutil"
)

// ConfigFromEnv builds a fetch config using environment variables.
func ConfigFromEnv() *Config {
	cfg := (&Config{}).WithDefaults()
	cfg.Firecrawl.APIKey = stringutil.EnvOr(cfg.Firecrawl.APIKey, os.Getenv("FIRECRAWL_API_KEY"))
	cfg.Firecrawl.BaseURL = stringutil.EnvOr(cfg.Firecrawl.BaseURL, os.Getenv("FIRECRAWL_BASE_URL"))
	return cfg
}

// ApplyEnvDefaults fills empty config fields from environment variables.
func ApplyEnvDefaults(cfg *Config) *Config {
	if cfg == nil {
		return ConfigFromEnv()
	}
	current := cfg.WithDefaults()
	envCfg := ConfigFromEnv()

	if current.Firecrawl.APIKey == "" {
		current.Firecrawl.APIKey = envCfg.Firecrawl.APIKey
	}
	if current.Firecrawl.BaseURL == "" {
		current.Firecrawl.BaseURL = envCfg.Firecrawl.BaseURL
	}
	return current
}
