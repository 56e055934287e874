// Package config loads the service configuration from an optional YAML
// file with environment-variable overlay, the same layering the
// provider configs use internally.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kaelux/assistant/pkg/fetch"
	"github.com/kaelux/assistant/pkg/gitdocs"
	"github.com/kaelux/assistant/pkg/model"
	"github.com/kaelux/assistant/pkg/search"
	"github.com/kaelux/assistant/pkg/server"
	"github.com/kaelux/assistant/pkg/shared/stringutil"
)

// Config is the root service configuration.
type Config struct {
	Server  server.Config  `yaml:"server"`
	Logging LoggingConfig  `yaml:"logging"`
	Model   model.Config   `yaml:"model"`
	Search  search.Config  `yaml:"search"`
	Fetch   fetch.Config   `yaml:"fetch"`
	Docs    gitdocs.Config `yaml:"docs"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "console" or "json"
}

func (c LoggingConfig) withDefaults() LoggingConfig {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "console"
	}
	return c
}

// Load reads the config file at path (missing file is fine — env vars
// alone are a valid configuration) and applies environment defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config: %w", err)
			}
		}
	}
	return cfg.applyEnv(), nil
}

func (c *Config) applyEnv() *Config {
	c.Logging = c.Logging.withDefaults()
	c.Logging.Level = stringutil.EnvOr(c.Logging.Level, os.Getenv("LOG_LEVEL"))

	c.Server = *(&c.Server).WithDefaults()
	c.Server.Host = stringutil.EnvOr(c.Server.Host, os.Getenv("HOST"))
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		if parsed, err := strconv.Atoi(port); err == nil && parsed > 0 {
			c.Server.Port = parsed
		}
	}
	c.Server.AdminToken = stringutil.EnvOr(c.Server.AdminToken, os.Getenv("ADMIN_TOKEN"))

	c.Model = *(&c.Model).WithDefaults()
	c.Model.APIKey = stringutil.EnvOr(c.Model.APIKey, os.Getenv("GOOGLE_AI_API_KEY"))
	c.Model.Model = stringutil.EnvOr(c.Model.Model, os.Getenv("GOOGLE_AI_MODEL"))

	c.Search = *search.ApplyEnvDefaults(&c.Search)
	c.Fetch = *fetch.ApplyEnvDefaults(&c.Fetch)
	c.Docs = *(&c.Docs).WithDefaults()

	return c
}
