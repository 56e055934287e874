package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Fatalf("unexpected default port: %d", cfg.Server.Port)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if cfg.Model.Model == "" {
		t.Fatalf("expected a default model")
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
server:
  port: 9999
  admin_token: tok
logging:
  level: debug
search:
  brave:
    api_key: brave-key
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9999 || cfg.Server.AdminToken != "tok" {
		t.Fatalf("unexpected server config: %+v", cfg.Server)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected level: %q", cfg.Logging.Level)
	}
	if cfg.Search.Brave.APIKey != "brave-key" {
		t.Fatalf("unexpected brave key: %q", cfg.Search.Brave.APIKey)
	}
	if !cfg.Search.Configured() {
		t.Fatalf("expected search to be configured")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 9000\n"), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	t.Setenv("PORT", "9001")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("GOOGLE_AI_API_KEY", "g-key")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9001 {
		t.Fatalf("env port should win: %d", cfg.Server.Port)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("env level should win: %q", cfg.Logging.Level)
	}
	if cfg.Model.APIKey != "g-key" {
		t.Fatalf("env api key should apply: %q", cfg.Model.APIKey)
	}
}
