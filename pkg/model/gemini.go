// Package model wraps the Gemini completion API behind a single-shot
// Generate call.
package model

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.5-flash"

// Config controls the model provider.
type Config struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

func (c *Config) WithDefaults() *Config {
	if c == nil {
		c = &Config{}
	}
	if strings.TrimSpace(c.Model) == "" {
		c.Model = DefaultModel
	}
	return c
}

// ErrNotConfigured marks a missing model credential. It is detected at
// construction, before any external call, and maps to a configuration
// error rather than an upstream failure.
var ErrNotConfigured = errors.New("model: GOOGLE_AI_API_KEY is required")

// Client issues single completion calls against Gemini.
type Client struct {
	client *genai.Client
	model  string
	log    zerolog.Logger
}

// NewClient creates a Gemini client, failing fast when no API key is
// configured.
func NewClient(ctx context.Context, cfg *Config, log zerolog.Logger) (*Client, error) {
	cfg = cfg.WithDefaults()
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrNotConfigured
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("model: creating client: %w", err)
	}
	return &Client{
		client: client,
		model:  cfg.Model,
		log:    log.With().Str("component", "model").Str("model", cfg.Model).Logger(),
	}, nil
}

// Generate sends the composed prompt and returns the first text
// response. Any failure here is fatal to the request.
func (c *Client) Generate(ctx context.Context, promptText string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(promptText), nil)
	if err != nil {
		return "", fmt.Errorf("model: generate: %w", err)
	}
	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", errors.New("model: empty response")
	}
	c.log.Debug().Int("prompt_chars", len(promptText)).Int("response_chars", len(text)).Msg("Completion finished")
	return text, nil
}
