package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// ErrMissingAPIKey is returned when ANTHROPIC_API_KEY is not set. It is
// fatal and must be checked before any repository access happens.
var ErrMissingAPIKey = errors.New("ANTHROPIC_API_KEY environment variable not set")

type Config struct {
	APIKey      string  `koanf:"api_key"`
	Model       string  `koanf:"model"`
	MaxTokens   int     `koanf:"max_tokens"`
	Temperature float64 `koanf:"temperature"`
	BaseURL     string  `koanf:"base_url"`
}

// Defaults returns the fixed generation parameters used when no override
// is present in the environment.
func Defaults() *Config {
	return &Config{
		Model:       "claude-3-5-sonnet-latest",
		MaxTokens:   1000,
		Temperature: 0.7,
		BaseURL:     "https://api.anthropic.com",
	}
}

// Load reads configuration from the environment.
// Loading order: defaults → LLM_COMMIT_* overrides → ANTHROPIC_API_KEY.
// LLM_COMMIT_MAX_TOKENS → max_tokens, and so on.
func Load() (*Config, error) {
	k := koanf.New(".")

	cfg := Defaults()

	err := k.Load(env.Provider("LLM_COMMIT_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "LLM_COMMIT_"))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	err = k.Load(env.Provider("ANTHROPIC_API_KEY", ".", func(string) string {
		return "api_key"
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	return cfg, nil
}
