package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if RANKWATCH_CONFIG is set
//  3. env (prefix RANKWATCH_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("RANKWATCH_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: RANKWATCH_TEAM_ID, RANKWATCH_WEBHOOK_URL, ...
	// Keys map to the koanf tags on the struct; underscores preserved.
	envProvider := env.Provider("RANKWATCH_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "rankwatch_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate checks the fields a run cannot proceed without.
func (c *Config) validate() error {
	if c.TeamID <= 0 {
		return fmt.Errorf("%w: team_id must be positive", ErrInvalidConfig)
	}
	if c.WebhookURL == "" {
		return fmt.Errorf("%w: webhook_url not set", ErrInvalidConfig)
	}
	if c.WebhookPrefix != "" && !strings.HasPrefix(c.WebhookURL, c.WebhookPrefix) {
		return fmt.Errorf("%w: webhook_url does not look like a %s webhook", ErrInvalidConfig, c.WebhookPrefix)
	}
	if c.SnapshotPath == "" {
		return fmt.Errorf("%w: snapshot_path must not be empty", ErrInvalidConfig)
	}
	return nil
}
