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

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "GOAT_"

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) from path, or GOAT_CONFIG when path is empty
//  3. env (prefix GOAT_)
func Load(_ context.Context, path ...string) (*Config, error) {
	base := New()

	k := koanf.New(".")

	cfgPath := os.Getenv(EnvPrefix + "CONFIG")
	if len(path) > 0 && path[0] != "" {
		cfgPath = path[0]
	}
	if cfgPath != "" {
		if err := k.Load(file.Provider(cfgPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoadConfig, cfgPath, err)
		}
	}

	// GOAT_STATS_PATH -> stats_path. Keys stay flat to match the koanf tags.
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "goat_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: env: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the invariants a run depends on.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.StatsPath) == "" {
		return fmt.Errorf("%w: stats_path must not be empty", ErrInvalidConfig)
	}
	if c.RecentSeasonSpan < 1 {
		return fmt.Errorf("%w: recent_season_span must be at least 1", ErrInvalidConfig)
	}
	if c.RecentLimit < 0 {
		return fmt.Errorf("%w: recent_limit must not be negative", ErrInvalidConfig)
	}
	if c.CareerOutput == "" || c.RecentOutput == "" {
		return fmt.Errorf("%w: output file names must not be empty", ErrInvalidConfig)
	}
	return nil
}
