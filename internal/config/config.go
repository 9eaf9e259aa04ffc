// Package config handles the persistent application configuration at
// ~/.geopulse/config.json.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
)

// Config is the persistent application configuration
type Config struct {
	Feeds   FeedsConfig   `json:"feeds"`
	Scoring ScoringConfig `json:"scoring"`
	Market  MarketConfig  `json:"market"`
}

// FeedsConfig holds feed fetching settings
type FeedsConfig struct {
	TimeoutSeconds int `json:"timeout_seconds"`
	// MaxItemsPerFeed caps how many items each source contributes
	MaxItemsPerFeed int `json:"max_items_per_feed"`
}

// ScoringConfig holds sector scoring tunables
type ScoringConfig struct {
	TimeWindowHours int `json:"time_window_hours"`
	MaxTopNews      int `json:"max_top_news"`
}

// MarketConfig holds market data settings
type MarketConfig struct {
	Enabled        bool `json:"enabled"`
	TimeoutSeconds int  `json:"timeout_seconds"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Feeds: FeedsConfig{
			TimeoutSeconds:  15,
			MaxItemsPerFeed: 50,
		},
		Scoring: ScoringConfig{
			TimeWindowHours: 12,
			MaxTopNews:      10,
		},
		Market: MarketConfig{
			Enabled:        true,
			TimeoutSeconds: 10,
		},
	}
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".geopulse", "config.json")
}

// Load reads config from disk, or returns defaults. A corrupt file
// falls back to defaults rather than failing startup.
func Load() (*Config, error) {
	path := ConfigPath()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			cfg.ApplyEnv()
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), nil
	}

	cfg.normalize()
	cfg.ApplyEnv()
	return &cfg, nil
}

// Save writes config to disk
func (c *Config) Save() error {
	path := ConfigPath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides settings from environment variables.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("GEOPULSE_FEED_TIMEOUT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Feeds.TimeoutSeconds = n
		}
	}
	if v := os.Getenv("GEOPULSE_TIME_WINDOW_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Scoring.TimeWindowHours = n
		}
	}
	if v := os.Getenv("GEOPULSE_MARKET_DISABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil && b {
			c.Market.Enabled = false
		}
	}
}

// normalize backfills zero values left by older config files.
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.Feeds.TimeoutSeconds <= 0 {
		c.Feeds.TimeoutSeconds = def.Feeds.TimeoutSeconds
	}
	if c.Feeds.MaxItemsPerFeed <= 0 {
		c.Feeds.MaxItemsPerFeed = def.Feeds.MaxItemsPerFeed
	}
	if c.Scoring.TimeWindowHours <= 0 {
		c.Scoring.TimeWindowHours = def.Scoring.TimeWindowHours
	}
	if c.Scoring.MaxTopNews <= 0 {
		c.Scoring.MaxTopNews = def.Scoring.MaxTopNews
	}
	if c.Market.TimeoutSeconds <= 0 {
		c.Market.TimeoutSeconds = def.Market.TimeoutSeconds
	}
}
