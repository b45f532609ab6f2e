// Package config manages application configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"ytcomments/retry"
)

// Config holds all application configuration for comment collection runs.
type Config struct {
	// APIKey is the YouTube Data API credential. Required. Comes from the
	// environment (or a .env file), never from the config file.
	APIKey string `json:"-"`

	// PerVideoLimit caps top-level comments fetched per video (100-500).
	PerVideoLimit int `json:"per_video_limit"`
	// MaxVideos limits the number of videos enumerated per channel (0 = all).
	MaxVideos int `json:"max_videos"`
	// OutputDir is where per-channel artifacts are written.
	OutputDir string `json:"output_dir"`
	// ChannelsFile is the channel registry used by batch runs.
	ChannelsFile string `json:"channels_file"`
	// TopLiked is how many most-liked comments the top slice keeps.
	TopLiked int `json:"top_liked"`

	// RequestsPerSecond paces API calls (0 = no pacing).
	RequestsPerSecond float64 `json:"requests_per_second"`

	// MaxRetries is the retry ceiling for transient API failures.
	MaxRetries int `json:"max_retries"`
	// InitialBackoff is the first retry delay.
	InitialBackoff time.Duration `json:"initial_backoff"`
	// MaxBackoff caps retry delays.
	MaxBackoff time.Duration `json:"max_backoff"`
	// BackoffMultiplier is the exponential backoff multiplier (must be > 1).
	BackoffMultiplier float64 `json:"backoff_multiplier"`
}

// apiKeyVars are the environment variables checked for the API credential,
// in order.
var apiKeyVars = []string{"YOUTUBE_API_KEY", "YOUTUBE_APIKEY", "YT_API_KEY"}

// DefaultConfig returns configuration with safe defaults. The API key has
// no default.
func DefaultConfig() *Config {
	return &Config{
		PerVideoLimit:     200,
		MaxVideos:         0,
		OutputDir:         "data",
		ChannelsFile:      "channels.json",
		TopLiked:          100,
		RequestsPerSecond: 10,
		MaxRetries:        5,
		InitialBackoff:    2 * time.Second,
		MaxBackoff:        30 * time.Second,
		BackoffMultiplier: 2.0,
	}
}

// Load loads configuration from a .env file, environment variables, and an
// optional config file. Priority: env vars > config file > defaults.
func Load() (*Config, error) {
	// .env is optional; real environment variables win over its contents.
	_ = godotenv.Load()

	cfg := DefaultConfig()

	if err := cfg.loadFromFile(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	cfg.loadFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFromFile attempts to load config from ytcomments.json in the current
// directory or the user config directory.
func (c *Config) loadFromFile() error {
	paths := []string{
		"ytcomments.json",
		filepath.Join(os.Getenv("HOME"), ".config", "ytcomments", "ytcomments.json"),
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return err
		}

		if err := json.Unmarshal(data, c); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		return nil
	}

	return os.ErrNotExist
}

// loadFromEnv overrides config with environment variables.
func (c *Config) loadFromEnv() {
	for _, key := range apiKeyVars {
		if v := os.Getenv(key); v != "" {
			c.APIKey = v
			break
		}
	}
	if v := os.Getenv("YTCOMMENTS_PER_VIDEO"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.PerVideoLimit = n
		}
	}
	if v := os.Getenv("YTCOMMENTS_MAX_VIDEOS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxVideos = n
		}
	}
	if v := os.Getenv("YTCOMMENTS_OUTPUT_DIR"); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv("YTCOMMENTS_CHANNELS_FILE"); v != "" {
		c.ChannelsFile = v
	}
	if v := os.Getenv("YTCOMMENTS_TOP_LIKED"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.TopLiked = n
		}
	}
	if v := os.Getenv("YTCOMMENTS_REQUESTS_PER_SECOND"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.RequestsPerSecond = f
		}
	}
	if v := os.Getenv("YTCOMMENTS_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxRetries = n
		}
	}
	if v := os.Getenv("YTCOMMENTS_INITIAL_BACKOFF"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.InitialBackoff = d
		}
	}
	if v := os.Getenv("YTCOMMENTS_MAX_BACKOFF"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.MaxBackoff = d
		}
	}
}

// Validate checks that configuration values are valid and consistent.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("api key not set (checked %v)", apiKeyVars)
	}
	if c.PerVideoLimit < 100 || c.PerVideoLimit > 500 {
		return fmt.Errorf("per_video_limit must be between 100 and 500, got %d", c.PerVideoLimit)
	}
	if c.MaxVideos < 0 {
		return fmt.Errorf("max_videos must be non-negative")
	}
	if c.TopLiked <= 0 {
		return fmt.Errorf("top_liked must be positive")
	}
	if c.RequestsPerSecond < 0 {
		return fmt.Errorf("requests_per_second must be non-negative")
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("max_retries must be non-negative")
	}
	if c.InitialBackoff <= 0 {
		return fmt.Errorf("initial_backoff must be positive")
	}
	if c.MaxBackoff < c.InitialBackoff {
		return fmt.Errorf("max_backoff must be >= initial_backoff")
	}
	if c.BackoffMultiplier <= 1 {
		return fmt.Errorf("backoff_multiplier must be > 1")
	}
	return nil
}

// Retry returns the retry schedule described by the config.
func (c *Config) Retry() retry.Config {
	return retry.Config{
		MaxRetries:     c.MaxRetries,
		InitialBackoff: c.InitialBackoff,
		MaxBackoff:     c.MaxBackoff,
		Multiplier:     c.BackoffMultiplier,
	}
}
