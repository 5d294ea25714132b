package config

import (
	"fmt"
	"os"
	"time"

	"github.com/JaimeStill/penguin/pkg/formatting"
)

const (
	EnvAppBasePath    = "PENGUIN_APP_BASE_PATH"
	EnvAppMaxFormSize = "PENGUIN_APP_MAX_FORM_SIZE"
	EnvAppRevealDelay = "PENGUIN_APP_REVEAL_DELAY"
)

// AppConfig holds settings for the HTML web app.
type AppConfig struct {
	BasePath    string `toml:"base_path"`
	MaxFormSize string `toml:"max_form_size"`
	RevealDelay string `toml:"reveal_delay"`
}

// MaxFormSizeBytes returns MaxFormSize as a byte count.
func (c *AppConfig) MaxFormSizeBytes() int64 {
	size, err := formatting.ParseBytes(c.MaxFormSize)
	if err != nil {
		return 64 * 1024
	}
	return size
}

// RevealDelayDuration returns RevealDelay as a time.Duration.
func (c *AppConfig) RevealDelayDuration() time.Duration {
	d, _ := time.ParseDuration(c.RevealDelay)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *AppConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *AppConfig) Merge(overlay *AppConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxFormSize != "" {
		c.MaxFormSize = overlay.MaxFormSize
	}
	if overlay.RevealDelay != "" {
		c.RevealDelay = overlay.RevealDelay
	}
}

func (c *AppConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/app"
	}
	if c.MaxFormSize == "" {
		c.MaxFormSize = "64KB"
	}
	if c.RevealDelay == "" {
		c.RevealDelay = "4s"
	}
}

func (c *AppConfig) loadEnv() {
	if v := os.Getenv(EnvAppBasePath); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv(EnvAppMaxFormSize); v != "" {
		c.MaxFormSize = v
	}
	if v := os.Getenv(EnvAppRevealDelay); v != "" {
		c.RevealDelay = v
	}
}

func (c *AppConfig) validate() error {
	size, err := formatting.ParseBytes(c.MaxFormSize)
	if err != nil {
		return fmt.Errorf("invalid max_form_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("max_form_size must be positive: %s", c.MaxFormSize)
	}
	d, err := time.ParseDuration(c.RevealDelay)
	if err != nil {
		return fmt.Errorf("invalid reveal_delay: %w", err)
	}
	if d < 0 {
		return fmt.Errorf("reveal_delay must not be negative: %s", c.RevealDelay)
	}
	return nil
}
