package session

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds cookie and expiry settings for the session store.
type Config struct {
	CookieName    string `toml:"cookie_name"`
	TTL           string `toml:"ttl"`
	SweepInterval string `toml:"sweep_interval"`
	Secure        bool   `toml:"secure"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	CookieName    string
	TTL           string
	SweepInterval string
	Secure        string
}

// TTLDuration returns TTL as a time.Duration.
func (c *Config) TTLDuration() time.Duration {
	d, _ := time.ParseDuration(c.TTL)
	return d
}

// SweepIntervalDuration returns SweepInterval as a time.Duration.
func (c *Config) SweepIntervalDuration() time.Duration {
	d, _ := time.ParseDuration(c.SweepInterval)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay. Secure always applies.
func (c *Config) Merge(overlay *Config) {
	if overlay.CookieName != "" {
		c.CookieName = overlay.CookieName
	}
	if overlay.TTL != "" {
		c.TTL = overlay.TTL
	}
	if overlay.SweepInterval != "" {
		c.SweepInterval = overlay.SweepInterval
	}
	c.Secure = overlay.Secure
}

func (c *Config) loadDefaults() {
	if c.CookieName == "" {
		c.CookieName = "penguin_session"
	}
	if c.TTL == "" {
		c.TTL = "2h"
	}
	if c.SweepInterval == "" {
		c.SweepInterval = "5m"
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.CookieName != "" {
		if v := os.Getenv(env.CookieName); v != "" {
			c.CookieName = v
		}
	}
	if env.TTL != "" {
		if v := os.Getenv(env.TTL); v != "" {
			c.TTL = v
		}
	}
	if env.SweepInterval != "" {
		if v := os.Getenv(env.SweepInterval); v != "" {
			c.SweepInterval = v
		}
	}
	if env.Secure != "" {
		if v := os.Getenv(env.Secure); v != "" {
			if secure, err := strconv.ParseBool(v); err == nil {
				c.Secure = secure
			}
		}
	}
}

func (c *Config) validate() error {
	ttl, err := time.ParseDuration(c.TTL)
	if err != nil {
		return fmt.Errorf("invalid ttl: %w", err)
	}
	if ttl <= 0 {
		return fmt.Errorf("ttl must be positive: %s", c.TTL)
	}
	sweep, err := time.ParseDuration(c.SweepInterval)
	if err != nil {
		return fmt.Errorf("invalid sweep_interval: %w", err)
	}
	if sweep <= 0 {
		return fmt.Errorf("sweep_interval must be positive: %s", c.SweepInterval)
	}
	return nil
}
