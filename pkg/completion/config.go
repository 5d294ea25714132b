package completion

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"time"
)

// Supported providers.
const (
	ProviderOpenAI = "openai"
	ProviderAzure  = "azure"
	ProviderGemini = "gemini"
)

// Azure authentication modes.
const (
	AuthAPIKey  = "api_key"
	AuthAzureAD = "azure_ad"
)

var providers = []string{ProviderOpenAI, ProviderAzure, ProviderGemini}

// Config selects and parameterizes the completion provider.
type Config struct {
	Provider      string   `toml:"provider"`
	BaseURL       string   `toml:"base_url"`
	Token         string   `toml:"token"`
	Model         string   `toml:"model"`
	Deployment    string   `toml:"deployment"`
	APIVersion    string   `toml:"api_version"`
	AuthType      string   `toml:"auth_type"`
	Temperature   *float32 `toml:"temperature"`
	MaxTokens     int      `toml:"max_tokens"`
	Timeout       string   `toml:"timeout"`
	MaxConcurrent int      `toml:"max_concurrent"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	Provider      string
	BaseURL       string
	Token         string
	Model         string
	Deployment    string
	APIVersion    string
	AuthType      string
	Temperature   string
	MaxTokens     string
	Timeout       string
	MaxConcurrent string
}

// TimeoutDuration returns Timeout as a time.Duration.
func (c *Config) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// TemperatureValue returns the configured sampling temperature.
func (c *Config) TemperatureValue() float32 {
	if c.Temperature == nil {
		return DefaultTemperature
	}
	return *c.Temperature
}

// DefaultTemperature is the sampling temperature used when none is configured.
const DefaultTemperature float32 = 0.6

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	c.loadProviderDefaults()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.Provider != "" {
		c.Provider = overlay.Provider
	}
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
	if overlay.Token != "" {
		c.Token = overlay.Token
	}
	if overlay.Model != "" {
		c.Model = overlay.Model
	}
	if overlay.Deployment != "" {
		c.Deployment = overlay.Deployment
	}
	if overlay.APIVersion != "" {
		c.APIVersion = overlay.APIVersion
	}
	if overlay.AuthType != "" {
		c.AuthType = overlay.AuthType
	}
	if overlay.Temperature != nil {
		c.Temperature = overlay.Temperature
	}
	if overlay.MaxTokens != 0 {
		c.MaxTokens = overlay.MaxTokens
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
	if overlay.MaxConcurrent != 0 {
		c.MaxConcurrent = overlay.MaxConcurrent
	}
}

func (c *Config) loadDefaults() {
	if c.Provider == "" {
		c.Provider = ProviderOpenAI
	}
	if c.AuthType == "" {
		c.AuthType = AuthAPIKey
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = 1500
	}
	if c.Timeout == "" {
		c.Timeout = "90s"
	}
	if c.MaxConcurrent == 0 {
		c.MaxConcurrent = 4
	}
}

// loadProviderDefaults runs after env overrides because the defaults
// depend on the final provider.
func (c *Config) loadProviderDefaults() {
	if c.Model == "" {
		switch c.Provider {
		case ProviderGemini:
			c.Model = "gemini-2.0-flash"
		case ProviderAzure:
			c.Model = c.Deployment
		default:
			c.Model = "gpt-4o-mini"
		}
	}
	if c.Provider == ProviderAzure && c.APIVersion == "" {
		c.APIVersion = "2024-10-21"
	}
}

func (c *Config) loadEnv(env *Env) {
	set := func(name string, dst *string) {
		if name == "" {
			return
		}
		if v := os.Getenv(name); v != "" {
			*dst = v
		}
	}

	set(env.Provider, &c.Provider)
	set(env.BaseURL, &c.BaseURL)
	set(env.Token, &c.Token)
	set(env.Model, &c.Model)
	set(env.Deployment, &c.Deployment)
	set(env.APIVersion, &c.APIVersion)
	set(env.AuthType, &c.AuthType)
	set(env.Timeout, &c.Timeout)

	if env.Temperature != "" {
		if v := os.Getenv(env.Temperature); v != "" {
			if f, err := strconv.ParseFloat(v, 32); err == nil {
				t := float32(f)
				c.Temperature = &t
			}
		}
	}
	if env.MaxTokens != "" {
		if v := os.Getenv(env.MaxTokens); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				c.MaxTokens = n
			}
		}
	}
	if env.MaxConcurrent != "" {
		if v := os.Getenv(env.MaxConcurrent); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				c.MaxConcurrent = n
			}
		}
	}
}

func (c *Config) validate() error {
	if !slices.Contains(providers, c.Provider) {
		return fmt.Errorf("%w: %s", ErrUnknownProvider, c.Provider)
	}
	if c.Temperature != nil && (*c.Temperature < 0 || *c.Temperature > 2) {
		return fmt.Errorf("temperature out of range [0, 2]: %v", *c.Temperature)
	}
	if c.MaxTokens < 0 {
		return fmt.Errorf("invalid max_tokens: %d", c.MaxTokens)
	}
	if c.MaxConcurrent < 1 {
		return fmt.Errorf("invalid max_concurrent: %d", c.MaxConcurrent)
	}
	if _, err := time.ParseDuration(c.Timeout); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}

	switch c.Provider {
	case ProviderAzure:
		if c.BaseURL == "" {
			return fmt.Errorf("base_url required for azure")
		}
		if c.Deployment == "" {
			return fmt.Errorf("deployment required for azure")
		}
		switch c.AuthType {
		case AuthAPIKey:
			if c.Token == "" {
				return fmt.Errorf("token required for azure api_key auth")
			}
		case AuthAzureAD:
		default:
			return fmt.Errorf("invalid auth_type: %s", c.AuthType)
		}
	default:
		if c.Token == "" {
			return fmt.Errorf("token required for %s", c.Provider)
		}
	}
	return nil
}
