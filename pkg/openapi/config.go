package openapi

import (
	"fmt"
	"os"
	"strings"
)

// DefaultPath is where the document is served, relative to the API prefix.
const DefaultPath = "/openapi.json"

// Config holds the document metadata and the path it is served under.
type Config struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
	Path        string `toml:"path"`
}

// ConfigEnv names the environment variables that override Config fields.
type ConfigEnv struct {
	Title       string
	Description string
	Path        string
}

// Finalize fills defaults, applies env overrides, and checks the path.
func (c *Config) Finalize(env *ConfigEnv) error {
	if c.Title == "" {
		c.Title = "Penguin Love Judge API"
	}
	if c.Description == "" {
		c.Description = "Relationship conflict mediation: submit both sides, receive a sectioned verdict."
	}
	if c.Path == "" {
		c.Path = DefaultPath
	}

	if env != nil {
		override(env.Title, &c.Title)
		override(env.Description, &c.Description)
		override(env.Path, &c.Path)
	}

	if !strings.HasPrefix(c.Path, "/") {
		return fmt.Errorf("openapi path must start with /: %s", c.Path)
	}
	return nil
}

// Merge copies the non-empty fields of overlay.
func (c *Config) Merge(overlay *Config) {
	for dst, src := range map[*string]string{
		&c.Title:       overlay.Title,
		&c.Description: overlay.Description,
		&c.Path:        overlay.Path,
	} {
		if src != "" {
			*dst = src
		}
	}
}

func override(name string, dst *string) {
	if name == "" {
		return
	}
	if v := os.Getenv(name); v != "" {
		*dst = v
	}
}
