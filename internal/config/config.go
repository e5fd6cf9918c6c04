// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config is the host-side configuration of a widget mount.
type Config struct {
	// BotID identifies the widget instance.
	BotID string `toml:"bot_id"`

	// API is the answer-service configuration.
	API APIConfig `toml:"api"`

	// Backend is the style-configuration service configuration.
	Backend BackendConfig `toml:"backend"`

	// Session controls session persistence.
	Session SessionConfig `toml:"session"`
}

// APIConfig configures the answer service.
type APIConfig struct {
	// Endpoint is the base URL of the answer service. Empty selects the
	// production default.
	Endpoint string `toml:"endpoint"`

	// TimeoutSeconds bounds a single exchange request.
	TimeoutSeconds int `toml:"timeout_seconds"`
}

// Timeout returns the request bound as a duration.
func (a APIConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// BackendConfig configures the style-configuration service.
type BackendConfig struct {
	// Endpoint is the base URL of the style service. Empty selects the
	// production default.
	Endpoint string `toml:"endpoint"`
}

// SessionConfig configures session persistence.
type SessionConfig struct {
	// TTLMinutes is the session validity window in minutes.
	TTLMinutes int `toml:"ttl_minutes"`

	// Store selects the persistence driver: "memory", "file", or "sqlite".
	Store string `toml:"store"`

	// Path is the backing file for the file and sqlite drivers.
	Path string `toml:"path"`
}

// TTL returns the configured validity window as a duration.
func (s SessionConfig) TTL() time.Duration {
	return time.Duration(s.TTLMinutes) * time.Minute
}

// =============================================================================
// DEFAULTS AND LOADING
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		BotID: "default",
		API: APIConfig{
			TimeoutSeconds: 30,
		},
		Session: SessionConfig{
			TTLMinutes: 60,
			Store:      "file",
			Path:       "chatbubble-sessions.json",
		},
	}
}

// Load builds the effective configuration: defaults, overlaid by the TOML
// file at path (if path is non-empty), overlaid by environment variables.
// The result is validated before being returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	cfg.ApplyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML overlays the TOML file at path onto cfg. Keys absent from the
// file keep their current values.
func LoadTOML(cfg *Config, path string) error {
	_, err := toml.DecodeFile(path, cfg)
	return err
}

// ApplyEnvOverrides overlays CHATBUBBLE_* environment variables onto cfg.
// Environment wins over both defaults and the file.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("CHATBUBBLE_BOT_ID"); v != "" {
		c.BotID = v
	}
	if v := os.Getenv("CHATBUBBLE_API_ENDPOINT"); v != "" {
		c.API.Endpoint = v
	}
	if v := os.Getenv("CHATBUBBLE_BACKEND_ENDPOINT"); v != "" {
		c.Backend.Endpoint = v
	}
	if v := os.Getenv("CHATBUBBLE_SESSION_STORE"); v != "" {
		c.Session.Store = v
	}
	if v := os.Getenv("CHATBUBBLE_SESSION_PATH"); v != "" {
		c.Session.Path = v
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks the configuration for values that would break the mount.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.BotID) == "" {
		return fmt.Errorf("bot_id must not be empty")
	}

	if err := validateEndpoint("api.endpoint", c.API.Endpoint); err != nil {
		return err
	}
	if err := validateEndpoint("backend.endpoint", c.Backend.Endpoint); err != nil {
		return err
	}

	if c.API.TimeoutSeconds < 0 {
		return fmt.Errorf("api.timeout_seconds must not be negative")
	}

	if c.Session.TTLMinutes < 0 {
		return fmt.Errorf("session.ttl_minutes must not be negative")
	}

	switch c.Session.Store {
	case "memory":
	case "file", "sqlite":
		if c.Session.Path == "" {
			return fmt.Errorf("session.path is required for the %s store", c.Session.Store)
		}
	default:
		return fmt.Errorf("session.store must be memory, file, or sqlite, got %q", c.Session.Store)
	}

	return nil
}

// validateEndpoint accepts an empty endpoint (meaning "use the default") or
// an absolute http(s) URL.
func validateEndpoint(field, endpoint string) error {
	if endpoint == "" {
		return nil
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must be an http or https URL, got %q", field, endpoint)
	}
	if u.Host == "" {
		return fmt.Errorf("%s is missing a host: %q", field, endpoint)
	}
	return nil
}
