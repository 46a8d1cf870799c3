// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/ym-tui/internal/util"
)

// DefaultAPIURL is the YandexGPT completion endpoint.
const DefaultAPIURL = "https://llm.api.cloud.yandex.net/foundationModels/v1/completion"

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete ym configuration.
type Config struct {
	// Generation settings
	Model       string  `toml:"model"`
	Temperature float64 `toml:"temperature"`
	MaxTokens   int64   `toml:"max_tokens"`

	// APIURL overrides the completion endpoint. Normally left alone;
	// changing it will usually break the exchange with the model.
	APIURL string `toml:"api_url"`

	// UI settings
	UI UIConfig `toml:"ui"`
}

// UIConfig contains terminal UI configuration.
type UIConfig struct {
	// VisibleLines is the number of history lines the viewport shows
	// before a terminal resize is observed.
	VisibleLines int `toml:"visible_lines"`
}

// Default returns the built-in default configuration.
func Default() *Config {
	return &Config{
		Model:       "yandexgpt/latest",
		Temperature: 0.7,
		MaxTokens:   2000,
		APIURL:      DefaultAPIURL,
		UI: UIConfig{
			VisibleLines: 20,
		},
	}
}

// =============================================================================
// PATHS
// =============================================================================

// ConfigDir returns the ym configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".ym"), nil
}

// ConfigPath returns the path of the TOML configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// EnsureConfigDir creates the configuration directory if it is missing.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0700)
}

// =============================================================================
// LOAD / SAVE
// =============================================================================

// Load reads the configuration file, falling back to defaults when the
// file does not exist. A present but invalid file is an error.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads a configuration file from an explicit path.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("could not stat config file: %w", err)
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to its default path atomically.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveToPath(cfg, path)
}

// SaveToPath writes the configuration to an explicit path atomically.
func SaveToPath(cfg *Config, path string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid config: %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return util.AtomicWriteFile(path, buf.Bytes(), 0600)
}

// fillDefaults replaces zero values left by a partial config file.
// TOML decoding cannot distinguish an absent key from an explicit zero,
// so zero is the absent sentinel here; an explicit `max_tokens = 0`
// is read as "use the default". Negative values still fail Validate.
func (c *Config) fillDefaults() {
	def := Default()
	if c.Model == "" {
		c.Model = def.Model
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = def.MaxTokens
	}
	if c.APIURL == "" {
		c.APIURL = def.APIURL
	}
	if c.UI.VisibleLines == 0 {
		c.UI.VisibleLines = def.UI.VisibleLines
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks that the configuration satisfies the API constraints.
// Invalid values are reported, not clamped: the caller decides policy.
func (c *Config) Validate() error {
	if c.Model == "" {
		return fmt.Errorf("model must not be empty")
	}
	if c.Temperature < 0 || c.Temperature > 1 {
		return fmt.Errorf("temperature must be within [0, 1], got %g", c.Temperature)
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be positive, got %d", c.MaxTokens)
	}
	if _, err := url.ParseRequestURI(c.APIURL); err != nil {
		return fmt.Errorf("api_url is not a valid URL: %w", err)
	}
	if c.UI.VisibleLines <= 0 {
		return fmt.Errorf("ui.visible_lines must be positive, got %d", c.UI.VisibleLines)
	}
	return nil
}
