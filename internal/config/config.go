// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the application configuration.
type Config struct {
	API      APIConfig      `toml:"api"`
	Calendar CalendarConfig `toml:"calendar"`
	UI       UIConfig       `toml:"ui"`
}

// APIConfig holds salon backend settings. The bearer token is not stored
// here; it comes from GLOWDESK_TOKEN or the credentials file.
type APIConfig struct {
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// CalendarConfig holds the rendered business-hours window.
type CalendarConfig struct {
	OpenHour  int `toml:"open_hour"`  // first rendered hour, 0..23
	CloseHour int `toml:"close_hour"` // first hour past the window, exclusive
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "macchiato", "frappe", "latte"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        "http://localhost:8080/api",
			TimeoutSeconds: 30,
		},
		Calendar: CalendarConfig{
			OpenHour:  9,
			CloseHour: 21,
		},
		UI: UIConfig{
			Theme: "frappe",
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "glowdesk", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("GLOWDESK_API_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("GLOWDESK_API_TIMEOUT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.API.TimeoutSeconds = n
		}
	}
	if v := os.Getenv("GLOWDESK_OPEN_HOUR"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Calendar.OpenHour = n
		}
	}
	if v := os.Getenv("GLOWDESK_CLOSE_HOUR"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Calendar.CloseHour = n
		}
	}
	if v := os.Getenv("GLOWDESK_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("api base_url must be set")
	}
	if !strings.HasPrefix(c.API.BaseURL, "http://") && !strings.HasPrefix(c.API.BaseURL, "https://") {
		return fmt.Errorf("api base_url must be an http(s) URL, got %q", c.API.BaseURL)
	}
	if c.API.TimeoutSeconds <= 0 {
		return errors.New("api timeout_seconds must be positive")
	}
	if c.Calendar.OpenHour < 0 || c.Calendar.OpenHour > 23 {
		return fmt.Errorf("calendar open_hour must be 0..23, got %d", c.Calendar.OpenHour)
	}
	if c.Calendar.CloseHour < 1 || c.Calendar.CloseHour > 24 {
		return fmt.Errorf("calendar close_hour must be 1..24, got %d", c.Calendar.CloseHour)
	}
	if c.Calendar.OpenHour >= c.Calendar.CloseHour {
		return errors.New("calendar open_hour must be before close_hour")
	}
	if !isValidTheme(c.UI.Theme) {
		return fmt.Errorf("invalid theme: %s", c.UI.Theme)
	}
	return nil
}

var validThemes = map[string]bool{
	"mocha":     true,
	"macchiato": true,
	"frappe":    true,
	"latte":     true,
}

func isValidTheme(theme string) bool {
	return validThemes[strings.ToLower(theme)]
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
