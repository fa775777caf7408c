package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
	if cfg.Calendar.OpenHour != 9 || cfg.Calendar.CloseHour != 21 {
		t.Errorf("calendar window = %d..%d, want 9..21", cfg.Calendar.OpenHour, cfg.Calendar.CloseHour)
	}
	if cfg.UI.Theme != "frappe" {
		t.Errorf("theme = %q, want frappe", cfg.UI.Theme)
	}
}

func TestLoadFromMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.API.TimeoutSeconds != 30 {
		t.Errorf("timeout = %d, want default 30", cfg.API.TimeoutSeconds)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[api]
base_url = "https://salon.example.com/api"
timeout_seconds = 10

[calendar]
open_hour = 8
close_hour = 20

[ui]
theme = "latte"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.API.BaseURL != "https://salon.example.com/api" {
		t.Errorf("base_url = %q", cfg.API.BaseURL)
	}
	if cfg.API.TimeoutSeconds != 10 {
		t.Errorf("timeout = %d, want 10", cfg.API.TimeoutSeconds)
	}
	if cfg.Calendar.OpenHour != 8 || cfg.Calendar.CloseHour != 20 {
		t.Errorf("calendar window = %d..%d, want 8..20", cfg.Calendar.OpenHour, cfg.Calendar.CloseHour)
	}
	if cfg.UI.Theme != "latte" {
		t.Errorf("theme = %q, want latte", cfg.UI.Theme)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("GLOWDESK_API_BASE_URL", "https://override.example.com")
	t.Setenv("GLOWDESK_OPEN_HOUR", "7")
	t.Setenv("GLOWDESK_UI_THEME", "mocha")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.API.BaseURL != "https://override.example.com" {
		t.Errorf("base_url = %q", cfg.API.BaseURL)
	}
	if cfg.Calendar.OpenHour != 7 {
		t.Errorf("open_hour = %d, want 7", cfg.Calendar.OpenHour)
	}
	if cfg.UI.Theme != "mocha" {
		t.Errorf("theme = %q, want mocha", cfg.UI.Theme)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid defaults", mutate: func(c *Config) {}, wantErr: false},
		{name: "empty base url", mutate: func(c *Config) { c.API.BaseURL = "" }, wantErr: true},
		{name: "non-http base url", mutate: func(c *Config) { c.API.BaseURL = "ftp://x" }, wantErr: true},
		{name: "zero timeout", mutate: func(c *Config) { c.API.TimeoutSeconds = 0 }, wantErr: true},
		{name: "open after close", mutate: func(c *Config) { c.Calendar.OpenHour = 21; c.Calendar.CloseHour = 9 }, wantErr: true},
		{name: "open equals close", mutate: func(c *Config) { c.Calendar.OpenHour = 9; c.Calendar.CloseHour = 9 }, wantErr: true},
		{name: "negative open hour", mutate: func(c *Config) { c.Calendar.OpenHour = -1 }, wantErr: true},
		{name: "close past midnight", mutate: func(c *Config) { c.Calendar.CloseHour = 25 }, wantErr: true},
		{name: "midnight to midnight", mutate: func(c *Config) { c.Calendar.OpenHour = 0; c.Calendar.CloseHour = 24 }, wantErr: false},
		{name: "unknown theme", mutate: func(c *Config) { c.UI.Theme = "dracula" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glowdesk", "config.toml")

	cfg := Default()
	cfg.UI.Theme = "macchiato"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if loaded.UI.Theme != "macchiato" {
		t.Errorf("theme = %q, want macchiato", loaded.UI.Theme)
	}
}
