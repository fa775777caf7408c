package api

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// LoadToken loads the backend bearer token from standard locations.
// It checks in order:
// 1. GLOWDESK_TOKEN environment variable
// 2. ~/.config/glowdesk/credentials.json ({"token": "..."})
func LoadToken() (string, error) {
	if token := os.Getenv("GLOWDESK_TOKEN"); token != "" {
		return token, nil
	}

	configDir, err := getConfigDir()
	if err != nil {
		return "", fmt.Errorf("getting config directory: %w", err)
	}

	path := filepath.Join(configDir, "glowdesk", "credentials.json")
	token, err := loadTokenFromFile(path)
	if err != nil {
		return "", fmt.Errorf("backend token not found: set GLOWDESK_TOKEN or create %s", path)
	}
	return token, nil
}

// getConfigDir returns the user's config directory based on OS.
func getConfigDir() (string, error) {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if runtime.GOOS == "windows" {
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			return localAppData, nil
		}
		return filepath.Join(home, "AppData", "Local"), nil
	}

	return filepath.Join(home, ".config"), nil
}

func loadTokenFromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	var creds struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(data, &creds); err != nil {
		return "", err
	}
	if creds.Token == "" {
		return "", fmt.Errorf("token not found in %s", path)
	}
	return creds.Token, nil
}
