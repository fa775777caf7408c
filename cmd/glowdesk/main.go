package main

import (
	"fmt"
	"os"
	"time"

	"github.com/glowdesk/glowdesk/internal/api"
	"github.com/glowdesk/glowdesk/internal/config"
	"github.com/glowdesk/glowdesk/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	token, err := api.LoadToken()
	if err != nil {
		return fmt.Errorf("loading API token: %w", err)
	}

	dir := api.NewClient(cfg.API.BaseURL, token,
		api.WithTimeout(time.Duration(cfg.API.TimeoutSeconds)*time.Second))

	app := ui.NewApp(dir, cfg)
	return app.Execute()
}
