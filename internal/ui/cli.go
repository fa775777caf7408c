// Package ui provides the command line interface for glowdesk.
package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glowdesk/glowdesk/internal/appointment"
	"github.com/glowdesk/glowdesk/internal/config"
	"github.com/glowdesk/glowdesk/internal/store"
	"github.com/glowdesk/glowdesk/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	dir    appointment.Directory
	config *config.Config
	root   *cobra.Command
}

// NewApp creates a new CLI application against the given directory.
func NewApp(dir appointment.Directory, cfg *config.Config) *App {
	a := &App{dir: dir, config: cfg}

	a.root = &cobra.Command{
		Use:   "glowdesk",
		Short: "A terminal dashboard for salon appointment scheduling",
		Long: `Glowdesk is a terminal dashboard for running a salon's front desk.

It shows the appointment book as a weekly or per-staff daily calendar,
lets you create and update bookings, and reports booked revenue.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			cache, err := store.New()
			if err != nil {
				return fmt.Errorf("opening session cache: %w", err)
			}
			defer func() { _ = cache.Close() }()
			return tui.Run(a.dir, cache, a.config)
		},
	}

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.revenueCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("glowdesk %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
