package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/glowdesk/glowdesk/internal/appointment"
)

// Color definitions for consistent styling across the UI.
var (
	colorPending   = color.New(color.FgYellow)
	colorConfirmed = color.New(color.FgBlue, color.Bold)
	colorActive    = color.New(color.FgGreen, color.Bold)
	colorDone      = color.New(color.FgCyan)
	colorCancelled = color.New(color.FgWhite, color.Faint)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Revenue figures: green
	colorMoney = color.New(color.FgGreen)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// statusGlyph returns a one-rune marker for a booking status.
func statusGlyph(s appointment.Status) string {
	switch s {
	case appointment.StatusConfirmed:
		return "●"
	case appointment.StatusInProgress:
		return "▶"
	case appointment.StatusCompleted:
		return "✓"
	case appointment.StatusCancelled:
		return "✗"
	default:
		return "○"
	}
}

// formatStatus colors a booking status string.
func formatStatus(s appointment.Status, text string) string {
	switch s {
	case appointment.StatusConfirmed:
		return colorConfirmed.Sprint(text)
	case appointment.StatusInProgress:
		return colorActive.Sprint(text)
	case appointment.StatusCompleted:
		return colorDone.Sprint(text)
	case appointment.StatusCancelled:
		return colorCancelled.Sprint(text)
	default:
		return colorPending.Sprint(text)
	}
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatMoney formats revenue figures.
func formatMoney(s string) string {
	return colorMoney.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
