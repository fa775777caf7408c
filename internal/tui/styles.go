package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/glowdesk/glowdesk/internal/appointment"
)

// Palette holds the colors of one theme.
type Palette struct {
	Bg        lipgloss.Color
	BgCard    lipgloss.Color
	BgCursor  lipgloss.Color
	Fg        lipgloss.Color
	FgMuted   lipgloss.Color
	Accent    lipgloss.Color
	Today     lipgloss.Color
	Pending   lipgloss.Color
	Confirmed lipgloss.Color
	Active    lipgloss.Color
	Done      lipgloss.Color
	Cancelled lipgloss.Color
	Warning   lipgloss.Color
}

// Catppuccin variants, keyed by the config theme name.
var palettes = map[string]Palette{
	"mocha": {
		Bg: "#1e1e2e", BgCard: "#313244", BgCursor: "#45475a",
		Fg: "#cdd6f4", FgMuted: "#6c7086", Accent: "#cba6f7", Today: "#f5c2e7",
		Pending: "#f9e2af", Confirmed: "#89b4fa", Active: "#a6e3a1",
		Done: "#94e2d5", Cancelled: "#6c7086", Warning: "#f38ba8",
	},
	"macchiato": {
		Bg: "#24273a", BgCard: "#363a4f", BgCursor: "#494d64",
		Fg: "#cad3f5", FgMuted: "#6e738d", Accent: "#c6a0f6", Today: "#f5bde6",
		Pending: "#eed49f", Confirmed: "#8aadf4", Active: "#a6da95",
		Done: "#8bd5ca", Cancelled: "#6e738d", Warning: "#ed8796",
	},
	"frappe": {
		Bg: "#303446", BgCard: "#414559", BgCursor: "#51576d",
		Fg: "#c6d0f5", FgMuted: "#737994", Accent: "#ca9ee6", Today: "#f4b8e4",
		Pending: "#e5c890", Confirmed: "#8caaee", Active: "#a6d189",
		Done: "#81c8be", Cancelled: "#737994", Warning: "#e78284",
	},
	"latte": {
		Bg: "#eff1f5", BgCard: "#ccd0da", BgCursor: "#bcc0cc",
		Fg: "#4c4f69", FgMuted: "#9ca0b0", Accent: "#8839ef", Today: "#ea76cb",
		Pending: "#df8e1d", Confirmed: "#1e66f5", Active: "#40a02b",
		Done: "#179299", Cancelled: "#9ca0b0", Warning: "#d20f39",
	},
}

// LoadPalette returns the palette for a theme name, falling back to frappe.
func LoadPalette(name string) Palette {
	if p, ok := palettes[strings.ToLower(name)]; ok {
		return p
	}
	return palettes["frappe"]
}

// Styles holds precomputed lipgloss styles for the dashboard.
type Styles struct {
	palette Palette

	Title      lipgloss.Style
	Header     lipgloss.Style
	TodayHead  lipgloss.Style
	HourLabel  lipgloss.Style
	GridLine   lipgloss.Style
	Cursor     lipgloss.Style
	Card       lipgloss.Style
	CardCursor lipgloss.Style
	Status     lipgloss.Style
	Error      lipgloss.Style
	Help       lipgloss.Style
	ListRow    lipgloss.Style
	ListSel    lipgloss.Style
	FormLabel  lipgloss.Style
	FormFocus  lipgloss.Style
	ModalBox   lipgloss.Style
}

// NewStyles derives the style set from a palette.
func NewStyles(p Palette) *Styles {
	return &Styles{
		palette:    p,
		Title:      lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		Header:     lipgloss.NewStyle().Foreground(p.Fg).Bold(true),
		TodayHead:  lipgloss.NewStyle().Foreground(p.Today).Bold(true).Underline(true),
		HourLabel:  lipgloss.NewStyle().Foreground(p.FgMuted),
		GridLine:   lipgloss.NewStyle().Foreground(p.FgMuted),
		Cursor:     lipgloss.NewStyle().Background(p.BgCursor).Foreground(p.Fg),
		Card:       lipgloss.NewStyle().Background(p.BgCard),
		CardCursor: lipgloss.NewStyle().Background(p.BgCursor).Bold(true),
		Status:     lipgloss.NewStyle().Foreground(p.Accent),
		Error:      lipgloss.NewStyle().Foreground(p.Warning).Bold(true),
		Help:       lipgloss.NewStyle().Foreground(p.FgMuted),
		ListRow:    lipgloss.NewStyle().Foreground(p.Fg),
		ListSel:    lipgloss.NewStyle().Background(p.BgCursor).Bold(true),
		FormLabel:  lipgloss.NewStyle().Foreground(p.FgMuted),
		FormFocus:  lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		ModalBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Padding(1, 2),
	}
}

// StatusColor returns the accent color for a booking status.
func (s *Styles) StatusColor(st appointment.Status) lipgloss.Color {
	switch st {
	case appointment.StatusConfirmed:
		return s.palette.Confirmed
	case appointment.StatusInProgress:
		return s.palette.Active
	case appointment.StatusCompleted:
		return s.palette.Done
	case appointment.StatusCancelled:
		return s.palette.Cancelled
	default:
		return s.palette.Pending
	}
}

// CardStyle returns the card style tinted for a booking status.
func (s *Styles) CardStyle(st appointment.Status, selected bool) lipgloss.Style {
	base := s.Card
	if selected {
		base = s.CardCursor
	}
	return base.Foreground(s.StatusColor(st))
}
