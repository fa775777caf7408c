// Package tui provides the terminal dashboard for glowdesk.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glowdesk/glowdesk/internal/appointment"
	"github.com/glowdesk/glowdesk/internal/config"
	"github.com/glowdesk/glowdesk/internal/grid"
	"github.com/glowdesk/glowdesk/internal/nav"
	"github.com/glowdesk/glowdesk/internal/store"
	"github.com/glowdesk/glowdesk/internal/tui/commands"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeForm        // Booking form modal is open
)

// Cursor is the grid selection: a column, an hour row, and a quarter
// sub-slot within the row.
type Cursor struct {
	Col     int // weekday in week mode, staff column in day mode
	Row     int // hour row, 0 is the opening hour
	Quarter int // 0..3, quarter i is i*15 minutes past the hour
}

// Model is the main dashboard model.
type Model struct {
	// Dependencies
	dir   appointment.Directory
	cache *store.Store
	cfg   *config.Config

	// Theme and styles
	styles *Styles

	// View state
	nav    nav.State
	window grid.Window
	cursor Cursor
	mode   Mode

	// Fetch state. fetchGen tags the newest in-flight fetch; stale results
	// carry an older generation and are dropped.
	fetchGen int
	loading  bool

	// Loaded data
	week      *appointment.Week
	listRows  []*appointment.Appointment
	listIndex int
	roster    []appointment.Staff
	services  []appointment.Service
	customers []appointment.Customer

	// Booking form
	form bookingForm

	// Messages
	statusMsg  string
	statusErr  bool
	statusTime time.Time

	// Terminal dimensions and layout
	width     int
	height    int
	cellLines int // terminal lines per hour row (4, 2, or 1)

	now func() time.Time
}

// New creates a new dashboard model.
func New(dir appointment.Directory, cache *store.Store, cfg *config.Config) *Model {
	styles := NewStyles(LoadPalette(cfg.UI.Theme))
	window := grid.Window{Open: cfg.Calendar.OpenHour, Close: cfg.Calendar.CloseHour}

	now := time.Now
	state := nav.New(now())

	return &Model{
		dir:       dir,
		cache:     cache,
		cfg:       cfg,
		styles:    styles,
		nav:       state,
		window:    window,
		cursor:    Cursor{Col: weekdayIndex(now()), Row: 0, Quarter: 0},
		mode:      ModeNormal,
		cellLines: 1,
		now:       now,
	}
}

// Init kicks off the initial loads: the visible schedule plus the roster,
// catalog, and client book the booking form needs.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.fetchVisible(),
		commands.FetchRoster(m.dir),
		commands.FetchCatalog(m.dir),
		commands.FetchCustomers(m.dir),
	)
}

// fetchVisible starts a fetch for the range the active view shows, bumping
// the generation so any older in-flight fetch is superseded.
func (m *Model) fetchVisible() tea.Cmd {
	from, to := m.nav.VisibleRange()
	m.fetchGen++
	m.loading = true
	return commands.FetchSchedule(m.dir, m.fetchGen, from, to)
}

// selectedDay returns the date under the cursor.
func (m *Model) selectedDay() time.Time {
	switch m.nav.Mode() {
	case nav.ModeDayGrid:
		return m.nav.SelectedDate()
	default:
		return m.nav.WeekStart().AddDate(0, 0, m.cursor.Col)
	}
}

// cursorTime returns the 12-hour time string of the cursor's quarter slot.
func (m *Model) cursorTime() string {
	return m.window.QuarterTime(m.cursor.Row, m.cursor.Quarter)
}

// columns returns the active grid's columns.
func (m *Model) columns() []grid.Column {
	if m.week == nil {
		return nil
	}
	switch m.nav.Mode() {
	case nav.ModeDayGrid:
		day := m.week.DayByDate(m.nav.SelectedDate())
		var appts []*appointment.Appointment
		if day != nil {
			appts = day.Appointments()
		}
		return grid.StaffColumns(m.nav.SelectedDate(), m.roster, appts)
	default:
		return grid.WeekColumns(m.nav.WeekStart(), m.week.All())
	}
}

// selectedAppointment returns the appointment under the cursor, or the
// selected list row in list mode. Nil when the cursor is on empty space.
func (m *Model) selectedAppointment() *appointment.Appointment {
	if m.nav.Mode() == nav.ModeListAll {
		if m.listIndex >= 0 && m.listIndex < len(m.listRows) {
			return m.listRows[m.listIndex]
		}
		return nil
	}

	cols := m.columns()
	if m.cursor.Col < 0 || m.cursor.Col >= len(cols) {
		return nil
	}
	cursorMin := m.window.RowHour(m.cursor.Row)*60 + m.cursor.Quarter*grid.QuarterMinutes
	for _, a := range cols[m.cursor.Col].Appointments {
		start, err := a.StartMinutes()
		if err != nil {
			continue
		}
		if cursorMin >= start && cursorMin < start+a.Duration {
			return a
		}
	}
	return nil
}

// refreshList re-runs the list query against the session cache.
func (m *Model) refreshList() {
	rows, err := m.cache.Query(context.Background(), m.nav.Filters)
	if err != nil {
		m.setError(err)
		return
	}
	m.listRows = rows
	if m.listIndex >= len(rows) {
		m.listIndex = len(rows) - 1
	}
	if m.listIndex < 0 {
		m.listIndex = 0
	}
}

func (m *Model) setStatus(msg string) {
	m.statusMsg = msg
	m.statusErr = false
	m.statusTime = m.now().Add(3 * time.Second)
}

func (m *Model) setError(err error) {
	m.statusMsg = "Error: " + err.Error()
	m.statusErr = true
	m.statusTime = m.now().Add(5 * time.Second)
}

// weekdayIndex returns 0..6 with Monday as 0.
func weekdayIndex(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	return wd - 1
}

// Run starts the dashboard.
func Run(dir appointment.Directory, cache *store.Store, cfg *config.Config) error {
	p := tea.NewProgram(New(dir, cache, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
