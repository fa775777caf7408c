package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glowdesk/glowdesk/internal/appointment"
	"github.com/glowdesk/glowdesk/internal/dateutil"
	"github.com/glowdesk/glowdesk/internal/nav"
	"github.com/glowdesk/glowdesk/internal/tui/commands"
)

// chromeLines is the vertical space the title, column headers, and footer
// take away from the grid.
const chromeLines = 5

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.mode == ModeForm {
			return m.updateForm(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.cellLines = cellLinesFor(msg.Height-chromeLines, m.window.Rows())
		return m, nil

	case commands.ScheduleLoadedMsg:
		// A newer fetch is already in flight; this result describes a range
		// the user has navigated away from.
		if msg.Generation != m.fetchGen {
			return m, nil
		}
		m.loading = false
		if err := m.cache.ReplaceRange(context.Background(), msg.From, msg.To, msg.Appointments); err != nil {
			m.setError(err)
			return m, nil
		}
		m.week = appointment.NewWeekFromAppointments(dateutil.WeekStart(msg.From), msg.Appointments)
		if m.nav.Mode() == nav.ModeListAll {
			m.refreshList()
		}
		return m, nil

	case commands.RosterLoadedMsg:
		m.roster = msg.Staff
		return m, nil

	case commands.CatalogLoadedMsg:
		m.services = msg.Services
		return m, nil

	case commands.CustomersLoadedMsg:
		m.customers = msg.Customers
		return m, nil

	case commands.SavedMsg:
		m.mode = ModeNormal
		if msg.Created {
			m.setStatus("Booking created")
		} else {
			m.setStatus("Booking updated")
		}
		// The backend owns derived state; refetch instead of patching.
		return m, m.fetchVisible()

	case commands.StatusChangedMsg:
		m.setStatus("Status: " + string(msg.Status))
		return m, m.fetchVisible()

	case commands.ErrMsg:
		m.setError(msg.Err)
		return m, nil

	case commands.StatusMsgCmd:
		m.setStatus(msg.Msg)
		return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
			return commands.ClearStatusMsg{}
		})

	case commands.ClearStatusMsg:
		if m.now().After(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	return m, nil
}

// cellLinesFor picks the tallest hour-row rendering that still fits the
// calendar window in the available lines.
func cellLinesFor(gridLines, rows int) int {
	if rows <= 0 {
		return 1
	}
	switch {
	case gridLines >= rows*4:
		return 4
	case gridLines >= rows*2:
		return 2
	default:
		return 1
	}
}
