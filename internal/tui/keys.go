package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/glowdesk/glowdesk/internal/appointment"
	"github.com/glowdesk/glowdesk/internal/dateutil"
	"github.com/glowdesk/glowdesk/internal/grid"
	"github.com/glowdesk/glowdesk/internal/nav"
	"github.com/glowdesk/glowdesk/internal/tui/commands"
)

// handleKey processes a key press in normal mode.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.nav.Mode() == nav.ModeListAll {
		return m.handleListKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "h", "left":
		m.moveColumn(-1)
		return m, nil

	case "l", "right":
		m.moveColumn(1)
		return m, nil

	case "j", "down":
		m.moveQuarter(1)
		return m, nil

	case "k", "up":
		m.moveQuarter(-1)
		return m, nil

	case "H", "shift+left":
		m.nav = m.nav.Previous()
		return m, m.fetchVisible()

	case "L", "shift+right":
		m.nav = m.nav.Next()
		return m, m.fetchVisible()

	case "t":
		m.nav = m.nav.SelectDate(m.now())
		m.cursor.Col = weekdayIndex(m.now())
		return m, m.fetchVisible()

	case "tab":
		if m.nav.Mode() == nav.ModeWeekGrid {
			m.nav = m.nav.ToDayGrid(m.selectedDay())
			m.cursor.Col = 0
		} else {
			m.nav = m.nav.ToWeekGrid()
			m.cursor.Col = weekdayIndex(m.nav.SelectedDate())
		}
		return m, m.fetchVisible()

	case "a":
		m.nav = m.nav.ToggleList()
		m.refreshList()
		return m, m.fetchVisible()

	case "enter":
		if a := m.selectedAppointment(); a != nil {
			m.openEditForm(a)
		} else {
			m.openNewForm(m.selectedDay(), m.cursorTime())
		}
		return m, nil

	case "n":
		m.openNewForm(m.selectedDay(), m.cursorTime())
		return m, nil

	case "s":
		return m.cycleStatus()

	case "x":
		return m.cancelBooking()

	case "y":
		return m.yankDay()

	case "Y":
		return m.yankBooking()
	}

	return m, nil
}

// handleListKey processes a key press while the flat list is showing.
func (m *Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "j", "down":
		if m.listIndex < len(m.listRows)-1 {
			m.listIndex++
		}
		return m, nil

	case "k", "up":
		if m.listIndex > 0 {
			m.listIndex--
		}
		return m, nil

	case "a", "esc":
		m.nav = m.nav.ToggleList()
		return m, m.fetchVisible()

	case "f":
		m.nav.Filters.Status = nextFilterStatus(m.nav.Filters.Status)
		m.refreshList()
		return m, nil

	case "o":
		m.nav.Filters.Sort = (m.nav.Filters.Sort + 1) % 3
		m.refreshList()
		return m, nil

	case "c":
		m.nav.Filters.Clear()
		m.refreshList()
		return m, nil

	case "enter":
		if a := m.selectedAppointment(); a != nil {
			m.openEditForm(a)
		}
		return m, nil

	case "s":
		return m.cycleStatus()

	case "x":
		return m.cancelBooking()
	}

	return m, nil
}

// moveColumn shifts the cursor between day (or staff) columns, clamped to
// the grid edges.
func (m *Model) moveColumn(delta int) {
	max := 7
	if m.nav.Mode() == nav.ModeDayGrid {
		max = len(m.columns())
	}
	c := m.cursor.Col + delta
	if c < 0 {
		c = 0
	}
	if c >= max {
		c = max - 1
	}
	m.cursor.Col = c
}

// moveQuarter shifts the cursor by one quarter slot, rolling across hour
// rows and clamping at the window edges.
func (m *Model) moveQuarter(delta int) {
	q := m.cursor.Quarter + delta
	row := m.cursor.Row
	for q < 0 {
		q += grid.QuartersPerHour
		row--
	}
	for q >= grid.QuartersPerHour {
		q -= grid.QuartersPerHour
		row++
	}
	if row < 0 {
		row, q = 0, 0
	}
	if row >= m.window.Rows() {
		row, q = m.window.Rows()-1, grid.QuartersPerHour-1
	}
	m.cursor.Row = row
	m.cursor.Quarter = q
}

// cycleStatus advances the selected booking to its next lifecycle status.
func (m *Model) cycleStatus() (tea.Model, tea.Cmd) {
	a := m.selectedAppointment()
	if a == nil {
		m.setStatus("No booking selected")
		return m, nil
	}
	if !a.IsPersisted() {
		m.setStatus("Booking is not saved yet")
		return m, nil
	}
	next := a.Status.Next()
	if next == a.Status {
		m.setStatus("Booking is already " + string(a.Status))
		return m, nil
	}
	return m, commands.ChangeStatus(m.dir, a.BackendID, next)
}

// cancelBooking marks the selected booking cancelled.
func (m *Model) cancelBooking() (tea.Model, tea.Cmd) {
	a := m.selectedAppointment()
	if a == nil {
		m.setStatus("No booking selected")
		return m, nil
	}
	if !a.IsPersisted() {
		m.setStatus("Booking is not saved yet")
		return m, nil
	}
	switch a.Status {
	case appointment.StatusCancelled:
		m.setStatus("Booking is already cancelled")
		return m, nil
	case appointment.StatusCompleted:
		m.setStatus("Completed bookings cannot be cancelled")
		return m, nil
	}
	return m, commands.ChangeStatus(m.dir, a.BackendID, appointment.StatusCancelled)
}

// nextFilterStatus cycles the list's status filter through all statuses
// and back to "show everything".
func nextFilterStatus(s appointment.Status) appointment.Status {
	if s == "" {
		return appointment.Statuses[0]
	}
	for i, st := range appointment.Statuses {
		if st == s {
			if i == len(appointment.Statuses)-1 {
				return ""
			}
			return appointment.Statuses[i+1]
		}
	}
	return ""
}

// yankDay copies the selected day's schedule to the clipboard.
func (m *Model) yankDay() (tea.Model, tea.Cmd) {
	day := m.selectedDay()
	if m.week == nil {
		m.setStatus("Nothing to copy")
		return m, nil
	}
	d := m.week.DayByDate(day)
	if d == nil || len(d.Appointments()) == 0 {
		m.setStatus("Nothing to copy")
		return m, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", dateutil.WeekdayName(weekdayIndex(day)), dateutil.FormatDate(day))
	for _, a := range d.Appointments() {
		fmt.Fprintf(&b, "%s  %s with %s (%s, %s)\n",
			a.StartTime, a.ClientName, a.StaffName, a.Services, a.Status)
	}

	if err := clipboard.WriteAll(b.String()); err != nil {
		m.setError(fmt.Errorf("copying schedule: %w", err))
		return m, nil
	}
	return m, commands.ShowStatus("Schedule copied")
}

// yankBooking copies the selected booking's summary to the clipboard.
func (m *Model) yankBooking() (tea.Model, tea.Cmd) {
	a := m.selectedAppointment()
	if a == nil {
		m.setStatus("No booking selected")
		return m, nil
	}

	text := fmt.Sprintf("%s %s  %s with %s  %s  %s (%s)",
		dateutil.FormatDate(a.Date), a.StartTime, a.ClientName, a.StaffName,
		a.Services, appointment.FormatPrice(a.Price), a.Status)

	if err := clipboard.WriteAll(text); err != nil {
		m.setError(fmt.Errorf("copying booking: %w", err))
		return m, nil
	}
	return m, commands.ShowStatus("Booking copied")
}
