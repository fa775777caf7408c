package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/glowdesk/glowdesk/internal/appointment"
	"github.com/glowdesk/glowdesk/internal/dateutil"
	"github.com/glowdesk/glowdesk/internal/grid"
	"github.com/glowdesk/glowdesk/internal/nav"
	"github.com/glowdesk/glowdesk/internal/revenue"
)

const (
	gutterWidth = 9
	minColWidth = 10
)

// View renders the dashboard.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.mode == ModeForm {
		return m.renderForm()
	}
	if m.nav.Mode() == nav.ModeListAll {
		return m.renderList()
	}
	return m.renderGrid()
}

func (m *Model) renderGrid() string {
	cols := m.columns()

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.gridTitle()))
	b.WriteString("\n")

	colWidth := m.columnWidth(len(cols))

	// Header row
	b.WriteString(strings.Repeat(" ", gutterWidth))
	for i, col := range cols {
		style := m.styles.Header
		if m.nav.Mode() == nav.ModeWeekGrid && dateutil.IsToday(col.Date) {
			style = m.styles.TodayHead
		}
		if i == m.cursor.Col {
			style = style.Underline(true)
		}
		b.WriteString(style.Render(pad(col.Title, colWidth)))
		b.WriteString(" ")
	}
	b.WriteString("\n")

	// Body: gutter plus one painted canvas per column.
	gutter := m.renderGutter()
	canvases := make([][]string, len(cols))
	for i, col := range cols {
		canvases[i] = m.renderColumn(col, colWidth, i == m.cursor.Col)
	}

	lines := m.window.Rows() * m.cellLines
	for line := 0; line < lines; line++ {
		b.WriteString(gutter[line])
		for i := range canvases {
			b.WriteString(canvases[i][line])
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	b.WriteString(m.renderFooter())
	return b.String()
}

func (m *Model) gridTitle() string {
	if m.nav.Mode() == nav.ModeDayGrid {
		d := m.nav.SelectedDate()
		return fmt.Sprintf("%s %s", dateutil.WeekdayName(weekdayIndex(d)), dateutil.FormatDate(d))
	}
	from, to := dateutil.WeekRange(m.nav.WeekStart())
	return fmt.Sprintf("Week %s - %s", dateutil.FormatDate(from), dateutil.FormatDate(to))
}

func (m *Model) columnWidth(n int) int {
	if n == 0 {
		return minColWidth
	}
	w := (m.width - gutterWidth - n) / n
	if w < minColWidth {
		w = minColWidth
	}
	return w
}

// renderGutter builds the hour-label column. Labels sit on row boundaries;
// the lines between are blank.
func (m *Model) renderGutter() []string {
	lines := make([]string, m.window.Rows()*m.cellLines)
	for i := range lines {
		lines[i] = strings.Repeat(" ", gutterWidth)
	}
	for r := 0; r < m.window.Rows(); r++ {
		label := appointment.FormatClock(m.window.RowHour(r), 0)
		lines[r*m.cellLines] = m.styles.HourLabel.Render(pad(label, gutterWidth))
	}
	return lines
}

// renderColumn paints a day (or staff) column. Every card is positioned
// absolutely from its start time and duration; cards never flow around
// each other. A card shorter than one line still paints one line.
func (m *Model) renderColumn(col grid.Column, colWidth int, active bool) []string {
	total := m.window.Rows() * m.cellLines
	lines := make([]string, total)
	empty := strings.Repeat(" ", colWidth)
	for i := range lines {
		lines[i] = empty
	}

	// Cursor slot marker, painted first so cards draw over it.
	if active {
		cl := m.cursorLine()
		if cl >= 0 && cl < total {
			lines[cl] = m.styles.Cursor.Render(empty)
		}
	}

	selected := m.selectedAppointment()
	for _, a := range col.Appointments {
		rect, err := m.window.Position(a.StartTime, a.Duration, float64(m.cellLines))
		if err != nil {
			continue
		}
		top := int(math.Round(rect.Top))
		height := int(math.Round(rect.Height))
		if height < 1 {
			height = 1
		}

		style := m.styles.CardStyle(a.Status, active && selected == a)
		text := cardLines(a, colWidth, height)
		for i := 0; i < height; i++ {
			line := top + i
			if line < 0 || line >= total {
				continue // clipped outside the window
			}
			lines[line] = style.Render(text[i])
		}
	}
	return lines
}

// cursorLine maps the cursor's quarter slot onto a canvas line.
func (m *Model) cursorLine() int {
	return m.cursor.Row*m.cellLines + m.cursor.Quarter*m.cellLines/grid.QuartersPerHour
}

// cardLines lays out a card's text for the given height.
func cardLines(a *appointment.Appointment, width, height int) []string {
	lines := make([]string, height)
	lines[0] = pad(fmt.Sprintf("%s %s", a.StartTime, a.ClientName), width)
	if height > 1 {
		lines[1] = pad(a.Services, width)
	}
	if height > 2 {
		lines[2] = pad(string(a.Status), width)
	}
	for i := 3; i < height; i++ {
		lines[i] = pad("", width)
	}
	return lines
}

func (m *Model) renderList() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("All appointments"))
	b.WriteString("\n")

	filter := "all"
	if m.nav.Filters.Status != "" {
		filter = string(m.nav.Filters.Status)
	}
	b.WriteString(m.styles.Help.Render(fmt.Sprintf("status: %s   sort: %s", filter, sortName(m.nav.Filters.Sort))))
	b.WriteString("\n\n")

	if len(m.listRows) == 0 {
		b.WriteString(m.styles.Help.Render("No appointments match."))
		b.WriteString("\n")
	}

	for i, a := range m.listRows {
		row := fmt.Sprintf("%s  %-8s  %-20s %-12s %-28s %9s  %s",
			dateutil.FormatDate(a.Date), a.StartTime,
			clip(a.ClientName, 20), clip(a.StaffName, 12), clip(a.Services, 28),
			appointment.FormatPrice(a.Price), a.Status)
		style := m.styles.ListRow
		if i == m.listIndex {
			style = m.styles.ListSel
		}
		b.WriteString(style.Render(row))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func sortName(s nav.SortOrder) string {
	switch s {
	case nav.SortByClient:
		return "client"
	case nav.SortByPrice:
		return "price"
	default:
		return "date"
	}
}

func (m *Model) renderForm() string {
	f := &m.form

	title := "New booking"
	if f.editing != nil {
		title = "Edit booking"
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(title))
	b.WriteString("\n\n")

	for i := 0; i < fieldCount; i++ {
		label := m.styles.FormLabel
		if i == f.focus {
			label = m.styles.FormFocus
		}
		b.WriteString(label.Render(pad(fieldLabels[i], 9)))
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n")
	}

	agg := f.preview(m.services)
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(fmt.Sprintf("%d min  %s", agg.TotalDuration, aggregatePrice(agg))))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Help.Render("enter save  tab next field  esc cancel"))

	box := m.styles.ModalBox.Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func aggregatePrice(agg appointment.Aggregate) string {
	if agg.TotalPrice == nil {
		return "price n/a"
	}
	return appointment.FormatPrice(*agg.TotalPrice)
}

func (m *Model) renderFooter() string {
	help := "h/l day  j/k slot  H/L week  tab day view  a list  n new  s status  x cancel  y copy  q quit"
	if m.nav.Mode() == nav.ModeListAll {
		help = "j/k move  f status filter  o sort  c clear  enter edit  s status  x cancel  a back  q quit"
	}

	status := ""
	if m.loading {
		status = "Loading..."
	}
	if m.statusMsg != "" && m.now().Before(m.statusTime) {
		status = m.statusMsg
	}

	style := m.styles.Status
	if m.statusErr {
		style = m.styles.Error
	}

	line := style.Render(status)
	if stats := m.weekStats(); stats != "" {
		line += m.styles.Help.Render("  " + stats)
	}
	return line + "\n" + m.styles.Help.Render(help)
}

// weekStats summarizes the loaded week's booked revenue for the footer.
func (m *Model) weekStats() string {
	if m.week == nil || m.nav.Mode() == nav.ModeListAll {
		return ""
	}
	r := revenue.Summarize(m.nav.WeekStart(), m.week.All())
	if r.Count == 0 {
		return ""
	}
	return fmt.Sprintf("booked %s across %d", appointment.FormatPrice(r.Total), r.Count)
}

func pad(s string, width int) string {
	if len(s) > width {
		return clip(s, width)
	}
	return s + strings.Repeat(" ", width-len(s))
}

func clip(s string, width int) string {
	if len(s) <= width {
		return s
	}
	return s[:width]
}
