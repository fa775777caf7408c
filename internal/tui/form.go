package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/glowdesk/glowdesk/internal/appointment"
	"github.com/glowdesk/glowdesk/internal/dateutil"
	"github.com/glowdesk/glowdesk/internal/tui/commands"
)

// Booking form field indexes.
const (
	fieldClient = iota
	fieldStaff
	fieldServices
	fieldDate
	fieldTime
	fieldNotes
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Client", "Staff", "Services", "Date", "Time", "Notes",
}

// bookingForm is the modal form for creating or editing a booking.
type bookingForm struct {
	editing *appointment.Appointment // nil when creating
	inputs  [fieldCount]textinput.Model
	focus   int
}

func newBookingForm() bookingForm {
	var f bookingForm
	placeholders := [fieldCount]string{
		"client name", "staff name", "services, comma separated",
		"YYYY-MM-DD", "H:MM AM", "optional notes",
	}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 128
		ti.Width = 36
		f.inputs[i] = ti
	}
	f.inputs[fieldClient].Focus()
	return f
}

// openNewForm opens an empty booking form anchored at the given slot.
func (m *Model) openNewForm(date time.Time, startTime string) {
	f := newBookingForm()
	f.inputs[fieldDate].SetValue(dateutil.FormatDate(date))
	f.inputs[fieldTime].SetValue(startTime)
	m.form = f
	m.mode = ModeForm
}

// openEditForm opens the form prefilled from an existing booking. The
// services field carries the display label; matching it back to catalog
// entries is exact by name, so renamed services drop out of the selection.
func (m *Model) openEditForm(a *appointment.Appointment) {
	f := newBookingForm()
	f.editing = a
	f.inputs[fieldClient].SetValue(a.ClientName)
	f.inputs[fieldStaff].SetValue(a.StaffName)
	f.inputs[fieldServices].SetValue(a.Services)
	f.inputs[fieldDate].SetValue(dateutil.FormatDate(a.Date))
	f.inputs[fieldTime].SetValue(a.StartTime)
	f.inputs[fieldNotes].SetValue(a.Notes)
	m.form = f
	m.mode = ModeForm
}

// updateForm processes a key press while the booking form is open.
func (m *Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		return m, nil

	case "tab", "down":
		m.form.setFocus((m.form.focus + 1) % fieldCount)
		return m, nil

	case "shift+tab", "up":
		m.form.setFocus((m.form.focus + fieldCount - 1) % fieldCount)
		return m, nil

	case "enter":
		return m.submitForm()
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (f *bookingForm) setFocus(i int) {
	f.inputs[f.focus].Blur()
	f.focus = i
	f.inputs[i].Focus()
}

// preview aggregates the currently entered services against the catalog.
func (f *bookingForm) preview(catalog []appointment.Service) appointment.Aggregate {
	ids := appointment.MatchServiceIDs(f.inputs[fieldServices].Value(), catalog)
	return appointment.Combine(ids, catalog)
}

// submitForm validates the form and issues the save command.
func (m *Model) submitForm() (tea.Model, tea.Cmd) {
	f := &m.form

	draft, err := m.buildDraft(f)
	if err != nil {
		m.setError(err)
		return m, nil
	}

	backendID := ""
	if f.editing != nil {
		backendID = f.editing.BackendID
		draft.Status = f.editing.Status
	}

	return m, commands.SaveAppointment(m.dir, backendID, draft)
}

// buildDraft resolves the form's names against the loaded roster, catalog,
// and client book. Matching is exact; a typo surfaces as an error rather
// than a silent best-effort booking.
func (m *Model) buildDraft(f *bookingForm) (*appointment.Draft, error) {
	clientName := f.inputs[fieldClient].Value()
	customer, ok := findCustomer(m.customers, clientName)
	if !ok {
		return nil, fmt.Errorf("unknown client %q", clientName)
	}

	staffName := f.inputs[fieldStaff].Value()
	staff, ok := findStaff(m.roster, staffName)
	if !ok {
		return nil, fmt.Errorf("unknown staff member %q", staffName)
	}

	serviceIDs := appointment.MatchServiceIDs(f.inputs[fieldServices].Value(), m.services)
	if len(serviceIDs) == 0 {
		return nil, fmt.Errorf("no known services in %q", f.inputs[fieldServices].Value())
	}

	date, err := dateutil.ParseDate(f.inputs[fieldDate].Value())
	if err != nil {
		return nil, err
	}

	startTime := f.inputs[fieldTime].Value()
	if _, _, err := appointment.ParseClock(startTime); err != nil {
		return nil, err
	}

	agg := appointment.Combine(serviceIDs, m.services)

	return &appointment.Draft{
		CustomerID: customer.ID,
		StaffID:    staff.ID,
		ServiceIDs: serviceIDs,
		Date:       date,
		StartTime:  startTime,
		Status:     appointment.StatusPending,
		Notes:      f.inputs[fieldNotes].Value(),
		Price:      agg.TotalPrice,
	}, nil
}

func findCustomer(customers []appointment.Customer, name string) (appointment.Customer, bool) {
	for _, c := range customers {
		if c.Name == name {
			return c, true
		}
	}
	return appointment.Customer{}, false
}

func findStaff(roster []appointment.Staff, name string) (appointment.Staff, bool) {
	for _, s := range roster {
		if s.Name == name {
			return s, true
		}
	}
	return appointment.Staff{}, false
}
