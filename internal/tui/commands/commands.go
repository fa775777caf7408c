// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glowdesk/glowdesk/internal/appointment"
)

// ScheduleLoadedMsg is sent when an appointment fetch completes. Generation
// identifies the fetch that produced it; the model discards results from
// superseded fetches so a slow response can never overwrite a newer one.
type ScheduleLoadedMsg struct {
	Generation   int
	From         time.Time
	To           time.Time
	Appointments []*appointment.Appointment
}

// RosterLoadedMsg is sent when the staff roster is loaded.
type RosterLoadedMsg struct {
	Staff []appointment.Staff
}

// CatalogLoadedMsg is sent when the service catalog is loaded.
type CatalogLoadedMsg struct {
	Services []appointment.Service
}

// CustomersLoadedMsg is sent when the client book is loaded.
type CustomersLoadedMsg struct {
	Customers []appointment.Customer
}

// SavedMsg is sent after a booking is created or updated. The model reacts
// by refetching the visible range rather than patching local state.
type SavedMsg struct {
	Created bool
}

// StatusChangedMsg is sent after a status update is accepted.
type StatusChangedMsg struct {
	Status appointment.Status
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// FetchSchedule loads appointments for the inclusive date range.
func FetchSchedule(dir appointment.Directory, generation int, from, to time.Time) tea.Cmd {
	return func() tea.Msg {
		appts, err := dir.ListAppointments(context.Background(), from, to)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return ScheduleLoadedMsg{
			Generation:   generation,
			From:         from,
			To:           to,
			Appointments: appts,
		}
	}
}

// FetchRoster loads the staff roster.
func FetchRoster(dir appointment.Directory) tea.Cmd {
	return func() tea.Msg {
		staff, err := dir.ListStaff(context.Background())
		if err != nil {
			return ErrMsg{Err: err}
		}
		return RosterLoadedMsg{Staff: staff}
	}
}

// FetchCatalog loads the service catalog.
func FetchCatalog(dir appointment.Directory) tea.Cmd {
	return func() tea.Msg {
		services, err := dir.ListServices(context.Background())
		if err != nil {
			return ErrMsg{Err: err}
		}
		return CatalogLoadedMsg{Services: services}
	}
}

// FetchCustomers loads the client book.
func FetchCustomers(dir appointment.Directory) tea.Cmd {
	return func() tea.Msg {
		customers, err := dir.ListCustomers(context.Background())
		if err != nil {
			return ErrMsg{Err: err}
		}
		return CustomersLoadedMsg{Customers: customers}
	}
}

// SaveAppointment creates a new booking, or replaces one when backendID is
// non-empty.
func SaveAppointment(dir appointment.Directory, backendID string, draft *appointment.Draft) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if backendID == "" {
			if err := dir.CreateAppointment(ctx, draft); err != nil {
				return ErrMsg{Err: err}
			}
			return SavedMsg{Created: true}
		}
		if err := dir.UpdateAppointment(ctx, backendID, draft); err != nil {
			return ErrMsg{Err: err}
		}
		return SavedMsg{Created: false}
	}
}

// ChangeStatus moves a booking to the given lifecycle status.
func ChangeStatus(dir appointment.Directory, backendID string, status appointment.Status) tea.Cmd {
	return func() tea.Msg {
		if err := dir.UpdateStatus(context.Background(), backendID, status); err != nil {
			return ErrMsg{Err: err}
		}
		return StatusChangedMsg{Status: status}
	}
}

// ShowStatus emits a temporary status message.
func ShowStatus(msg string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsgCmd{Msg: msg}
	}
}
