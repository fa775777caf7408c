package grid

import (
	"time"

	"github.com/glowdesk/glowdesk/internal/appointment"
	"github.com/glowdesk/glowdesk/internal/dateutil"
)

// Column is one vertical lane of the calendar: a weekday in week mode, a
// staff member in day mode.
type Column struct {
	Title        string
	Date         time.Time // the day this column renders
	Appointments []*appointment.Appointment
}

// WeekColumns builds the 7 weekday columns for the week starting at monday.
// Each appointment lands in the column whose calendar day matches its date;
// bookings outside the week are dropped.
func WeekColumns(monday time.Time, appts []*appointment.Appointment) []Column {
	dates := dateutil.WeekDates(monday)

	cols := make([]Column, 7)
	for i, d := range dates {
		cols[i] = Column{Title: dateutil.WeekdayShortName(i), Date: d}
	}

	for _, a := range appts {
		for i := range cols {
			if a.OnDate(cols[i].Date) {
				cols[i].Appointments = append(cols[i].Appointments, a)
				break
			}
		}
	}

	return cols
}

// StaffColumns builds one column per roster member for a single date.
// Assignment is by exact staff-name match against the appointment's
// denormalized StaffName field; two staff members sharing a name collide.
func StaffColumns(date time.Time, roster []appointment.Staff, appts []*appointment.Appointment) []Column {
	cols := make([]Column, len(roster))
	for i, s := range roster {
		cols[i] = Column{Title: s.Name, Date: date}
	}

	for _, a := range appts {
		if !a.OnDate(date) {
			continue
		}
		for i := range cols {
			if cols[i].Title == a.StaffName {
				cols[i].Appointments = append(cols[i].Appointments, a)
				break
			}
		}
	}

	return cols
}
