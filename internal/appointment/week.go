package appointment

import (
	"sort"
	"time"

	"github.com/glowdesk/glowdesk/internal/dateutil"
)

// Day holds the appointments for a single calendar date, sorted by start
// time. Overlapping bookings are allowed: different staff members work in
// parallel.
type Day struct {
	Date         time.Time
	appointments []*Appointment
}

// NewDay creates an empty Day for the given date (time-of-day is dropped).
func NewDay(date time.Time) *Day {
	return &Day{Date: dateutil.TruncateToDay(date)}
}

// Add inserts an appointment, keeping the day sorted by start time.
// Appointments with unparseable times sort to the start of the day.
func (d *Day) Add(a *Appointment) {
	d.appointments = append(d.appointments, a)
	sort.SliceStable(d.appointments, func(i, j int) bool {
		mi, _ := d.appointments[i].StartMinutes()
		mj, _ := d.appointments[j].StartMinutes()
		return mi < mj
	})
}

// Appointments returns the day's bookings in start-time order.
func (d *Day) Appointments() []*Appointment {
	return d.appointments
}

// ForStaff returns the day's bookings for one staff member, matched by
// exact name. The appointment record carries only the denormalized staff
// name, so two staff members sharing a name would collide here.
func (d *Day) ForStaff(staffName string) []*Appointment {
	var result []*Appointment
	for _, a := range d.appointments {
		if a.StaffName == staffName {
			result = append(result, a)
		}
	}
	return result
}

// Week holds 7 days starting from a Monday.
type Week struct {
	StartDate time.Time // Monday
	Days      [7]*Day   // Monday (0) through Sunday (6)
}

// NewWeek creates an empty Week anchored at the Monday of the given date.
func NewWeek(date time.Time) *Week {
	monday := dateutil.WeekStart(date)
	w := &Week{StartDate: monday}
	for i := 0; i < 7; i++ {
		w.Days[i] = NewDay(monday.AddDate(0, 0, i))
	}
	return w
}

// NewWeekFromAppointments creates a Week and distributes appointments to
// their days. Appointments outside the week are ignored.
func NewWeekFromAppointments(date time.Time, appts []*Appointment) *Week {
	w := NewWeek(date)
	for _, a := range appts {
		if day := w.DayByDate(a.Date); day != nil {
			day.Add(a)
		}
	}
	return w
}

// Day returns the Day for the given weekday (0=Monday, 6=Sunday), or nil
// if out of range.
func (w *Week) Day(weekday int) *Day {
	if weekday < 0 || weekday > 6 {
		return nil
	}
	return w.Days[weekday]
}

// DayByDate returns the Day for the given date, nil if not in this week.
func (w *Week) DayByDate(date time.Time) *Day {
	for _, day := range w.Days {
		if dateutil.SameDay(day.Date, date) {
			return day
		}
	}
	return nil
}

// All returns every appointment in the week, ordered by day then start time.
func (w *Week) All() []*Appointment {
	var result []*Appointment
	for _, day := range w.Days {
		result = append(result, day.Appointments()...)
	}
	return result
}

// EndDate returns the Sunday of the week.
func (w *Week) EndDate() time.Time {
	return w.StartDate.AddDate(0, 0, 6)
}
