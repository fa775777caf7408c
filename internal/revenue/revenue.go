// Package revenue aggregates booked income over a week of appointments.
package revenue

import (
	"time"

	"github.com/glowdesk/glowdesk/internal/appointment"
	"github.com/glowdesk/glowdesk/internal/dateutil"
)

// DayTotal holds one weekday's revenue.
type DayTotal struct {
	Total float64
	Count int
}

// StaffTotal holds one staff member's revenue for the week.
type StaffTotal struct {
	Name  string
	Total float64
	Count int
}

// WeekReport aggregates revenue for a Monday-anchored week. Only
// appointments whose status earns revenue (confirmed, in progress,
// completed) are counted; pending and cancelled bookings are excluded.
type WeekReport struct {
	Start    time.Time
	End      time.Time
	Total    float64
	Count    int
	DayStats [7]DayTotal
	ByStaff  []StaffTotal
}

// Summarize builds the week report from appointments. Appointments outside
// the week or with non-earning statuses are skipped.
func Summarize(weekStart time.Time, appts []*appointment.Appointment) *WeekReport {
	start, end := dateutil.WeekRange(weekStart)

	report := &WeekReport{Start: start, End: end}
	staffIndex := make(map[string]int)

	for _, a := range appts {
		if !a.Earns() {
			continue
		}
		offset := dayOffset(start, a.Date)
		if offset < 0 || offset > 6 {
			continue
		}

		report.Total += a.Price
		report.Count++
		report.DayStats[offset].Total += a.Price
		report.DayStats[offset].Count++

		i, ok := staffIndex[a.StaffName]
		if !ok {
			i = len(report.ByStaff)
			staffIndex[a.StaffName] = i
			report.ByStaff = append(report.ByStaff, StaffTotal{Name: a.StaffName})
		}
		report.ByStaff[i].Total += a.Price
		report.ByStaff[i].Count++
	}

	return report
}

// BestDay returns the weekday (0=Monday) with the highest revenue and that
// revenue. Returns -1 when no day earned anything.
func (r *WeekReport) BestDay() (weekday int, total float64) {
	weekday = -1
	for i, ds := range r.DayStats {
		if ds.Total > total {
			total = ds.Total
			weekday = i
		}
	}
	return weekday, total
}

// Average returns the mean price of counted appointments.
func (r *WeekReport) Average() float64 {
	if r.Count == 0 {
		return 0
	}
	return r.Total / float64(r.Count)
}

func dayOffset(weekStart, date time.Time) int {
	d := dateutil.TruncateToDay(date)
	return int(d.Sub(weekStart).Hours() / 24)
}
