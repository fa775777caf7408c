// Package grid maps appointment times onto calendar-grid coordinates and
// back. All functions are pure: a time string and a cell height in, a
// position out.
package grid

import (
	"github.com/glowdesk/glowdesk/internal/appointment"
)

const (
	// OpenHour is the first hour the calendar renders by default.
	OpenHour = 9
	// CloseHour is the hour the calendar stops rendering (exclusive).
	CloseHour = 21
	// HourRows is the number of hour rows in the default calendar window.
	HourRows = CloseHour - OpenHour
	// QuartersPerHour is the number of click-target sub-slots per hour cell.
	QuartersPerHour = 4
	// QuarterMinutes is the finest booking granularity.
	QuarterMinutes = 15
)

// Window is the hour range the calendar renders, configurable per salon.
type Window struct {
	Open  int // first rendered hour
	Close int // first hour past the window
}

// DefaultWindow is the standard business-hours window.
var DefaultWindow = Window{Open: OpenHour, Close: CloseHour}

// Rows returns the number of hour rows in the window.
func (w Window) Rows() int {
	return w.Close - w.Open
}

// Rect is a vertical pixel (or line) extent inside a calendar column,
// relative to the column top at the window's opening hour.
type Rect struct {
	Top    float64
	Height float64
}

// Position maps an appointment's start time and duration onto a Rect for a
// column rendered at cellHeight units per hour.
//
// No clamping is applied: a booking before the opening hour yields a
// negative Top and one running past close overflows the column. The
// rendering surface clips; this function never fails on out-of-window
// times, only on unparseable ones.
func (w Window) Position(startTime string, durationMinutes int, cellHeight float64) (Rect, error) {
	hour, minute, err := appointment.ParseClock(startTime)
	if err != nil {
		return Rect{}, err
	}

	hoursFromOpen := float64(hour - w.Open)
	minuteFraction := float64(minute) / 60

	return Rect{
		Top:    (hoursFromOpen + minuteFraction) * cellHeight,
		Height: float64(durationMinutes) / 60 * cellHeight,
	}, nil
}

// RowHour returns the hour rendered by row index r (0 is the opening row).
func (w Window) RowHour(r int) int {
	return w.Open + r
}

// QuarterTime converts an (hour row, quarter sub-slot) click target into a
// 12-hour time string. Sub-slot i yields i*15 minutes; no sub-quarter
// precision exists.
func (w Window) QuarterTime(row, quarter int) string {
	return appointment.FormatClock(w.RowHour(row), quarter*QuarterMinutes)
}

// Contains reports whether the appointment starts inside the window.
// Out-of-window bookings still get positions; the caller decides whether
// to surface them.
func (w Window) Contains(startTime string) bool {
	hour, _, err := appointment.ParseClock(startTime)
	if err != nil {
		return false
	}
	return hour >= w.Open && hour < w.Close
}

// Position maps a start time and duration onto the default window.
func Position(startTime string, durationMinutes int, cellHeight float64) (Rect, error) {
	return DefaultWindow.Position(startTime, durationMinutes, cellHeight)
}

// RowHour returns the hour rendered by row index r in the default window.
func RowHour(r int) int {
	return DefaultWindow.RowHour(r)
}

// QuarterTime converts a default-window click target into a time string.
func QuarterTime(row, quarter int) string {
	return DefaultWindow.QuarterTime(row, quarter)
}

// QuarterAt reverse-maps a vertical offset inside an hour cell to its
// quarter sub-slot index (0..3). Offsets beyond the cell clamp to the
// nearest edge quarter.
func QuarterAt(offset, cellHeight float64) int {
	if cellHeight <= 0 {
		return 0
	}
	quarterHeight := cellHeight / QuartersPerHour
	q := int(offset / quarterHeight)
	if q < 0 {
		return 0
	}
	if q >= QuartersPerHour {
		return QuartersPerHour - 1
	}
	return q
}

// InWindow reports whether the appointment starts inside the default
// window.
func InWindow(startTime string) bool {
	return DefaultWindow.Contains(startTime)
}
