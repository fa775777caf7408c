// Package dateutil provides calendar-day parsing and week-boundary arithmetic.
package dateutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Validation errors.
var (
	ErrInvalidDateFormat  = errors.New("date must be in YYYY-MM-DD format")
	ErrEndDateBeforeStart = errors.New("end date must be on or after start date")
)

// DateRange represents a validated inclusive date range.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange creates a new DateRange with validation.
// startDate can be empty (defaults to today) or in YYYY-MM-DD format.
// endDate can be empty (defaults to startDate) or in YYYY-MM-DD format.
// Returns an error if endDate is before startDate.
func NewDateRange(startDate, endDate string) (*DateRange, error) {
	var start time.Time
	var err error
	if startDate == "" {
		start = TruncateToDay(time.Now())
	} else {
		start, err = ParseDate(startDate)
		if err != nil {
			return nil, err
		}
	}

	end := start
	if endDate != "" {
		end, err = ParseDate(endDate)
		if err != nil {
			return nil, err
		}
	}

	if end.Before(start) {
		return nil, ErrEndDateBeforeStart
	}

	return &DateRange{Start: start, End: end}, nil
}

// ParseDate parses a date string in YYYY-MM-DD format into local midnight.
// The components are decomposed by hand rather than through time.Parse so the
// resulting day never shifts with the process time zone.
func ParseDate(s string) (time.Time, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 || len(parts[0]) != 4 || len(parts[1]) != 2 || len(parts[2]) != 2 {
		return time.Time{}, ErrInvalidDateFormat
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, ErrInvalidDateFormat
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), nil
}

// FormatDate formats a date as YYYY-MM-DD with zero-padded month and day.
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// WeekStart returns the Monday at or before t, truncated to midnight.
// Sunday belongs to the week that started six days earlier, not the
// upcoming one: weeks run Monday through Sunday.
func WeekStart(t time.Time) time.Time {
	t = TruncateToDay(t)
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday is day 7 of the Monday-anchored week
	}
	return t.AddDate(0, 0, -(weekday - 1))
}

// WeekDates returns the 7 consecutive dates starting at weekStart.
func WeekDates(weekStart time.Time) [7]time.Time {
	var days [7]time.Time
	for i := 0; i < 7; i++ {
		days[i] = weekStart.AddDate(0, 0, i)
	}
	return days
}

// NavigateWeek returns the week start offset by the given number of weeks.
// Negative offsets navigate backwards.
func NavigateWeek(weekStart time.Time, offsetWeeks int) time.Time {
	return weekStart.AddDate(0, 0, offsetWeeks*7)
}

// WeekRange returns the Monday and Sunday of the week containing t.
func WeekRange(t time.Time) (monday, sunday time.Time) {
	monday = WeekStart(t)
	sunday = monday.AddDate(0, 0, 6)
	return monday, sunday
}

// TruncateToDay returns t with the time-of-day zeroed.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day,
// ignoring the time-of-day of either value.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// IsToday reports whether t falls on the current calendar day.
func IsToday(t time.Time) bool {
	return SameDay(t, time.Now())
}

// WeekdayName returns the name of the weekday (0=Monday).
func WeekdayName(weekday int) string {
	names := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	if weekday < 0 || weekday > 6 {
		return ""
	}
	return names[weekday]
}

// WeekdayShortName returns the short name of the weekday (0=Monday).
func WeekdayShortName(weekday int) string {
	names := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	if weekday < 0 || weekday > 6 {
		return ""
	}
	return names[weekday]
}
