package appointment

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidClockFormat is returned for time strings that are not two-token
// "H:MM AM|PM". A malformed clock string is a data error, never silently
// defaulted: a wrong default would shift grid positions with no visible
// symptom.
var ErrInvalidClockFormat = errors.New(`time must be in "H:MM AM|PM" format`)

// ParseClock parses a 12-hour time string into a 24-hour (hour, minute)
// pair. Hour 12 with AM maps to 0, hour 12 with PM stays 12, and other PM
// hours gain 12.
func ParseClock(s string) (hour, minute int, err error) {
	tokens := strings.Split(s, " ")
	if len(tokens) != 2 {
		return 0, 0, ErrInvalidClockFormat
	}

	meridiem := tokens[1]
	if meridiem != "AM" && meridiem != "PM" {
		return 0, 0, ErrInvalidClockFormat
	}

	parts := strings.Split(tokens[0], ":")
	if len(parts) != 2 || len(parts[1]) != 2 {
		return 0, 0, ErrInvalidClockFormat
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, ErrInvalidClockFormat
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, ErrInvalidClockFormat
	}
	if h < 1 || h > 12 || m < 0 || m > 59 {
		return 0, 0, ErrInvalidClockFormat
	}

	switch {
	case h == 12 && meridiem == "AM":
		h = 0
	case h != 12 && meridiem == "PM":
		h += 12
	}

	return h, m, nil
}

// FormatClock formats a 24-hour (hour, minute) pair as a 12-hour string with
// no leading zero on the hour. Hour 0 renders as 12 AM and hour 12 as 12 PM.
func FormatClock(hour, minute int) string {
	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}

	h := hour % 12
	if h == 0 {
		h = 12
	}

	return fmt.Sprintf("%d:%02d %s", h, minute, meridiem)
}

// ClockMinutes converts a 12-hour time string to minutes since midnight.
func ClockMinutes(s string) (int, error) {
	h, m, err := ParseClock(s)
	if err != nil {
		return 0, err
	}
	return h*60 + m, nil
}

// ClockFromMinutes converts minutes since midnight to a 12-hour string.
// Values are clamped to the same day.
func ClockFromMinutes(mins int) string {
	if mins < 0 {
		mins = 0
	}
	if mins >= 24*60 {
		mins = 24*60 - 1
	}
	return FormatClock(mins/60, mins%60)
}
