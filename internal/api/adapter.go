package api

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/glowdesk/glowdesk/internal/appointment"
)

// localID hands out dashboard-local numeric ids for list keys. Backend ids
// are strings and arrive only once a booking is persisted.
var localID atomic.Int64

// statusFromWire lower-cases a wire status into the five-value enum.
// Unrecognized values default to pending rather than failing the whole
// fetch.
func statusFromWire(s string) appointment.Status {
	st := appointment.Status(strings.ToLower(s))
	if !st.Valid() {
		return appointment.StatusPending
	}
	return st
}

// statusToWire upper-cases a status for the backend.
func statusToWire(s appointment.Status) string {
	return strings.ToUpper(string(s))
}

// splitTimestamp breaks an ISO-8601 timestamp into the local calendar day
// and a 12-hour clock string.
func splitTimestamp(iso string) (date time.Time, clock string, err error) {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("parsing appointment date %q: %w", iso, err)
	}
	local := t.Local()
	date = time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.Local)
	clock = appointment.FormatClock(local.Hour(), local.Minute())
	return date, clock, nil
}

// combineTimestamp builds an ISO-8601 timestamp from a local calendar day
// and a 12-hour clock string.
func combineTimestamp(date time.Time, clock string) (string, error) {
	hour, minute, err := appointment.ParseClock(clock)
	if err != nil {
		return "", fmt.Errorf("combining appointment date: %w", err)
	}
	t := time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, time.Local)
	return t.Format(time.RFC3339), nil
}

// fromWire converts a backend appointment record into the domain type.
// The first listed service supplies the display duration and price; the
// label joins every service name. Multi-service detail beyond that exists
// only on the write path.
func fromWire(rec appointmentRecord) (*appointment.Appointment, error) {
	date, clock, err := splitTimestamp(rec.AppointmentDate)
	if err != nil {
		return nil, err
	}

	duration := appointment.DefaultDuration
	var price float64
	if len(rec.Services) > 0 {
		duration = rec.Services[0].Duration
		price = rec.Services[0].Price
	}

	names := make([]string, 0, len(rec.Services))
	for _, s := range rec.Services {
		names = append(names, s.Name)
	}

	return &appointment.Appointment{
		ID:          localID.Add(1),
		BackendID:   rec.ID,
		ClientName:  rec.Customer.Name,
		ClientPhone: rec.Customer.Phone,
		StaffName:   rec.Staff.Name,
		Services:    strings.Join(names, ", "),
		Date:        date,
		StartTime:   clock,
		Duration:    duration,
		Price:       price,
		Status:      statusFromWire(rec.Status),
		Notes:       rec.Notes,
	}, nil
}

// toWire converts a booking draft into the write-path payload.
func toWire(d *appointment.Draft) (appointmentPayload, error) {
	iso, err := combineTimestamp(d.Date, d.StartTime)
	if err != nil {
		return appointmentPayload{}, err
	}

	status := d.Status
	if status == "" {
		status = appointment.StatusPending
	}

	return appointmentPayload{
		CustomerID:      d.CustomerID,
		StaffID:         d.StaffID,
		ServiceIDs:      d.ServiceIDs,
		AppointmentDate: iso,
		Status:          statusToWire(status),
		Notes:           d.Notes,
		Price:           d.Price,
	}, nil
}
