// Package appointment defines the core domain types for glowdesk.
package appointment

import (
	"errors"
	"fmt"
	"time"

	"github.com/glowdesk/glowdesk/internal/dateutil"
)

// Validation errors.
var (
	ErrEmptyClientName    = errors.New("client name cannot be empty")
	ErrEmptyStaffName     = errors.New("staff name cannot be empty")
	ErrNonPositiveLength  = errors.New("duration must be greater than zero")
	ErrNegativePrice      = errors.New("price cannot be negative")
	ErrInvalidStatus      = errors.New("unknown appointment status")
	ErrAppointmentMissing = errors.New("appointment not found")
)

// Status represents the lifecycle state of an appointment.
// Values are lower-case in memory and in the UI; the wire uses upper-case
// (see the api package for the boundary conversion).
type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Statuses lists all valid statuses in lifecycle order.
var Statuses = []Status{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
}

// Valid returns true if the status is one of the five known values.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// Next returns the following lifecycle status. Completed and cancelled are
// terminal and return themselves.
func (s Status) Next() Status {
	switch s {
	case StatusPending:
		return StatusConfirmed
	case StatusConfirmed:
		return StatusInProgress
	case StatusInProgress:
		return StatusCompleted
	default:
		return s
	}
}

// Appointment represents a scheduled salon booking.
type Appointment struct {
	ID          int64  // locally generated, used for list keys
	BackendID   string // set once the backend has persisted the booking
	ClientName  string
	ClientPhone string
	StaffName   string
	Services    string    // human-readable label, possibly "Cut, Color"
	Date        time.Time // local midnight
	StartTime   string    // 12-hour clock, e.g. "9:00 AM"
	Duration    int       // minutes
	Price       float64
	Status      Status
	Notes       string
}

// New creates an Appointment with validation.
// date must be YYYY-MM-DD and startTime a 12-hour "H:MM AM|PM" string.
func New(clientName, staffName, services, date, startTime string, duration int, price float64) (*Appointment, error) {
	if clientName == "" {
		return nil, ErrEmptyClientName
	}
	if staffName == "" {
		return nil, ErrEmptyStaffName
	}
	if duration <= 0 {
		return nil, ErrNonPositiveLength
	}
	if price < 0 {
		return nil, ErrNegativePrice
	}

	day, err := dateutil.ParseDate(date)
	if err != nil {
		return nil, err
	}

	if _, _, err := ParseClock(startTime); err != nil {
		return nil, fmt.Errorf("start time: %w", err)
	}

	return &Appointment{
		ClientName: clientName,
		StaffName:  staffName,
		Services:   services,
		Date:       day,
		StartTime:  startTime,
		Duration:   duration,
		Price:      price,
		Status:     StatusPending,
	}, nil
}

// OnDate reports whether the appointment falls on the given calendar day.
// Only the day matters; the time-of-day of either value is ignored.
func (a *Appointment) OnDate(d time.Time) bool {
	return dateutil.SameDay(a.Date, d)
}

// StartMinutes returns the start as minutes since midnight.
func (a *Appointment) StartMinutes() (int, error) {
	return ClockMinutes(a.StartTime)
}

// EndMinutes returns the end as minutes since midnight.
func (a *Appointment) EndMinutes() (int, error) {
	start, err := ClockMinutes(a.StartTime)
	if err != nil {
		return 0, err
	}
	return start + a.Duration, nil
}

// IsPersisted returns true once the backend has issued an id.
func (a *Appointment) IsPersisted() bool {
	return a.BackendID != ""
}

// IsActive returns true for bookings that still occupy their slot.
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// Earns returns true for statuses that count toward revenue.
func (a *Appointment) Earns() bool {
	switch a.Status {
	case StatusConfirmed, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}
