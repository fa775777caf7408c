package appointment

import (
	"context"
	"time"
)

// Draft is the write-path shape of a booking: id references instead of the
// denormalized names the read path carries.
type Draft struct {
	CustomerID string
	StaffID    string
	ServiceIDs []string
	Date       time.Time // local calendar day
	StartTime  string    // 12-hour clock
	Status     Status
	Notes      string
	Price      *float64 // nil while no service is selected
}

// Directory is the boundary with the salon backend. Implementations fetch
// and mutate the authoritative collections; the dashboard never merges
// writes locally, it re-fetches after any successful write.
type Directory interface {
	// ListAppointments returns all appointments in the inclusive date range.
	ListAppointments(ctx context.Context, from, to time.Time) ([]*Appointment, error)

	// CreateAppointment persists a new booking.
	CreateAppointment(ctx context.Context, draft *Draft) error

	// UpdateAppointment replaces the booking with the given backend id.
	UpdateAppointment(ctx context.Context, backendID string, draft *Draft) error

	// UpdateStatus changes only the status of a persisted booking.
	UpdateStatus(ctx context.Context, backendID string, status Status) error

	// ListStaff returns the staff roster.
	ListStaff(ctx context.Context) ([]Staff, error)

	// ListServices returns the service catalog.
	ListServices(ctx context.Context) ([]Service, error)

	// ListCustomers returns the client book.
	ListCustomers(ctx context.Context) ([]Customer, error)
}
