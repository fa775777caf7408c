// Package store keeps the session's fetched appointments in an in-memory
// SQLite database so the list view and revenue reports can filter and sort
// without refetching. Nothing here outlives the process; the backend stays
// the source of truth.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/glowdesk/glowdesk/internal/appointment"
	"github.com/glowdesk/glowdesk/internal/dateutil"
	"github.com/glowdesk/glowdesk/internal/nav"
)

// Store is the in-memory session cache.
type Store struct {
	db *sql.DB
}

// New opens an in-memory database and creates the schema.
func New() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening session cache: %w", err)
	}
	// An in-memory database exists per connection; a second connection
	// would see an empty schema.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to session cache: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS appointments (
			id           INTEGER PRIMARY KEY,
			backend_id   TEXT NOT NULL,
			client_name  TEXT NOT NULL,
			client_phone TEXT,
			staff_name   TEXT NOT NULL,
			services     TEXT,
			date         DATE NOT NULL,
			start_time   TIME NOT NULL,
			duration     INTEGER NOT NULL,
			price        REAL NOT NULL,
			status       TEXT NOT NULL,
			notes        TEXT
		);

		CREATE INDEX IF NOT EXISTS idx_appointments_date ON appointments(date);
		CREATE INDEX IF NOT EXISTS idx_appointments_status ON appointments(status);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating appointments table: %w", err)
	}
	return nil
}

// ReplaceRange swaps the cached rows for the inclusive date range with a
// fresh fetch result. Rows outside the range are untouched, so navigating
// between weeks accumulates the session's view of the calendar.
func (s *Store) ReplaceRange(ctx context.Context, from, to time.Time, appts []*appointment.Appointment) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`DELETE FROM appointments WHERE date >= ? AND date <= ?`,
		dateutil.FormatDate(from), dateutil.FormatDate(to),
	)
	if err != nil {
		return fmt.Errorf("clearing date range: %w", err)
	}

	query := `
		INSERT INTO appointments (
			id, backend_id, client_name, client_phone, staff_name,
			services, date, start_time, duration, price, status, notes
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, a := range appts {
		_, err := stmt.ExecContext(ctx,
			a.ID,
			a.BackendID,
			a.ClientName,
			a.ClientPhone,
			a.StaffName,
			a.Services,
			dateutil.FormatDate(a.Date),
			a.StartTime,
			a.Duration,
			a.Price,
			a.Status,
			a.Notes,
		)
		if err != nil {
			return fmt.Errorf("caching appointment for %q: %w", a.ClientName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Query returns cached appointments matching the list filters, in the
// requested sort order.
func (s *Store) Query(ctx context.Context, f nav.Filters) ([]*appointment.Appointment, error) {
	query := `
		SELECT id, backend_id, client_name, client_phone, staff_name,
		       services, date, start_time, duration, price, status, notes
		FROM appointments
		WHERE 1=1
	`
	var args []any

	if f.Status != "" {
		query += ` AND status = ?`
		args = append(args, f.Status)
	}
	if !f.From.IsZero() {
		query += ` AND date >= ?`
		args = append(args, dateutil.FormatDate(f.From))
	}
	if !f.To.IsZero() {
		query += ` AND date <= ?`
		args = append(args, dateutil.FormatDate(f.To))
	}

	switch f.Sort {
	case nav.SortByClient:
		query += ` ORDER BY client_name, date, start_time`
	case nav.SortByPrice:
		query += ` ORDER BY price DESC, date, start_time`
	default:
		query += ` ORDER BY date, start_time`
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying appointments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var appts []*appointment.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		appts = append(appts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating appointments: %w", err)
	}

	// SortByDate ties within a day are broken by the lexical start_time
	// column, which misorders 12-hour clock strings. Fix the order here.
	sortWithinDays(appts, f.Sort)

	return appts, nil
}

// Day returns the cached appointments on a single date, earliest first.
func (s *Store) Day(ctx context.Context, date time.Time) ([]*appointment.Appointment, error) {
	day := dateutil.TruncateToDay(date)
	return s.Query(ctx, nav.Filters{From: day, To: day})
}

// Range returns cached appointments in the inclusive date range, earliest
// first.
func (s *Store) Range(ctx context.Context, from, to time.Time) ([]*appointment.Appointment, error) {
	return s.Query(ctx, nav.Filters{From: from, To: to})
}

// Close releases database resources.
func (s *Store) Close() error {
	return s.db.Close()
}

func scanAppointment(rows *sql.Rows) (*appointment.Appointment, error) {
	var (
		a      appointment.Appointment
		date   string
		phone  sql.NullString
		svcs   sql.NullString
		notes  sql.NullString
		status string
	)

	err := rows.Scan(
		&a.ID,
		&a.BackendID,
		&a.ClientName,
		&phone,
		&a.StaffName,
		&svcs,
		&date,
		&a.StartTime,
		&a.Duration,
		&a.Price,
		&status,
		&notes,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning appointment: %w", err)
	}

	a.Date, err = dateutil.ParseDate(date)
	if err != nil {
		return nil, fmt.Errorf("parsing cached date: %w", err)
	}
	a.ClientPhone = phone.String
	a.Services = svcs.String
	a.Notes = notes.String
	a.Status = appointment.Status(status)

	return &a, nil
}

// sortWithinDays reorders same-day runs by parsed start minutes. The SQL
// ordering already groups rows by date (or by the primary sort key), so
// only adjacent same-day ties need fixing.
func sortWithinDays(appts []*appointment.Appointment, order nav.SortOrder) {
	if order != nav.SortByDate {
		return
	}
	for i := 0; i < len(appts); {
		j := i + 1
		for j < len(appts) && dateutil.SameDay(appts[j].Date, appts[i].Date) {
			j++
		}
		run := appts[i:j]
		for k := 1; k < len(run); k++ {
			for l := k; l > 0; l-- {
				ml, _ := run[l].StartMinutes()
				mp, _ := run[l-1].StartMinutes()
				if ml >= mp {
					break
				}
				run[l], run[l-1] = run[l-1], run[l]
			}
		}
		i = j
	}
}
