package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/glowdesk/glowdesk/internal/api"
	"github.com/glowdesk/glowdesk/internal/appointment"
	"github.com/glowdesk/glowdesk/internal/dateutil"
	"github.com/glowdesk/glowdesk/internal/nav"
	"github.com/glowdesk/glowdesk/internal/revenue"
	"github.com/glowdesk/glowdesk/internal/store"
)

// backend is a minimal in-memory salon API for end-to-end tests.
type backend struct {
	mu       sync.Mutex
	nextID   int
	bookings []map[string]any
}

func (b *backend) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /appointments", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		_ = json.NewEncoder(w).Encode(map[string]any{"appointments": b.bookings})
	})

	mux.HandleFunc("POST /appointments", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			CustomerID      string   `json:"customerId"`
			StaffID         string   `json:"staffId"`
			ServiceIDs      []string `json:"serviceIds"`
			AppointmentDate string   `json:"appointmentDate"`
			Status          string   `json:"status"`
			Notes           string   `json:"notes"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		b.mu.Lock()
		defer b.mu.Unlock()
		b.nextID++
		b.bookings = append(b.bookings, map[string]any{
			"id":       "apt-" + strconv.Itoa(b.nextID),
			"customer": map[string]any{"id": payload.CustomerID, "name": "Ana Torres", "phone": "555-0100"},
			"staff":    map[string]any{"id": payload.StaffID, "name": "Maya"},
			"services": []map[string]any{
				{"id": "svc-1", "name": "Haircut", "duration": 60, "price": 3000},
			},
			"appointmentDate": payload.AppointmentDate,
			"status":          payload.Status,
			"notes":           payload.Notes,
		})
		w.WriteHeader(http.StatusCreated)
	})

	mux.HandleFunc("PATCH /appointments/{id}/status", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Status string `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		id := r.PathValue("id")

		b.mu.Lock()
		defer b.mu.Unlock()
		for _, rec := range b.bookings {
			if rec["id"] == id {
				rec["status"] = payload.Status
			}
		}
	})

	mux.HandleFunc("GET /staff", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"staff": []map[string]any{{"id": "st-1", "name": "Maya"}}})
	})
	mux.HandleFunc("GET /services", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"services": []map[string]any{
			{"id": "svc-1", "name": "Haircut", "duration": 60, "price": 3000},
		}})
	})
	mux.HandleFunc("GET /customers", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"customers": []map[string]any{
			{"id": "cus-1", "name": "Ana Torres", "phone": "555-0100"},
		}})
	})

	return mux
}

func newTestClient(t *testing.T) (*api.Client, *backend) {
	t.Helper()
	b := &backend{}
	srv := httptest.NewServer(b.handler())
	t.Cleanup(srv.Close)
	return api.NewClient(srv.URL, "test-token"), b
}

// TestBookThenReport walks the whole data path: create a booking through
// the client, fetch it back, cache it, and roll it up into revenue.
func TestBookThenReport(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	monday := dateutil.WeekStart(time.Now())
	draft := &appointment.Draft{
		CustomerID: "cus-1",
		StaffID:    "st-1",
		ServiceIDs: []string{"svc-1"},
		Date:       monday,
		StartTime:  "10:00 AM",
		Status:     appointment.StatusConfirmed,
	}
	if err := client.CreateAppointment(ctx, draft); err != nil {
		t.Fatalf("CreateAppointment: %v", err)
	}

	from, to := dateutil.WeekRange(monday)
	appts, err := client.ListAppointments(ctx, from, to)
	if err != nil {
		t.Fatalf("ListAppointments: %v", err)
	}
	if len(appts) != 1 {
		t.Fatalf("got %d appointments, want 1", len(appts))
	}
	a := appts[0]
	if a.StartTime != "10:00 AM" {
		t.Errorf("StartTime = %q", a.StartTime)
	}
	if !dateutil.SameDay(a.Date, monday) {
		t.Errorf("Date = %v, want the Monday it was booked on", a.Date)
	}
	if a.Status != appointment.StatusConfirmed {
		t.Errorf("Status = %q", a.Status)
	}

	cache, err := store.New()
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}
	defer func() { _ = cache.Close() }()

	if err := cache.ReplaceRange(ctx, from, to, appts); err != nil {
		t.Fatalf("ReplaceRange: %v", err)
	}
	cached, err := cache.Query(ctx, nav.Filters{Status: appointment.StatusConfirmed})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(cached) != 1 || cached[0].ClientName != "Ana Torres" {
		t.Fatalf("cache roundtrip lost the booking: %+v", cached)
	}

	report := revenue.Summarize(monday, cached)
	if report.Total != 3000 || report.Count != 1 {
		t.Errorf("revenue = %v over %d, want 3000 over 1", report.Total, report.Count)
	}
	if len(report.ByStaff) != 1 || report.ByStaff[0].Name != "Maya" {
		t.Errorf("staff rollup = %+v", report.ByStaff)
	}
}

// TestStatusFlow updates a booking status through the client and checks
// both the wire casing and what a refetch sees.
func TestStatusFlow(t *testing.T) {
	client, b := newTestClient(t)
	ctx := context.Background()

	monday := dateutil.WeekStart(time.Now())
	draft := &appointment.Draft{
		CustomerID: "cus-1",
		StaffID:    "st-1",
		ServiceIDs: []string{"svc-1"},
		Date:       monday,
		StartTime:  "2:00 PM",
	}
	if err := client.CreateAppointment(ctx, draft); err != nil {
		t.Fatalf("CreateAppointment: %v", err)
	}

	b.mu.Lock()
	id := b.bookings[0]["id"].(string)
	if b.bookings[0]["status"] != "PENDING" {
		t.Errorf("wire status = %v, want PENDING for a draft without one", b.bookings[0]["status"])
	}
	b.mu.Unlock()

	if err := client.UpdateStatus(ctx, id, appointment.StatusInProgress); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	b.mu.Lock()
	if b.bookings[0]["status"] != "IN_PROGRESS" {
		t.Errorf("wire status = %v, want IN_PROGRESS", b.bookings[0]["status"])
	}
	b.mu.Unlock()

	from, to := dateutil.WeekRange(monday)
	appts, err := client.ListAppointments(ctx, from, to)
	if err != nil {
		t.Fatalf("ListAppointments: %v", err)
	}
	if appts[0].Status != appointment.StatusInProgress {
		t.Errorf("refetched status = %q, want in_progress", appts[0].Status)
	}
}
