// Package api implements the appointment.Directory boundary against the
// salon REST backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/glowdesk/glowdesk/internal/appointment"
	"github.com/glowdesk/glowdesk/internal/dateutil"
)

const defaultTimeout = 30 * time.Second

// Client talks to the salon backend over HTTP. It implements
// appointment.Directory.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (used in tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout overrides the default request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// NewClient creates a backend client for the given base URL and bearer
// token.
func NewClient(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%s %s: backend returned %d: %s", method, path, resp.StatusCode, data)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// ListAppointments fetches appointments in the inclusive date range and
// adapts them into domain values.
func (c *Client) ListAppointments(ctx context.Context, from, to time.Time) ([]*appointment.Appointment, error) {
	q := url.Values{}
	q.Set("from", dateutil.FormatDate(from))
	q.Set("to", dateutil.FormatDate(to))

	var resp appointmentsResponse
	if err := c.do(ctx, http.MethodGet, "/appointments?"+q.Encode(), nil, &resp); err != nil {
		return nil, err
	}

	appts := make([]*appointment.Appointment, 0, len(resp.Appointments))
	for _, rec := range resp.Appointments {
		a, err := fromWire(rec)
		if err != nil {
			return nil, err
		}
		appts = append(appts, a)
	}
	return appts, nil
}

// CreateAppointment persists a new booking.
func (c *Client) CreateAppointment(ctx context.Context, draft *appointment.Draft) error {
	payload, err := toWire(draft)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, "/appointments", payload, nil)
}

// UpdateAppointment replaces the booking with the given backend id.
func (c *Client) UpdateAppointment(ctx context.Context, backendID string, draft *appointment.Draft) error {
	if backendID == "" {
		return appointment.ErrAppointmentMissing
	}
	payload, err := toWire(draft)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, "/appointments/"+url.PathEscape(backendID), payload, nil)
}

// UpdateStatus changes only the status of a persisted booking.
func (c *Client) UpdateStatus(ctx context.Context, backendID string, status appointment.Status) error {
	if backendID == "" {
		return appointment.ErrAppointmentMissing
	}
	payload := statusPayload{Status: statusToWire(status)}
	return c.do(ctx, http.MethodPatch, "/appointments/"+url.PathEscape(backendID)+"/status", payload, nil)
}

// ListStaff fetches the staff roster.
func (c *Client) ListStaff(ctx context.Context) ([]appointment.Staff, error) {
	var resp staffResponse
	if err := c.do(ctx, http.MethodGet, "/staff", nil, &resp); err != nil {
		return nil, err
	}
	roster := make([]appointment.Staff, 0, len(resp.Staff))
	for _, s := range resp.Staff {
		roster = append(roster, appointment.Staff{ID: s.ID, Name: s.Name})
	}
	return roster, nil
}

// ListServices fetches the service catalog.
func (c *Client) ListServices(ctx context.Context) ([]appointment.Service, error) {
	var resp servicesResponse
	if err := c.do(ctx, http.MethodGet, "/services", nil, &resp); err != nil {
		return nil, err
	}
	catalog := make([]appointment.Service, 0, len(resp.Services))
	for _, s := range resp.Services {
		catalog = append(catalog, appointment.Service{ID: s.ID, Name: s.Name, Duration: s.Duration, Price: s.Price})
	}
	return catalog, nil
}

// ListCustomers fetches the client book.
func (c *Client) ListCustomers(ctx context.Context) ([]appointment.Customer, error) {
	var resp customersResponse
	if err := c.do(ctx, http.MethodGet, "/customers", nil, &resp); err != nil {
		return nil, err
	}
	customers := make([]appointment.Customer, 0, len(resp.Customers))
	for _, cu := range resp.Customers {
		customers = append(customers, appointment.Customer{ID: cu.ID, Name: cu.Name, Phone: cu.Phone})
	}
	return customers, nil
}

var _ appointment.Directory = (*Client)(nil)
