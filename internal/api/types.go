package api

// Wire types for the salon backend. Status strings are UPPER_CASE on the
// wire; conversion to the in-memory lower-case enum happens in adapter.go
// and nowhere else.

type customerRecord struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type staffRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type serviceRecord struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Duration int     `json:"duration"`
	Price    float64 `json:"price"`
}

type appointmentRecord struct {
	ID              string          `json:"id"`
	Customer        customerRecord  `json:"customer"`
	Staff           staffRecord     `json:"staff"`
	Services        []serviceRecord `json:"services"`
	AppointmentDate string          `json:"appointmentDate"` // ISO-8601
	Status          string          `json:"status"`          // UPPER_CASE
	Notes           string          `json:"notes,omitempty"`
}

type appointmentsResponse struct {
	Appointments []appointmentRecord `json:"appointments"`
}

type staffResponse struct {
	Staff []staffRecord `json:"staff"`
}

type servicesResponse struct {
	Services []serviceRecord `json:"services"`
}

type customersResponse struct {
	Customers []customerRecord `json:"customers"`
}

// appointmentPayload is the write-path body for create and update.
type appointmentPayload struct {
	CustomerID      string   `json:"customerId"`
	StaffID         string   `json:"staffId"`
	ServiceIDs      []string `json:"serviceIds"`
	AppointmentDate string   `json:"appointmentDate"` // ISO-8601
	Status          string   `json:"status"`          // UPPER_CASE
	Notes           string   `json:"notes,omitempty"`
	Price           *float64 `json:"price,omitempty"`
}

type statusPayload struct {
	Status string `json:"status"`
}
