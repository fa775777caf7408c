package appointment

import "fmt"

// FormatPrice renders a price held in cents as a dollar amount.
func FormatPrice(cents float64) string {
	return fmt.Sprintf("$%.2f", cents/100)
}

// Service is a bookable offering from the salon catalog. The catalog is
// owned by the backend; glowdesk only reads it.
type Service struct {
	ID       string
	Name     string
	Duration int // minutes
	Price    float64
}

// Staff is a member of the salon roster.
type Staff struct {
	ID   string
	Name string
}

// Customer is a client record from the backend.
type Customer struct {
	ID    string
	Name  string
	Phone string
}
