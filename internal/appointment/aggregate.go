package appointment

import "strings"

// DefaultDuration is the slot length, in minutes, assumed for a booking
// before any service has been chosen.
const DefaultDuration = 60

// Aggregate is a single schedulable unit derived from a multi-service
// selection: one label, one duration, one price.
type Aggregate struct {
	ServiceNames  string // joined by ", " in selection order
	TotalDuration int    // minutes
	TotalPrice    *float64
}

// Priced returns true once at least one service contributes a price.
// A nil TotalPrice means "nothing chosen yet", which is distinct from a
// selection of free services summing to zero.
func (a Aggregate) Priced() bool {
	return a.TotalPrice != nil
}

// Combine derives the aggregate for an ordered selection of service ids.
// Ids with no catalog entry contribute nothing. An empty selection falls
// back to the default slot duration and leaves the price unset.
func Combine(selected []string, catalog []Service) Aggregate {
	byID := make(map[string]Service, len(catalog))
	for _, s := range catalog {
		byID[s.ID] = s
	}

	var names []string
	var duration int
	var price float64
	found := false

	for _, id := range selected {
		svc, ok := byID[id]
		if !ok {
			continue
		}
		names = append(names, svc.Name)
		duration += svc.Duration
		price += svc.Price
		found = true
	}

	if !found {
		return Aggregate{TotalDuration: DefaultDuration}
	}

	return Aggregate{
		ServiceNames:  strings.Join(names, ", "),
		TotalDuration: duration,
		TotalPrice:    &price,
	}
}

// MatchServiceIDs reverse-maps a stored comma-joined service label back to
// catalog ids by exact name match. Names with no catalog match are dropped
// from the reconstructed selection, so editing an appointment whose services
// have since been renamed or removed loses those entries.
func MatchServiceIDs(label string, catalog []Service) []string {
	if label == "" {
		return nil
	}

	byName := make(map[string]string, len(catalog))
	for _, s := range catalog {
		byName[s.Name] = s.ID
	}

	var ids []string
	for _, name := range strings.Split(label, ", ") {
		if id, ok := byName[name]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}
