package appointment

import "testing"

var testCatalog = []Service{
	{ID: "svc-1", Name: "Haircut", Duration: 60, Price: 3000},
	{ID: "svc-2", Name: "Blow Dry", Duration: 30, Price: 1500},
	{ID: "svc-3", Name: "Color", Duration: 90, Price: 5500},
	{ID: "svc-4", Name: "Consultation", Duration: 15, Price: 0},
}

func TestCombine(t *testing.T) {
	tests := []struct {
		name         string
		selected     []string
		wantNames    string
		wantDuration int
		wantPrice    float64
		wantPriced   bool
	}{
		{
			name:         "two services in selection order",
			selected:     []string{"svc-1", "svc-2"},
			wantNames:    "Haircut, Blow Dry",
			wantDuration: 90,
			wantPrice:    4500,
			wantPriced:   true,
		},
		{
			name:         "selection order is preserved not catalog order",
			selected:     []string{"svc-3", "svc-1"},
			wantNames:    "Color, Haircut",
			wantDuration: 150,
			wantPrice:    8500,
			wantPriced:   true,
		},
		{
			name:         "single service",
			selected:     []string{"svc-2"},
			wantNames:    "Blow Dry",
			wantDuration: 30,
			wantPrice:    1500,
			wantPriced:   true,
		},
		{
			name:         "free service yields zero price not unset",
			selected:     []string{"svc-4"},
			wantNames:    "Consultation",
			wantDuration: 15,
			wantPrice:    0,
			wantPriced:   true,
		},
		{
			name:         "unknown id contributes nothing",
			selected:     []string{"svc-1", "svc-999"},
			wantNames:    "Haircut",
			wantDuration: 60,
			wantPrice:    3000,
			wantPriced:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Combine(tt.selected, testCatalog)
			if got.ServiceNames != tt.wantNames {
				t.Errorf("ServiceNames = %q, want %q", got.ServiceNames, tt.wantNames)
			}
			if got.TotalDuration != tt.wantDuration {
				t.Errorf("TotalDuration = %d, want %d", got.TotalDuration, tt.wantDuration)
			}
			if got.Priced() != tt.wantPriced {
				t.Fatalf("Priced() = %v, want %v", got.Priced(), tt.wantPriced)
			}
			if tt.wantPriced && *got.TotalPrice != tt.wantPrice {
				t.Errorf("TotalPrice = %v, want %v", *got.TotalPrice, tt.wantPrice)
			}
		})
	}
}

func TestCombineEmptySelection(t *testing.T) {
	got := Combine(nil, testCatalog)

	if got.TotalDuration != DefaultDuration {
		t.Errorf("TotalDuration = %d, want default %d", got.TotalDuration, DefaultDuration)
	}
	if got.TotalPrice != nil {
		t.Errorf("empty selection must leave price unset, got %v", *got.TotalPrice)
	}
	if got.ServiceNames != "" {
		t.Errorf("ServiceNames = %q, want empty", got.ServiceNames)
	}
}

func TestCombineOnlyUnknownIDs(t *testing.T) {
	got := Combine([]string{"svc-404"}, testCatalog)
	if got.TotalDuration != DefaultDuration || got.TotalPrice != nil {
		t.Errorf("unknown-only selection should behave like empty, got %+v", got)
	}
}

func TestMatchServiceIDs(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  []string
	}{
		{name: "single match", label: "Haircut", want: []string{"svc-1"}},
		{name: "multiple in label order", label: "Color, Haircut", want: []string{"svc-3", "svc-1"}},
		{name: "unmatched name silently dropped", label: "Haircut, Perm", want: []string{"svc-1"}},
		{name: "all unmatched", label: "Perm, Waxing", want: nil},
		{name: "empty label", label: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchServiceIDs(tt.label, testCatalog)
			if len(got) != len(tt.want) {
				t.Fatalf("MatchServiceIDs(%q) = %v, want %v", tt.label, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("MatchServiceIDs(%q)[%d] = %q, want %q", tt.label, i, got[i], tt.want[i])
				}
			}
		})
	}
}

// A lossy edit round trip: reconstructing a selection from a label and
// re-aggregating drops any renamed service without error.
func TestEditReconstructionIsLossy(t *testing.T) {
	ids := MatchServiceIDs("Haircut, Perm", testCatalog)
	agg := Combine(ids, testCatalog)

	if agg.ServiceNames != "Haircut" {
		t.Errorf("ServiceNames = %q, want %q", agg.ServiceNames, "Haircut")
	}
	if agg.TotalDuration != 60 {
		t.Errorf("TotalDuration = %d, want 60", agg.TotalDuration)
	}
}
