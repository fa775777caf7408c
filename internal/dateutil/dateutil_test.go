package dateutil

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "valid date", input: "2025-01-15", want: time.Date(2025, 1, 15, 0, 0, 0, 0, time.Local)},
		{name: "leap day", input: "2024-02-29", want: time.Date(2024, 2, 29, 0, 0, 0, 0, time.Local)},
		{name: "year end", input: "2025-12-31", want: time.Date(2025, 12, 31, 0, 0, 0, 0, time.Local)},
		{name: "empty", input: "", wantErr: true},
		{name: "missing day", input: "2025-01", wantErr: true},
		{name: "slashes", input: "2025/01/15", wantErr: true},
		{name: "unpadded month", input: "2025-1-15", wantErr: true},
		{name: "unpadded day", input: "2025-01-5", wantErr: true},
		{name: "month zero", input: "2025-00-15", wantErr: true},
		{name: "month thirteen", input: "2025-13-15", wantErr: true},
		{name: "day zero", input: "2025-01-00", wantErr: true},
		{name: "non-numeric", input: "2025-ab-15", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDate(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) unexpected error: %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDateIsLocalMidnight(t *testing.T) {
	got, err := ParseDate("2025-06-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 {
		t.Errorf("expected midnight, got %v", got)
	}
	if got.Location() != time.Local {
		t.Errorf("expected local time, got %v", got.Location())
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{name: "padded month and day", input: time.Date(2025, 3, 5, 0, 0, 0, 0, time.Local), want: "2025-03-05"},
		{name: "double digits", input: time.Date(2025, 11, 28, 0, 0, 0, 0, time.Local), want: "2025-11-28"},
		{name: "time of day ignored", input: time.Date(2025, 7, 4, 18, 45, 0, 0, time.Local), want: "2025-07-04"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDate(tt.input); got != tt.want {
				t.Errorf("FormatDate(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatDateRoundTrip(t *testing.T) {
	for _, s := range []string{"2025-01-01", "2024-02-29", "2025-12-31", "2025-09-01"} {
		d, err := ParseDate(s)
		if err != nil {
			t.Fatalf("ParseDate(%q) unexpected error: %v", s, err)
		}
		if got := FormatDate(d); got != s {
			t.Errorf("FormatDate(ParseDate(%q)) = %q", s, got)
		}
	}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "monday stays", input: "2025-01-13", want: "2025-01-13"},
		{name: "wednesday", input: "2025-01-15", want: "2025-01-13"},
		{name: "saturday", input: "2025-01-18", want: "2025-01-13"},
		{name: "sunday goes to previous monday", input: "2025-01-19", want: "2025-01-13"},
		{name: "sunday not upcoming monday", input: "2025-09-07", want: "2025-09-01"},
		{name: "month boundary", input: "2025-03-01", want: "2025-02-24"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseDate(tt.input)
			if err != nil {
				t.Fatalf("ParseDate(%q) unexpected error: %v", tt.input, err)
			}
			got := WeekStart(d)
			if FormatDate(got) != tt.want {
				t.Errorf("WeekStart(%s) = %s, want %s", tt.input, FormatDate(got), tt.want)
			}
			if got.Weekday() != time.Monday {
				t.Errorf("WeekStart(%s) is %v, want Monday", tt.input, got.Weekday())
			}
		})
	}
}

func TestWeekStartIdempotent(t *testing.T) {
	for _, s := range []string{"2025-01-13", "2025-01-15", "2025-01-19", "2025-06-30"} {
		d, err := ParseDate(s)
		if err != nil {
			t.Fatalf("ParseDate(%q) unexpected error: %v", s, err)
		}
		once := WeekStart(d)
		twice := WeekStart(once)
		if !once.Equal(twice) {
			t.Errorf("WeekStart not idempotent for %s: %v != %v", s, once, twice)
		}
	}
}

func TestWeekStartZeroesTime(t *testing.T) {
	d := time.Date(2025, 1, 15, 14, 30, 45, 0, time.Local)
	got := WeekStart(d)
	if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 {
		t.Errorf("WeekStart kept a time-of-day component: %v", got)
	}
}

func TestWeekDates(t *testing.T) {
	monday, _ := ParseDate("2025-01-13")
	days := WeekDates(monday)

	want := []string{
		"2025-01-13", "2025-01-14", "2025-01-15", "2025-01-16",
		"2025-01-17", "2025-01-18", "2025-01-19",
	}
	for i, w := range want {
		if FormatDate(days[i]) != w {
			t.Errorf("WeekDates[%d] = %s, want %s", i, FormatDate(days[i]), w)
		}
	}
}

func TestNavigateWeek(t *testing.T) {
	monday, _ := ParseDate("2025-01-13")

	tests := []struct {
		name   string
		offset int
		want   string
	}{
		{name: "next week", offset: 1, want: "2025-01-20"},
		{name: "previous week", offset: -1, want: "2025-01-06"},
		{name: "no offset", offset: 0, want: "2025-01-13"},
		{name: "four weeks ahead", offset: 4, want: "2025-02-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NavigateWeek(monday, tt.offset)
			if FormatDate(got) != tt.want {
				t.Errorf("NavigateWeek(%d) = %s, want %s", tt.offset, FormatDate(got), tt.want)
			}
		})
	}
}

func TestNavigateWeekRoundTrip(t *testing.T) {
	monday, _ := ParseDate("2025-01-13")
	back := NavigateWeek(NavigateWeek(monday, 1), -1)
	if !back.Equal(monday) {
		t.Errorf("next then previous did not return to anchor: %v", back)
	}
	forth := NavigateWeek(NavigateWeek(monday, -1), 1)
	if !forth.Equal(monday) {
		t.Errorf("previous then next did not return to anchor: %v", forth)
	}
}

func TestSameDay(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want bool
	}{
		{
			name: "same day different times",
			a:    time.Date(2025, 1, 15, 9, 0, 0, 0, time.Local),
			b:    time.Date(2025, 1, 15, 18, 30, 0, 0, time.Local),
			want: true,
		},
		{
			name: "adjacent days",
			a:    time.Date(2025, 1, 15, 23, 59, 0, 0, time.Local),
			b:    time.Date(2025, 1, 16, 0, 0, 0, 0, time.Local),
			want: false,
		},
		{
			name: "same day-of-month different month",
			a:    time.Date(2025, 1, 15, 0, 0, 0, 0, time.Local),
			b:    time.Date(2025, 2, 15, 0, 0, 0, 0, time.Local),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameDay(tt.a, tt.b); got != tt.want {
				t.Errorf("SameDay = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewDateRange(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		wantErr    error
	}{
		{name: "valid range", start: "2025-01-15", end: "2025-01-20"},
		{name: "single day", start: "2025-01-15", end: ""},
		{name: "end before start", start: "2025-01-20", end: "2025-01-15", wantErr: ErrEndDateBeforeStart},
		{name: "bad start", start: "not-a-date", end: "", wantErr: ErrInvalidDateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewDateRange(tt.start, tt.end)
			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Fatalf("NewDateRange error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.end == "" && !r.End.Equal(r.Start) {
				t.Errorf("single-day range: end %v != start %v", r.End, r.Start)
			}
		})
	}
}
