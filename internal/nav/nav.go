// Package nav owns the dashboard's "current view": which week or day is on
// screen, and whether the calendar grid or the flat appointment list is
// showing. It is a pure value type so transitions are trivially testable;
// the TUI layer applies the returned states.
package nav

import (
	"time"

	"github.com/glowdesk/glowdesk/internal/appointment"
	"github.com/glowdesk/glowdesk/internal/dateutil"
)

// Mode identifies the active view.
type Mode int

const (
	// ModeWeekGrid shows one column per weekday.
	ModeWeekGrid Mode = iota
	// ModeDayGrid shows one column per staff member for a single date.
	ModeDayGrid
	// ModeListAll shows the flat, filterable appointment list.
	ModeListAll
)

// SortOrder orders the list view.
type SortOrder int

const (
	SortByDate SortOrder = iota
	SortByClient
	SortByPrice
)

// Filters are the list view's local filters. They survive toggling in and
// out of the list and reset only when explicitly cleared.
type Filters struct {
	Status appointment.Status // empty = all
	From   time.Time          // zero = unbounded
	To     time.Time          // zero = unbounded
	Sort   SortOrder
}

// Clear resets every filter to its zero value.
func (f *Filters) Clear() {
	*f = Filters{}
}

// State is the navigation state machine. The zero value is not usable;
// construct with New.
type State struct {
	mode         Mode
	lastGridMode Mode      // grid mode to return to when leaving the list
	weekStart    time.Time // Monday anchor for week mode
	selectedDate time.Time // anchor for day mode
	Filters      Filters
}

// New returns the initial state: week grid anchored at the current week,
// day grid anchored at today.
func New(now time.Time) State {
	today := dateutil.TruncateToDay(now)
	return State{
		mode:         ModeWeekGrid,
		lastGridMode: ModeWeekGrid,
		weekStart:    dateutil.WeekStart(now),
		selectedDate: today,
	}
}

// Mode returns the active view mode.
func (s State) Mode() Mode { return s.mode }

// WeekStart returns the Monday anchor of the week view.
func (s State) WeekStart() time.Time { return s.weekStart }

// SelectedDate returns the day-view anchor date.
func (s State) SelectedDate() time.Time { return s.selectedDate }

// Next advances the view: one week forward in week mode, one day forward in
// day mode. The list view has no time anchor and is unchanged.
func (s State) Next() State {
	switch s.mode {
	case ModeWeekGrid:
		s.weekStart = dateutil.NavigateWeek(s.weekStart, 1)
	case ModeDayGrid:
		s.selectedDate = s.selectedDate.AddDate(0, 0, 1)
	}
	return s
}

// Previous rewinds the view: one week back in week mode, one day back in
// day mode.
func (s State) Previous() State {
	switch s.mode {
	case ModeWeekGrid:
		s.weekStart = dateutil.NavigateWeek(s.weekStart, -1)
	case ModeDayGrid:
		s.selectedDate = s.selectedDate.AddDate(0, 0, -1)
	}
	return s
}

// SelectDate re-enters the grid anchored at d: the containing week in week
// mode, the date itself in day mode. From the list view it returns to the
// last-active grid mode.
func (s State) SelectDate(d time.Time) State {
	d = dateutil.TruncateToDay(d)
	if s.mode == ModeListAll {
		s.mode = s.lastGridMode
	}
	s.weekStart = dateutil.WeekStart(d)
	s.selectedDate = d
	return s
}

// ToDayGrid switches to the staff-per-column day view anchored at d.
func (s State) ToDayGrid(d time.Time) State {
	s.mode = ModeDayGrid
	s.lastGridMode = ModeDayGrid
	s.selectedDate = dateutil.TruncateToDay(d)
	s.weekStart = dateutil.WeekStart(s.selectedDate)
	return s
}

// ToWeekGrid switches to the weekday-per-column week view containing the
// selected date.
func (s State) ToWeekGrid() State {
	s.mode = ModeWeekGrid
	s.lastGridMode = ModeWeekGrid
	s.weekStart = dateutil.WeekStart(s.selectedDate)
	return s
}

// ToggleList flips between the flat appointment list and the grid view that
// was last active. Filters are untouched in both directions.
func (s State) ToggleList() State {
	if s.mode == ModeListAll {
		s.mode = s.lastGridMode
	} else {
		s.lastGridMode = s.mode
		s.mode = ModeListAll
	}
	return s
}

// VisibleRange returns the inclusive date range the active view needs
// fetched: the 7-day week in week mode, the single day in day mode, and
// the filter range (or the current week as a fallback) in list mode.
func (s State) VisibleRange() (from, to time.Time) {
	switch s.mode {
	case ModeDayGrid:
		return s.selectedDate, s.selectedDate
	case ModeListAll:
		if !s.Filters.From.IsZero() || !s.Filters.To.IsZero() {
			from, to = s.Filters.From, s.Filters.To
			if from.IsZero() {
				from = to.AddDate(0, 0, -6)
			}
			if to.IsZero() {
				to = from.AddDate(0, 0, 6)
			}
			return from, to
		}
		return s.weekStart, s.weekStart.AddDate(0, 0, 6)
	default:
		return s.weekStart, s.weekStart.AddDate(0, 0, 6)
	}
}
