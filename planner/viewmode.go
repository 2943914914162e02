package planner

import "time"

// ViewMode is the temporal zoom level of the planner grid. It is always
// derived from the visible date range, never set directly.
type ViewMode int

const (
	ViewDay ViewMode = iota
	ViewWeek
	ViewMonth
	ViewYear
)

func (m ViewMode) String() string {
	switch m {
	case ViewDay:
		return "day"
	case ViewWeek:
		return "week"
	case ViewMonth:
		return "month"
	case ViewYear:
		return "year"
	}
	return "unknown"
}

// DeriveViewMode maps the span of a date range to a zoom level. A range
// shorter than one day is hourly, up to seven days is a week grid, up to
// thirty-one days a month grid, anything longer a year grid.
func DeriveViewMode(from, to time.Time) ViewMode {
	days := to.Sub(from).Hours() / 24
	switch {
	case days < 1:
		return ViewDay
	case days <= 7:
		return ViewWeek
	case days <= 31:
		return ViewMonth
	default:
		return ViewYear
	}
}
