package planner

import (
	"fmt"
	"time"
)

// ShiftTimes is a shift's date and time-of-day fields resolved to
// absolute instants.
type ShiftTimes struct {
	Start time.Time
	End   time.Time
}

// ParseShiftTimes combines a shift's date and HH:MM fields into absolute
// instants. Malformed input is reported instead of silently producing a
// shift that never matches any bucket.
func ParseShiftTimes(date, start, end string) (ShiftTimes, error) {
	s, err := time.Parse(DateLayout+"T"+TimeLayout, date+"T"+start)
	if err != nil {
		return ShiftTimes{}, fmt.Errorf("invalid shift start %q %q: %w", date, start, err)
	}
	e, err := time.Parse(DateLayout+"T"+TimeLayout, date+"T"+end)
	if err != nil {
		return ShiftTimes{}, fmt.Errorf("invalid shift end %q %q: %w", date, end, err)
	}
	return ShiftTimes{Start: s, End: e}, nil
}

// InBucket reports whether a shift belongs in the bucket at the given
// index for rendering. The coarse range-overlap test runs first; only
// shifts visible in the overall range are tested against the bucket.
func InBucket(st ShiftTimes, bucket Bucket, index int, from, to time.Time, mode ViewMode) bool {
	if !overlapsRange(st, from, to) {
		return false
	}

	switch mode {
	case ViewDay:
		return st.Start.Hour() <= index && st.End.Hour() >= index &&
			sameDay(st.Start, from)
	case ViewWeek:
		return st.Start.Format(DateLayout) == bucket.Date &&
			sameWeek(st.Start, from)
	case ViewMonth:
		return WeekOfMonth(st.Start) <= index && WeekOfMonth(st.End) >= index &&
			sameMonth(st.Start, from)
	case ViewYear:
		return monthIndex(st.Start) <= index && monthIndex(st.End) >= index &&
			sameYear(st.Start, from)
	}
	return false
}

// overlapsRange is the inclusive interval test: shift start inside the
// range, shift end inside the range, or the shift spanning the range.
func overlapsRange(st ShiftTimes, from, to time.Time) bool {
	within := func(t time.Time) bool {
		return !t.Before(from) && !t.After(to)
	}
	if within(st.Start) || within(st.End) {
		return true
	}
	return !st.Start.After(from) && !st.End.Before(to)
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func sameWeek(a, b time.Time) bool {
	return weekCfg.With(a).BeginningOfWeek().Equal(weekCfg.With(b).BeginningOfWeek())
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

func sameYear(a, b time.Time) bool {
	return a.Year() == b.Year()
}

// monthIndex is the zero-based month, matching zero-based bucket indexes
// in year view.
func monthIndex(t time.Time) int {
	return int(t.Month()) - 1
}
