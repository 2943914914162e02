package planner

import "time"

// ShiftPlacement is the wire representation of where a shift sits on the
// calendar: an ISO date plus HH:MM start and end times.
type ShiftPlacement struct {
	Date  string `json:"date"`
	Start string `json:"shift_start"`
	End   string `json:"shift_end"`
}

// MoveShift computes a shift's new placement after a drag from one
// bucket index to another. The delta is applied in the unit of the view
// mode (hours, days, months or years) to both endpoints, so the shift's
// duration never changes; only its anchor moves.
func MoveShift(mode ViewMode, fromIndex, toIndex int, p ShiftPlacement) (ShiftPlacement, error) {
	st, err := ParseShiftTimes(p.Date, p.Start, p.End)
	if err != nil {
		return ShiftPlacement{}, err
	}

	delta := toIndex - fromIndex
	var start, end time.Time
	switch mode {
	case ViewDay:
		start = st.Start.Add(time.Duration(delta) * time.Hour)
		end = st.End.Add(time.Duration(delta) * time.Hour)
	case ViewWeek:
		start = st.Start.AddDate(0, 0, delta)
		end = st.End.AddDate(0, 0, delta)
	case ViewMonth:
		start = st.Start.AddDate(0, delta, 0)
		end = st.End.AddDate(0, delta, 0)
	case ViewYear:
		start = st.Start.AddDate(delta, 0, 0)
		end = st.End.AddDate(delta, 0, 0)
	}

	return ShiftPlacement{
		Date:  start.Format(DateLayout),
		Start: start.Format(TimeLayout),
		End:   end.Format(TimeLayout),
	}, nil
}
