package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placementDuration(t *testing.T, p ShiftPlacement) time.Duration {
	t.Helper()
	st, err := ParseShiftTimes(p.Date, p.Start, p.End)
	require.NoError(t, err)
	return st.End.Sub(st.Start)
}

func TestMoveShift_WeekMode(t *testing.T) {
	// Monday 09:00-17:00 dragged two day-buckets right lands on Wednesday
	// with the same times.
	p := ShiftPlacement{Date: "2024-06-10", Start: "09:00", End: "17:00"}

	moved, err := MoveShift(ViewWeek, 1, 3, p)
	require.NoError(t, err)
	assert.Equal(t, ShiftPlacement{Date: "2024-06-12", Start: "09:00", End: "17:00"}, moved)
}

func TestMoveShift_DayMode(t *testing.T) {
	p := ShiftPlacement{Date: "2024-06-10", Start: "09:00", End: "11:30"}

	moved, err := MoveShift(ViewDay, 9, 14, p)
	require.NoError(t, err)
	assert.Equal(t, ShiftPlacement{Date: "2024-06-10", Start: "14:00", End: "16:30"}, moved)
}

func TestMoveShift_BackwardDrag(t *testing.T) {
	p := ShiftPlacement{Date: "2024-06-12", Start: "09:00", End: "17:00"}

	moved, err := MoveShift(ViewWeek, 3, 1, p)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-10", moved.Date)
}

func TestMoveShift_MonthAndYearModes(t *testing.T) {
	p := ShiftPlacement{Date: "2024-06-10", Start: "09:00", End: "17:00"}

	moved, err := MoveShift(ViewMonth, 2, 3, p)
	require.NoError(t, err)
	assert.Equal(t, "2024-07-10", moved.Date)

	moved, err = MoveShift(ViewYear, 5, 6, p)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-10", moved.Date)
}

func TestMoveShift_PreservesDuration(t *testing.T) {
	placements := []ShiftPlacement{
		{Date: "2024-06-10", Start: "09:00", End: "17:00"},
		{Date: "2024-01-31", Start: "22:00", End: "23:45"},
		{Date: "2024-02-29", Start: "00:00", End: "08:15"},
	}
	deltas := [][2]int{{0, 0}, {1, 3}, {5, 2}, {0, 11}, {10, 0}}

	for _, mode := range []ViewMode{ViewDay, ViewWeek, ViewMonth, ViewYear} {
		for _, p := range placements {
			want := placementDuration(t, p)
			for _, d := range deltas {
				moved, err := MoveShift(mode, d[0], d[1], p)
				require.NoError(t, err)
				assert.Equal(t, want, placementDuration(t, moved),
					"mode %s %+v delta %v", mode, p, d)
			}
		}
	}
}

func TestMoveShift_MalformedPlacement(t *testing.T) {
	_, err := MoveShift(ViewWeek, 0, 1, ShiftPlacement{Date: "nope", Start: "09:00", End: "17:00"})
	assert.Error(t, err)
}
