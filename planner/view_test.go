package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveViewMode_Boundaries(t *testing.T) {
	base := date(2024, time.June, 9)
	cases := []struct {
		name string
		span time.Duration
		want ViewMode
	}{
		{"one hour", time.Hour, ViewDay},
		{"just under a day", 24*time.Hour - time.Second, ViewDay},
		{"exactly one day", 24 * time.Hour, ViewWeek},
		{"exactly seven days", 7 * 24 * time.Hour, ViewWeek},
		{"twenty days", 20 * 24 * time.Hour, ViewMonth},
		{"exactly thirty-one days", 31 * 24 * time.Hour, ViewMonth},
		{"four hundred days", 400 * 24 * time.Hour, ViewYear},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DeriveViewMode(base, base.Add(tc.span)))
		})
	}
}

func TestNewView_InitialWeek(t *testing.T) {
	// Reference instant mid-week; the view opens on its Sunday..Saturday week.
	ref := time.Date(2024, time.June, 12, 15, 30, 0, 0, time.UTC)
	v := NewView(ref)

	from, to := v.Range()
	assert.Equal(t, "2024-06-09", from.Format(DateLayout))
	assert.Equal(t, "2024-06-15", to.Format(DateLayout))
	assert.Equal(t, ViewWeek, v.Mode())
	require.Len(t, v.Buckets(), 7)
}

func TestView_SetRangeRederivesEverything(t *testing.T) {
	v := NewView(time.Date(2024, time.June, 12, 0, 0, 0, 0, time.UTC))

	from := date(2024, time.June, 10)
	v.SetRange(from, from.Add(3*time.Hour))
	assert.Equal(t, ViewDay, v.Mode())
	assert.Len(t, v.Buckets(), 24)

	v.SetRange(date(2024, time.January, 1), date(2024, time.December, 31))
	assert.Equal(t, ViewYear, v.Mode())
	assert.Len(t, v.Buckets(), 12)
}

// The week-view walkthrough from the planner's reference scenario: one
// Monday shift, visible only in the Monday column, dragged two columns
// right onto Wednesday.
func TestPlanner_WeekScenario(t *testing.T) {
	v := NewView(time.Date(2024, time.June, 12, 8, 0, 0, 0, time.UTC))
	from, to := v.Range()
	require.Equal(t, ViewWeek, v.Mode())

	st := mustShift(t, "2024-06-10", "09:00", "17:00")

	var hitIndex = -1
	for i, b := range v.Buckets() {
		if InBucket(st, b, i, from, to, v.Mode()) {
			require.Equal(t, -1, hitIndex, "shift must occupy exactly one column")
			hitIndex = i
		}
	}
	require.Equal(t, 1, hitIndex) // Monday

	moved, err := MoveShift(v.Mode(), hitIndex, hitIndex+2,
		ShiftPlacement{Date: "2024-06-10", Start: "09:00", End: "17:00"})
	require.NoError(t, err)
	assert.Equal(t, ShiftPlacement{Date: "2024-06-12", Start: "09:00", End: "17:00"}, moved)
}
