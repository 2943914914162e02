package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBucketsFor_DayMode(t *testing.T) {
	from := date(2024, time.June, 10)
	to := from.Add(6 * time.Hour)

	buckets := BucketsFor(ViewDay, from, to)
	require.Len(t, buckets, 24)
	assert.Equal(t, "00:00", buckets[0].Label)
	assert.Equal(t, "23:00", buckets[23].Label)
	for _, b := range buckets {
		assert.Equal(t, "2024-06-10", b.Date)
	}
}

func TestBucketsFor_WeekMode(t *testing.T) {
	from := date(2024, time.June, 9) // Sunday
	to := date(2024, time.June, 15)  // Saturday

	buckets := BucketsFor(ViewWeek, from, to)
	require.Len(t, buckets, 7)
	assert.Equal(t, "Sun the 9th", buckets[0].Label)
	assert.Equal(t, "Mon the 10th", buckets[1].Label)
	assert.Equal(t, "Sat the 15th", buckets[6].Label)
	assert.Equal(t, "2024-06-09", buckets[0].Date)
	assert.Equal(t, "2024-06-15", buckets[6].Date)
}

func TestBucketsFor_MonthMode(t *testing.T) {
	from := date(2024, time.June, 1)
	to := date(2024, time.June, 30)

	buckets := BucketsFor(ViewMonth, from, to)
	// June 2024 starts on a Saturday; six Sunday-anchored weeks touch it.
	require.Len(t, buckets, 6)
	assert.Equal(t, "2024-05-26", buckets[0].Date)
	assert.Equal(t, "2024-06-30", buckets[5].Date)
	assert.Contains(t, buckets[1].Label, "Jun")
}

func TestBucketsFor_YearMode(t *testing.T) {
	from := date(2024, time.March, 15)
	to := date(2024, time.November, 2)

	buckets := BucketsFor(ViewYear, from, to)
	require.Len(t, buckets, 12)
	assert.Equal(t, "Jan", buckets[0].Label)
	assert.Equal(t, "Dec", buckets[11].Label)
	assert.Equal(t, "2024-01-01", buckets[0].Date)
}

func TestBucketsFor_InvertedRangeIsEmpty(t *testing.T) {
	from := date(2024, time.June, 15)
	to := date(2024, time.June, 9)

	for _, mode := range []ViewMode{ViewDay, ViewWeek, ViewMonth, ViewYear} {
		assert.Empty(t, BucketsFor(mode, from, to), mode.String())
	}
}

func TestBucketsFor_StrictlyOrdered(t *testing.T) {
	cases := []struct {
		mode ViewMode
		from time.Time
		to   time.Time
	}{
		{ViewDay, date(2024, time.June, 10), date(2024, time.June, 10).Add(23 * time.Hour)},
		{ViewWeek, date(2024, time.June, 9), date(2024, time.June, 15)},
		{ViewMonth, date(2024, time.June, 1), date(2024, time.June, 30)},
		{ViewYear, date(2024, time.January, 1), date(2024, time.December, 31)},
	}
	for _, tc := range cases {
		t.Run(tc.mode.String(), func(t *testing.T) {
			buckets := BucketsFor(tc.mode, tc.from, tc.to)
			require.NotEmpty(t, buckets)
			prev := ""
			prevLabel := ""
			for _, b := range buckets {
				if b.Date == prev {
					// Same anchor day only happens in day mode, where the
					// hour labels must still advance.
					assert.Greater(t, b.Label, prevLabel)
				} else {
					assert.Greater(t, b.Date, prev)
				}
				prev, prevLabel = b.Date, b.Label
			}
		})
	}
}

func TestBucketsFor_Idempotent(t *testing.T) {
	from := date(2024, time.June, 9)
	to := date(2024, time.June, 15)

	first := BucketsFor(ViewWeek, from, to)
	second := BucketsFor(ViewWeek, from, to)
	assert.Equal(t, first, second)
}

func TestWeekOfMonth(t *testing.T) {
	// June 2024: the 1st is a Saturday, so the 2nd starts week two.
	assert.Equal(t, 1, WeekOfMonth(date(2024, time.June, 1)))
	assert.Equal(t, 2, WeekOfMonth(date(2024, time.June, 2)))
	assert.Equal(t, 3, WeekOfMonth(date(2024, time.June, 10)))
	assert.Equal(t, 6, WeekOfMonth(date(2024, time.June, 30)))
}

func TestOrdinal(t *testing.T) {
	cases := map[int]string{
		1: "1st", 2: "2nd", 3: "3rd", 4: "4th",
		11: "11th", 12: "12th", 13: "13th",
		21: "21st", 22: "22nd", 23: "23rd", 31: "31st",
	}
	for n, want := range cases {
		assert.Equal(t, want, ordinal(n))
	}
}
