package planner

import (
	"fmt"
	"time"

	"github.com/jinzhu/now"
)

const (
	// DateLayout is the wire format for shift dates.
	DateLayout = "2006-01-02"
	// TimeLayout is the wire format for shift start/end times.
	TimeLayout = "15:04"
)

// weekCfg pins the planner week to Sunday..Saturday regardless of locale.
var weekCfg = &now.Config{WeekStartDay: time.Sunday}

// Bucket is one column of the planner grid: a human label plus the ISO
// date used as a join key when testing shift membership.
type Bucket struct {
	Label string `json:"label"`
	Date  string `json:"date"`
}

// BucketsFor produces the ordered bucket sequence for a view mode and
// date range. It is pure: identical inputs always yield identical
// output. An inverted range yields an empty sequence.
func BucketsFor(mode ViewMode, from, to time.Time) []Bucket {
	if from.After(to) {
		return nil
	}

	var buckets []Bucket
	switch mode {
	case ViewDay:
		start := weekCfg.With(from).BeginningOfDay()
		end := weekCfg.With(to).EndOfDay()
		for h := start; !h.After(end); h = h.Add(time.Hour) {
			buckets = append(buckets, Bucket{
				Label: h.Format(TimeLayout),
				Date:  h.Format(DateLayout),
			})
		}
	case ViewWeek:
		start := weekCfg.With(from).BeginningOfDay()
		end := weekCfg.With(to).BeginningOfDay()
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			buckets = append(buckets, Bucket{
				Label: fmt.Sprintf("%s the %s", d.Format("Mon"), ordinal(d.Day())),
				Date:  d.Format(DateLayout),
			})
		}
	case ViewMonth:
		start := weekCfg.With(weekCfg.With(from).BeginningOfMonth()).BeginningOfWeek()
		end := weekCfg.With(to).EndOfMonth()
		for w := start; !w.After(end); w = w.AddDate(0, 0, 7) {
			buckets = append(buckets, Bucket{
				Label: fmt.Sprintf("%s week in %s", ordinal(WeekOfMonth(w)), w.Format("Jan")),
				Date:  w.Format(DateLayout),
			})
		}
	case ViewYear:
		start := weekCfg.With(from).BeginningOfYear()
		end := weekCfg.With(to).EndOfYear()
		for m := start; !m.After(end); m = m.AddDate(0, 1, 0) {
			buckets = append(buckets, Bucket{
				Label: m.Format("Jan"),
				Date:  m.Format(DateLayout),
			})
		}
	}
	return buckets
}

// WeekOfMonth returns the 1-based week a date falls in within its month,
// with weeks anchored on Sunday.
func WeekOfMonth(t time.Time) int {
	first := weekCfg.With(t).BeginningOfMonth()
	offset := int(first.Weekday())
	return (t.Day()+offset-1)/7 + 1
}

func ordinal(n int) string {
	suffix := "th"
	if n%100 < 11 || n%100 > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
