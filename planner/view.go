package planner

import "time"

// View holds the planner's visible date range together with the state
// derived from it: the zoom level and the bucket sequence. The range is
// the single source of truth; mode and buckets are recomputed on every
// range change and never drift.
type View struct {
	from    time.Time
	to      time.Time
	mode    ViewMode
	buckets []Bucket
}

// NewView builds a view showing the Sunday..Saturday week containing the
// reference instant. The reference is injected by the caller so derived
// state is reproducible in tests.
func NewView(ref time.Time) *View {
	v := &View{}
	v.SetRange(weekCfg.With(ref).BeginningOfWeek(), weekCfg.With(ref).EndOfWeek())
	return v
}

// SetRange replaces the visible range and recomputes the derived mode
// and bucket sequence.
func (v *View) SetRange(from, to time.Time) {
	v.from = from
	v.to = to
	v.mode = DeriveViewMode(from, to)
	v.buckets = BucketsFor(v.mode, from, to)
}

func (v *View) Range() (from, to time.Time) {
	return v.from, v.to
}

func (v *View) Mode() ViewMode {
	return v.mode
}

func (v *View) Buckets() []Bucket {
	return v.buckets
}
