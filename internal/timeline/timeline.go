// Package timeline implements the day-timeline layout engine: it turns a
// day's time blocks into non-overlapping side-by-side rectangles on a
// vertical hour axis, computes a smart visible hour range, the live "now"
// marker and hover slot candidates.
//
// The engine is pure: every function only reads its arguments, performs no
// I/O and keeps no state between calls. The rendering layer owns the
// resize/clock-tick loop and calls back in with fresh inputs on each pass.
package timeline

// MinutesPerDay is the number of minutes in one day.
const MinutesPerDay = 24 * 60

// Block is the engine's input: a half-open minute range within one day plus
// pass-through display fields. Start and End are minutes since midnight with
// End > Start; validation happens in the caller's domain layer, not here.
type Block struct {
	ID          int64
	Start       int // minutes since midnight, inclusive
	End         int // minutes since midnight, exclusive
	Completed   bool
	Completable bool
	Color       string
}

// Interval returns the block's minute range.
func (b Block) Interval() Interval {
	return Interval{Start: b.Start, End: b.End}
}

// Interval is a half-open minute range [Start, End).
type Interval struct {
	Start int
	End   int
}

// Overlaps reports whether two half-open intervals overlap. An interval
// ending exactly when another starts does not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End && other.Start < iv.End
}

// Clamp restricts the interval to the given bounds. The result may be empty
// (End <= Start) when the interval lies entirely outside.
func (iv Interval) Clamp(lo, hi int) Interval {
	out := iv
	if out.Start < lo {
		out.Start = lo
	}
	if out.End > hi {
		out.End = hi
	}
	return out
}

// Empty reports whether the interval contains no minutes.
func (iv Interval) Empty() bool {
	return iv.End <= iv.Start
}

// Minutes returns the interval length, or 0 when empty.
func (iv Interval) Minutes() int {
	if iv.Empty() {
		return 0
	}
	return iv.End - iv.Start
}
