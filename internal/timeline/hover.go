package timeline

import (
	"math"
	"time"
)

const (
	// hoverSnapMinutes is the snapping grid for hover candidates.
	hoverSnapMinutes = 30
	// hoverSlotMinutes is the default duration of a created block.
	hoverSlotMinutes = 60
)

// HoverSlot is a snapped, collision-free candidate interval under the
// pointer, ready for the caller to materialize into a new block.
type HoverSlot struct {
	Interval Interval
	Weekday  time.Weekday
}

// ResolveHoverSlot converts a pointer's vertical offset within the timeline
// (in pixels, scroll included) into a candidate one-hour interval snapped to
// the nearest half hour. It reports no candidate when the interval would
// leave the visible window or overlap any existing block's true interval.
func ResolveHoverSlot(offsetPx float64, win Window, dims Dimensions, existing []Block, weekday time.Weekday) (HoverSlot, bool) {
	totalPx := float64(win.Hours()) * dims.HourHeight
	if totalPx <= 0 {
		return HoverSlot{}, false
	}

	winStart := win.StartMinutes()
	winEnd := win.EndMinutes()
	minutes := float64(winStart) + offsetPx/totalPx*float64(winEnd-winStart)
	snapped := int(math.Round(minutes/hoverSnapMinutes)) * hoverSnapMinutes

	candidate := Interval{Start: snapped, End: snapped + hoverSlotMinutes}
	if candidate.Start < winStart || candidate.End > winEnd {
		return HoverSlot{}, false
	}
	for _, b := range existing {
		if candidate.Overlaps(b.Interval()) {
			return HoverSlot{}, false
		}
	}

	return HoverSlot{Interval: candidate, Weekday: weekday}, true
}
