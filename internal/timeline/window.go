package timeline

// Window is the visible hour range of the timeline, [StartHour, EndHour)
// with EndHour > StartHour.
type Window struct {
	StartHour int
	EndHour   int
}

// StartMinutes returns the window's first visible minute.
func (w Window) StartMinutes() int {
	return w.StartHour * 60
}

// EndMinutes returns the minute just past the window's last visible hour.
func (w Window) EndMinutes() int {
	return w.EndHour * 60
}

// Hours returns the window span in whole hours.
func (w Window) Hours() int {
	return w.EndHour - w.StartHour
}

// Contains reports whether the minute interval is fully inside the window.
func (w Window) Contains(iv Interval) bool {
	return iv.Start >= w.StartMinutes() && iv.End <= w.EndMinutes()
}

// WindowPolicy holds the tunable constants of the smart-window heuristic.
// These are presentation policy, not layout invariants; the only property
// the engine promises is that the window contains every block's hour range
// whenever that fits inside [MinHour, MaxHour], and that it is never empty.
type WindowPolicy struct {
	MinHour          int // earliest displayable hour
	MaxHour          int // latest displayable hour
	PaddingHours     int // breathing room around the blocks
	MinSpanHours     int // windows narrower than this get re-centered
	DefaultStartHour int // window start when no blocks and not today
	DefaultEndHour   int // window end when no blocks and not today
}

// DefaultWindowPolicy returns the stock heuristic constants.
func DefaultWindowPolicy() WindowPolicy {
	return WindowPolicy{
		MinHour:          5,
		MaxHour:          23,
		PaddingHours:     1,
		MinSpanHours:     8,
		DefaultStartHour: 8,
		DefaultEndHour:   18,
	}
}

// ComputeVisibleWindow derives the reduced hour range the timeline shows.
//
// With no blocks it centers a MinSpanHours window a couple of hours before
// the current hour when viewing today, or falls back to the default range
// otherwise. With blocks it wraps their hour extent plus padding, widens to
// keep the current hour in view on today, and re-centers windows narrower
// than MinSpanHours. Everything is clamped to [MinHour, MaxHour].
func ComputeVisibleWindow(blocks []Block, isToday bool, currentHour int, p WindowPolicy) Window {
	if len(blocks) == 0 {
		if isToday {
			return p.centeredOn(currentHour - 2)
		}
		return Window{StartHour: p.DefaultStartHour, EndHour: p.DefaultEndHour}
	}

	earliest := blocks[0].Start / 60
	latest := blocks[0].End/60 + 1
	for _, b := range blocks[1:] {
		if h := b.Start / 60; h < earliest {
			earliest = h
		}
		if h := b.End/60 + 1; h > latest {
			latest = h
		}
	}

	start := earliest - p.PaddingHours
	end := latest + p.PaddingHours
	start, end = p.clamp(start, end)

	if isToday {
		// Clamp the widen targets so a current hour near the displayable
		// edges still pulls the window as far as the clamp allows.
		if lo := max(currentHour-1, p.MinHour); lo < start {
			start = lo
		}
		if hi := min(currentHour+2, p.MaxHour); hi > end {
			end = hi
		}
	}

	if end-start < p.MinSpanHours {
		mid := (start + end) / 2
		return p.centeredOn(mid - p.MinSpanHours/2)
	}
	return Window{StartHour: start, EndHour: end}
}

// centeredOn builds a MinSpanHours-wide window starting at the given hour,
// shifted as needed to stay inside [MinHour, MaxHour].
func (p WindowPolicy) centeredOn(start int) Window {
	if start < p.MinHour {
		start = p.MinHour
	}
	end := start + p.MinSpanHours
	if end > p.MaxHour {
		end = p.MaxHour
		start = end - p.MinSpanHours
		if start < p.MinHour {
			start = p.MinHour
		}
	}
	return Window{StartHour: start, EndHour: end}
}

// clamp restricts the hour range to [MinHour, MaxHour], keeping it non-empty.
func (p WindowPolicy) clamp(start, end int) (int, int) {
	if start < p.MinHour {
		start = p.MinHour
	}
	if end > p.MaxHour {
		end = p.MaxHour
	}
	if end <= start {
		end = start + 1
	}
	return start, end
}
