package timeline

// slotStep is the start-time granularity for free-slot search.
const slotStep = 30

// AvailableSlots returns every start position within the window where a
// block of the given duration (minutes) would not overlap any existing
// block, stepping on half-hour boundaries. Existing blocks are tested with
// their true intervals, so a block hanging past the window edge still counts
// as busy. Returns nil when duration is non-positive or nothing fits.
func AvailableSlots(existing []Block, duration int, win Window) []Interval {
	if duration <= 0 {
		return nil
	}

	winStart := win.StartMinutes()
	winEnd := win.EndMinutes()

	var free []Interval
	for start := winStart; start+duration <= winEnd; start += slotStep {
		candidate := Interval{Start: start, End: start + duration}
		if !overlapsAny(candidate, existing) {
			free = append(free, candidate)
		}
	}
	return free
}

// FirstFreeSlot returns the earliest available slot for the given duration,
// or false when the day has no room left.
func FirstFreeSlot(existing []Block, duration int, win Window) (Interval, bool) {
	if duration <= 0 {
		return Interval{}, false
	}
	for start := win.StartMinutes(); start+duration <= win.EndMinutes(); start += slotStep {
		candidate := Interval{Start: start, End: start + duration}
		if !overlapsAny(candidate, existing) {
			return candidate, true
		}
	}
	return Interval{}, false
}

func overlapsAny(candidate Interval, blocks []Block) bool {
	for _, b := range blocks {
		if candidate.Overlaps(b.Interval()) {
			return true
		}
	}
	return false
}
