package block

import "fmt"

// MinutesPerDay is the number of minutes in one day.
const MinutesPerDay = 24 * 60

// ParseClock parses a strict "HH:MM" clock string into minutes since midnight.
// Returns ErrInvalidClock for anything that is not zero-padded HH:MM with
// HH in 00..23 and MM in 00..59.
func ParseClock(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
		}
	}
	hours := int(s[0]-'0')*10 + int(s[1]-'0')
	mins := int(s[3]-'0')*10 + int(s[4]-'0')
	if hours > 23 || mins > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	return hours*60 + mins, nil
}

// ClockToMinutes converts a pre-validated "HH:MM" string to minutes since
// midnight. Returns 0 for malformed input; callers that have not validated
// should use ParseClock instead.
func ClockToMinutes(s string) int {
	if len(s) < 5 {
		return 0
	}
	hours := int(s[0]-'0')*10 + int(s[1]-'0')
	mins := int(s[3]-'0')*10 + int(s[4]-'0')
	return hours*60 + mins
}

// MinutesToClock converts minutes since midnight to a zero-padded "HH:MM"
// string. Out-of-range values wrap modulo one day, so 1500 becomes "01:00"
// and -60 becomes "23:00".
func MinutesToClock(m int) string {
	m = ((m % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// FormatHourLabel formats a whole hour for display on the timeline gutter,
// 12-hour style: 0 -> "12 AM", 9 -> "9 AM", 12 -> "12 PM", 17 -> "5 PM".
func FormatHourLabel(hour int) string {
	hour = ((hour % 24) + 24) % 24
	suffix := "AM"
	display := hour
	switch {
	case hour == 0:
		display = 12
	case hour == 12:
		suffix = "PM"
	case hour > 12:
		display = hour - 12
		suffix = "PM"
	}
	return fmt.Sprintf("%d %s", display, suffix)
}

// ClocksOverlap returns true if two half-open "HH:MM" ranges overlap.
// A range ending exactly when another starts does not overlap.
// Zero-padded clock strings compare correctly as plain strings.
func ClocksOverlap(start1, end1, start2, end2 string) bool {
	return start1 < end2 && start2 < end1
}

// OverlapClockMinutes returns the number of overlapping minutes between two
// "HH:MM" ranges, or 0 when they do not overlap.
func OverlapClockMinutes(start1, end1, start2, end2 string) int {
	s := max(ClockToMinutes(start1), ClockToMinutes(start2))
	e := min(ClockToMinutes(end1), ClockToMinutes(end2))
	if e <= s {
		return 0
	}
	return e - s
}
