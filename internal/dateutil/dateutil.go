// Package dateutil provides date parsing and day arithmetic for scheduling.
package dateutil

import (
	"errors"
	"strings"
	"time"
)

// Validation errors.
var (
	ErrInvalidDateFormat  = errors.New("date must be in YYYY-MM-DD format")
	ErrEndDateBeforeStart = errors.New("end date must be on or after start date")
	ErrDateInPast         = errors.New("cannot schedule in the past")
)

var weekdayMap = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// DateRange represents a validated inclusive date range.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange builds a DateRange from two YYYY-MM-DD strings. Either may be
// empty: start defaults to today, end defaults to start.
func NewDateRange(startDate, endDate string) (*DateRange, error) {
	start, err := ParseDate(startDate)
	if err != nil {
		return nil, err
	}

	end := start
	if endDate != "" {
		end, err = ParseDate(endDate)
		if err != nil {
			return nil, err
		}
	}

	if end.Before(start) {
		return nil, ErrEndDateBeforeStart
	}
	return &DateRange{Start: start, End: end}, nil
}

// ParseDate parses a YYYY-MM-DD date. Empty input means today.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return TruncateToDay(time.Now()), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// ParseRelativeDate parses a date that can be empty or "today", "tomorrow",
// a weekday name ("friday" means the next future Friday), a "next-" prefixed
// weekday or "next-week", or an absolute YYYY-MM-DD date. Inputs are
// case-insensitive. Absolute dates before relativeTo return ErrDateInPast.
func ParseRelativeDate(s string, relativeTo time.Time) (time.Time, error) {
	today := TruncateToDay(relativeTo)
	input := strings.ToLower(strings.TrimSpace(s))

	switch input {
	case "", "today":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	case "next-week":
		return today.AddDate(0, 0, 7), nil
	}

	if name, ok := strings.CutPrefix(input, "next-"); ok {
		if target, ok := weekdayMap[name]; ok {
			return nextWeekday(today, target), nil
		}
		return time.Time{}, ErrInvalidDateFormat
	}

	if target, ok := weekdayMap[input]; ok {
		return nextWeekday(today, target), nil
	}

	result, err := time.Parse("2006-01-02", input)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	if result.Before(today) {
		return time.Time{}, ErrDateInPast
	}
	return result, nil
}

// TruncateToDay returns t with the time component set to midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsSameDay reports whether two times fall on the same calendar day.
func IsSameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// IsToday reports whether t falls on the current day.
func IsToday(t time.Time) bool {
	return IsSameDay(t, time.Now())
}

// nextWeekday returns the next occurrence of the given weekday strictly
// after today; if today already is that weekday, it returns next week's.
func nextWeekday(today time.Time, target time.Weekday) time.Time {
	daysUntil := int(target) - int(today.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return today.AddDate(0, 0, daysUntil)
}
