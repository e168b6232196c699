package planner

import (
	"fmt"
	"time"

	"github.com/Alienware2000/intentionality/internal/block"
	"github.com/Alienware2000/intentionality/internal/dateutil"
)

// ValidationError describes a single problem with a proposed block.
type ValidationError struct {
	BlockIndex int    // index into the proposed slice
	Field      string // "title", "kind", "date", "start", "end", "overlap"
	Message    string
}

// String returns a formatted error message.
func (e ValidationError) String() string {
	return fmt.Sprintf("block %d: %s - %s", e.BlockIndex, e.Field, e.Message)
}

// ValidationResult is the outcome of validating a proposal.
type ValidationResult struct {
	Valid  bool
	Errors []ValidationError
}

// FormatErrors renders the errors as feedback for the model.
func (r ValidationResult) FormatErrors() string {
	if len(r.Errors) == 0 {
		return ""
	}

	out := "Your response had these errors:\n"
	for _, e := range r.Errors {
		out += fmt.Sprintf("- %s\n", e.String())
	}
	out += "\nPlease correct these issues and respond again with valid JSON."
	return out
}

// Validator checks proposed blocks against scheduling constraints.
// The preferred window is a prompt-level preference, not a hard rule,
// so it is not validated here.
type Validator struct {
	now      time.Time
	existing []*block.Block
}

// NewValidator creates a Validator against the given existing blocks.
func NewValidator(now time.Time, existing []*block.Block) *Validator {
	return &Validator{now: now, existing: existing}
}

// Validate checks every proposed block for:
// - non-empty title and known kind
// - YYYY-MM-DD date and HH:MM times
// - end after start
// - start not in the past for today's blocks
// - no overlap with other proposed blocks or with existing blocks
func (v *Validator) Validate(proposed []ProposedBlock) ValidationResult {
	result := ValidationResult{Valid: true}

	type checked struct {
		index      int
		date       time.Time
		start, end int // minutes since midnight
	}
	var valid []checked

	for i, pb := range proposed {
		ok := true

		if pb.Title == "" {
			result.Errors = append(result.Errors, ValidationError{
				BlockIndex: i, Field: "title", Message: "title must not be empty",
			})
			ok = false
		}

		switch block.Kind(pb.Kind) {
		case block.KindClass, block.KindHabit, block.KindTask:
		default:
			result.Errors = append(result.Errors, ValidationError{
				BlockIndex: i, Field: "kind",
				Message: fmt.Sprintf("'%s' is invalid (must be class, habit, or task)", pb.Kind),
			})
			ok = false
		}

		date, dateErr := time.ParseInLocation("2006-01-02", pb.Date, v.now.Location())
		if dateErr != nil {
			result.Errors = append(result.Errors, ValidationError{
				BlockIndex: i, Field: "date",
				Message: fmt.Sprintf("'%s' is invalid (must be YYYY-MM-DD)", pb.Date),
			})
			ok = false
		}

		start, startErr := block.ParseClock(pb.Start)
		if startErr != nil {
			result.Errors = append(result.Errors, ValidationError{
				BlockIndex: i, Field: "start",
				Message: fmt.Sprintf("'%s' is invalid (must be HH:MM, 00:00-23:59)", pb.Start),
			})
			ok = false
		}

		end, endErr := block.ParseClock(pb.End)
		if endErr != nil {
			result.Errors = append(result.Errors, ValidationError{
				BlockIndex: i, Field: "end",
				Message: fmt.Sprintf("'%s' is invalid (must be HH:MM, 00:00-23:59)", pb.End),
			})
			ok = false
		}

		if startErr == nil && endErr == nil && end <= start {
			result.Errors = append(result.Errors, ValidationError{
				BlockIndex: i, Field: "end",
				Message: fmt.Sprintf("end time '%s' must be after start time '%s'", pb.End, pb.Start),
			})
			ok = false
		}

		if dateErr == nil && startErr == nil && v.isInPast(date, start) {
			result.Errors = append(result.Errors, ValidationError{
				BlockIndex: i, Field: "start",
				Message: fmt.Sprintf("start time '%s' on '%s' is in the past", pb.Start, pb.Date),
			})
			ok = false
		}

		if ok {
			valid = append(valid, checked{index: i, date: date, start: start, end: end})
		}
	}

	// Overlaps between proposed blocks.
	for i := 0; i < len(valid); i++ {
		for j := i + 1; j < len(valid); j++ {
			a, b := valid[i], valid[j]
			if !dateutil.IsSameDay(a.date, b.date) {
				continue
			}
			if a.start < b.end && b.start < a.end {
				result.Errors = append(result.Errors, ValidationError{
					BlockIndex: b.index, Field: "overlap",
					Message: fmt.Sprintf("overlaps proposed block %d", a.index),
				})
			}
		}
	}

	// Overlaps with existing blocks.
	for _, c := range valid {
		for _, ex := range v.existing {
			if !dateutil.IsSameDay(c.date, ex.Date) {
				continue
			}
			exStart := block.ClockToMinutes(ex.Start)
			exEnd := block.ClockToMinutes(ex.End)
			if c.start < exEnd && exStart < c.end {
				result.Errors = append(result.Errors, ValidationError{
					BlockIndex: c.index, Field: "overlap",
					Message: fmt.Sprintf("overlaps existing block '%s' (%s-%s)", ex.Title, ex.Start, ex.End),
				})
			}
		}
	}

	result.Valid = len(result.Errors) == 0
	return result
}

func (v *Validator) isInPast(date time.Time, startMinutes int) bool {
	if !dateutil.IsSameDay(date, v.now) {
		return date.Before(dateutil.TruncateToDay(v.now))
	}
	nowMinutes := v.now.Hour()*60 + v.now.Minute()
	return startMinutes < nowMinutes
}
