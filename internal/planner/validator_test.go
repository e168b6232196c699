package planner

import (
	"strings"
	"testing"
	"time"

	"github.com/Alienware2000/intentionality/internal/block"
)

// Fixed reference: Wednesday 2026-08-26, 10:00.
var refNow = time.Date(2026, 8, 26, 10, 0, 0, 0, time.Local)

func pb(title, kind, date, start, end string) ProposedBlock {
	return ProposedBlock{Title: title, Kind: kind, Date: date, Start: start, End: end}
}

func existing(title string, date time.Time, start, end string) *block.Block {
	return &block.Block{Title: title, Kind: block.KindTask, Date: date, Start: start, End: end}
}

func TestValidate_ValidProposal(t *testing.T) {
	v := NewValidator(refNow, nil)
	result := v.Validate([]ProposedBlock{
		pb("Gym", "habit", "2026-08-26", "17:00", "18:00"),
		pb("Essay", "task", "2026-08-26", "18:00", "19:30"),
	})
	if !result.Valid {
		t.Fatalf("expected valid, got errors: %v", result.Errors)
	}
}

func TestValidate_FieldErrors(t *testing.T) {
	tests := []struct {
		name  string
		block ProposedBlock
		field string
	}{
		{"empty title", pb("", "task", "2026-08-26", "12:00", "13:00"), "title"},
		{"bad kind", pb("X", "chore", "2026-08-26", "12:00", "13:00"), "kind"},
		{"bad date", pb("X", "task", "08/26/2026", "12:00", "13:00"), "date"},
		{"bad start", pb("X", "task", "2026-08-26", "noon", "13:00"), "start"},
		{"bad end", pb("X", "task", "2026-08-26", "12:00", "25:00"), "end"},
		{"end before start", pb("X", "task", "2026-08-26", "13:00", "12:00"), "end"},
		{"start in past", pb("X", "task", "2026-08-26", "08:00", "09:00"), "start"},
		{"date in past", pb("X", "task", "2026-08-20", "12:00", "13:00"), "start"},
	}

	v := NewValidator(refNow, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := v.Validate([]ProposedBlock{tt.block})
			if result.Valid {
				t.Fatal("expected invalid result")
			}
			found := false
			for _, e := range result.Errors {
				if e.Field == tt.field {
					found = true
				}
			}
			if !found {
				t.Errorf("no error on field %q, got %v", tt.field, result.Errors)
			}
		})
	}
}

func TestValidate_SelfOverlap(t *testing.T) {
	v := NewValidator(refNow, nil)
	result := v.Validate([]ProposedBlock{
		pb("A", "task", "2026-08-26", "12:00", "13:30"),
		pb("B", "task", "2026-08-26", "13:00", "14:00"),
	})
	if result.Valid {
		t.Fatal("expected overlap error")
	}
	if result.Errors[0].Field != "overlap" || result.Errors[0].BlockIndex != 1 {
		t.Errorf("unexpected error: %+v", result.Errors[0])
	}
}

func TestValidate_BackToBackAllowed(t *testing.T) {
	v := NewValidator(refNow, nil)
	result := v.Validate([]ProposedBlock{
		pb("A", "task", "2026-08-26", "12:00", "13:00"),
		pb("B", "task", "2026-08-26", "13:00", "14:00"),
	})
	if !result.Valid {
		t.Fatalf("back-to-back blocks should be valid, got %v", result.Errors)
	}
}

func TestValidate_ExistingOverlap(t *testing.T) {
	v := NewValidator(refNow, []*block.Block{
		existing("Lecture", refNow, "14:00", "16:00"),
	})
	result := v.Validate([]ProposedBlock{
		pb("Study", "task", "2026-08-26", "15:00", "17:00"),
	})
	if result.Valid {
		t.Fatal("expected overlap with existing block")
	}
	if !strings.Contains(result.Errors[0].Message, "Lecture") {
		t.Errorf("error should name the existing block: %s", result.Errors[0].Message)
	}
}

func TestValidate_DifferentDayNoOverlap(t *testing.T) {
	v := NewValidator(refNow, []*block.Block{
		existing("Lecture", refNow.AddDate(0, 0, 1), "14:00", "16:00"),
	})
	result := v.Validate([]ProposedBlock{
		pb("Study", "task", "2026-08-26", "15:00", "17:00"),
	})
	if !result.Valid {
		t.Fatalf("blocks on different days cannot overlap, got %v", result.Errors)
	}
}

func TestFormatErrors(t *testing.T) {
	v := NewValidator(refNow, nil)
	result := v.Validate([]ProposedBlock{
		pb("", "task", "2026-08-26", "12:00", "13:00"),
	})
	msg := result.FormatErrors()
	if !strings.Contains(msg, "block 0") || !strings.Contains(msg, "valid JSON") {
		t.Errorf("unexpected feedback message: %s", msg)
	}
}
