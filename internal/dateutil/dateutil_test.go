package dateutil

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		got, err := ParseDate("2026-09-01")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Year() != 2026 || got.Month() != time.September || got.Day() != 1 {
			t.Errorf("ParseDate = %v", got)
		}
	})

	t.Run("empty means today", func(t *testing.T) {
		got, err := ParseDate("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !IsSameDay(got, time.Now()) {
			t.Errorf("ParseDate(\"\") = %v, want today", got)
		}
		if got.Hour() != 0 || got.Minute() != 0 {
			t.Errorf("ParseDate(\"\") not truncated to midnight: %v", got)
		}
	})

	t.Run("invalid format", func(t *testing.T) {
		if _, err := ParseDate("09/01/2026"); !errors.Is(err, ErrInvalidDateFormat) {
			t.Errorf("error = %v, want ErrInvalidDateFormat", err)
		}
	})
}

func TestParseRelativeDate(t *testing.T) {
	// A fixed Wednesday keeps weekday expectations stable.
	ref := time.Date(2026, 8, 26, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr error
	}{
		{name: "empty", input: "", want: time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)},
		{name: "today", input: "today", want: time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)},
		{name: "tomorrow", input: "Tomorrow", want: time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)},
		{name: "next-week", input: "next-week", want: time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)},
		{name: "future weekday", input: "friday", want: time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)},
		{name: "same weekday jumps a week", input: "wednesday", want: time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)},
		{name: "next-monday", input: "next-monday", want: time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)},
		{name: "absolute future", input: "2026-09-15", want: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)},
		{name: "absolute past", input: "2026-08-01", wantErr: ErrDateInPast},
		{name: "garbage", input: "someday", wantErr: ErrInvalidDateFormat},
		{name: "bad next prefix", input: "next-yesterday", wantErr: ErrInvalidDateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRelativeDate(tt.input, ref)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseRelativeDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewDateRange(t *testing.T) {
	t.Run("explicit range", func(t *testing.T) {
		r, err := NewDateRange("2026-09-01", "2026-09-07")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Start.Day() != 1 || r.End.Day() != 7 {
			t.Errorf("range = %v..%v", r.Start, r.End)
		}
	})

	t.Run("end defaults to start", func(t *testing.T) {
		r, err := NewDateRange("2026-09-01", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !r.Start.Equal(r.End) {
			t.Errorf("range = %v..%v, want single day", r.Start, r.End)
		}
	})

	t.Run("end before start", func(t *testing.T) {
		if _, err := NewDateRange("2026-09-07", "2026-09-01"); !errors.Is(err, ErrEndDateBeforeStart) {
			t.Errorf("error = %v, want ErrEndDateBeforeStart", err)
		}
	})
}

func TestTruncateToDay(t *testing.T) {
	in := time.Date(2026, 8, 26, 15, 30, 45, 123, time.UTC)
	got := TruncateToDay(in)
	want := time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("TruncateToDay = %v, want %v", got, want)
	}
}
