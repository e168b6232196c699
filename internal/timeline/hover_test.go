package timeline

import (
	"testing"
	"time"
)

func TestResolveHoverSlot(t *testing.T) {
	win := Window{StartHour: 8, EndHour: 18} // 480..1080, 600px at 60px/h
	dims := testDims()

	tests := []struct {
		name     string
		offsetPx float64
		existing []Block
		want     Interval
		wantOK   bool
	}{
		{
			name:     "snaps to the nearest half hour",
			offsetPx: 100, // 480 + 100/600*600 = 580 -> snaps to 570
			want:     Interval{Start: 570, End: 630},
			wantOK:   true,
		},
		{
			name:     "exact hour boundary",
			offsetPx: 120, // 10:00
			want:     Interval{Start: 600, End: 660},
			wantOK:   true,
		},
		{
			name:     "top of the window",
			offsetPx: 0,
			want:     Interval{Start: 480, End: 540},
			wantOK:   true,
		},
		{
			name:     "candidate would hang past the window end",
			offsetPx: 590, // snaps to 17:30, +60 leaves the window
			wantOK:   false,
		},
		{
			name:     "negative offset leaves the window",
			offsetPx: -40,
			wantOK:   false,
		},
		{
			name:     "rejects overlap with an existing block",
			offsetPx: 120,
			existing: []Block{tb(1, 630, 690)}, // 10:30-11:30 overlaps 10:00-11:00
			wantOK:   false,
		},
		{
			name:     "existing block outside the hour keeps slot free",
			offsetPx: 120,
			existing: []Block{tb(1, 660, 720)}, // 11:00-12:00, adjacent only
			want:     Interval{Start: 600, End: 660},
			wantOK:   true,
		},
		{
			name:     "true interval counts even when clipped by the window",
			offsetPx: 0,
			existing: []Block{tb(1, 450, 510)}, // starts before the window
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot, ok := ResolveHoverSlot(tt.offsetPx, win, dims, tt.existing, time.Monday)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v (slot %+v)", ok, tt.wantOK, slot)
			}
			if !ok {
				return
			}
			if slot.Interval != tt.want {
				t.Errorf("interval = %+v, want %+v", slot.Interval, tt.want)
			}
			if slot.Weekday != time.Monday {
				t.Errorf("weekday = %v, want Monday", slot.Weekday)
			}
		})
	}
}

func TestResolveHoverSlotDegenerateDimensions(t *testing.T) {
	win := Window{StartHour: 8, EndHour: 18}
	dims := testDims()
	dims.HourHeight = 0

	if _, ok := ResolveHoverSlot(100, win, dims, nil, time.Monday); ok {
		t.Error("expected no candidate with zero hour height")
	}
}

// TestResolveHoverSlotNeverConflicts sweeps the whole window and checks the
// resolver never hands back a slot that collides or escapes the window.
func TestResolveHoverSlotNeverConflicts(t *testing.T) {
	win := Window{StartHour: 8, EndHour: 18}
	dims := testDims()
	existing := []Block{
		tb(1, 540, 600),
		tb(2, 570, 630),
		tb(3, 780, 900),
		tb(4, 1020, 1080),
	}

	for offset := -30.0; offset <= 630; offset += 7 {
		slot, ok := ResolveHoverSlot(offset, win, dims, existing, time.Friday)
		if !ok {
			continue
		}
		if slot.Interval.Start < win.StartMinutes() || slot.Interval.End > win.EndMinutes() {
			t.Fatalf("offset %v: slot %+v escapes window %+v", offset, slot.Interval, win)
		}
		for _, b := range existing {
			if slot.Interval.Overlaps(b.Interval()) {
				t.Fatalf("offset %v: slot %+v overlaps block %d", offset, slot.Interval, b.ID)
			}
		}
	}
}
