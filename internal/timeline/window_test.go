package timeline

import "testing"

func TestComputeVisibleWindowNoBlocks(t *testing.T) {
	policy := DefaultWindowPolicy()

	tests := []struct {
		name        string
		isToday     bool
		currentHour int
		want        Window
	}{
		{name: "not today uses default range", isToday: false, currentHour: 14, want: Window{8, 18}},
		{name: "today centers before current hour", isToday: true, currentHour: 14, want: Window{12, 20}},
		{name: "today early morning clamps to min hour", isToday: true, currentHour: 5, want: Window{5, 13}},
		{name: "today late evening clamps to max hour", isToday: true, currentHour: 23, want: Window{15, 23}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeVisibleWindow(nil, tt.isToday, tt.currentHour, policy)
			if got != tt.want {
				t.Errorf("ComputeVisibleWindow() = %+v, want %+v", got, tt.want)
			}
			if got.EndHour <= got.StartHour {
				t.Errorf("window is empty: %+v", got)
			}
		})
	}
}

func TestComputeVisibleWindowWithBlocks(t *testing.T) {
	policy := DefaultWindowPolicy()

	tests := []struct {
		name        string
		blocks      []Block
		isToday     bool
		currentHour int
		want        Window
	}{
		{
			name: "padded extent wider than minimum span",
			blocks: []Block{
				tb(1, 540, 600),   // 09:00-10:00
				tb(2, 960, 1020),  // 16:00-17:00
				tb(3, 1050, 1080), // 17:30-18:00
			},
			want: Window{8, 20},
		},
		{
			name:   "narrow extent re-centers a minimum span window",
			blocks: []Block{tb(1, 540, 600)}, // 09:00-10:00
			want:   Window{6, 14},
		},
		{
			name:    "today widens to keep current hour in view",
			blocks:  []Block{tb(1, 540, 600)},
			isToday: true, currentHour: 20,
			want: Window{8, 22},
		},
		{
			name:    "today late evening widens to the max clamp",
			blocks:  []Block{tb(1, 540, 600)},
			isToday: true, currentHour: 22,
			want: Window{8, 23},
		},
		{
			name:    "today early morning widens to the min clamp",
			blocks:  []Block{tb(1, 540, 600)},
			isToday: true, currentHour: 5,
			want: Window{5, 13},
		},
		{
			name:   "early blocks clamp against min hour",
			blocks: []Block{tb(1, 240, 300)}, // 04:00-05:00
			want:   Window{5, 13},
		},
		{
			name:   "late blocks clamp against max hour",
			blocks: []Block{tb(1, 1320, 1430)}, // 22:00-23:50
			want:   Window{15, 23},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeVisibleWindow(tt.blocks, tt.isToday, tt.currentHour, policy)
			if got != tt.want {
				t.Errorf("ComputeVisibleWindow() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// TestComputeVisibleWindowContainment asserts the only hard contract of the
// heuristic: every block's hour extent fits in the window whenever that is
// possible inside the [MinHour, MaxHour] clamp, and the window is non-empty.
func TestComputeVisibleWindowContainment(t *testing.T) {
	policy := DefaultWindowPolicy()

	sets := [][]Block{
		{tb(1, 540, 600)},
		{tb(1, 360, 420), tb(2, 720, 780)},
		{tb(1, 540, 660), tb(2, 570, 630), tb(3, 600, 690)},
		{tb(1, 300, 330), tb(2, 1350, 1380)},
		{tb(1, 420, 480), tb(2, 480, 540), tb(3, 900, 1020)},
	}

	for _, blocks := range sets {
		for _, isToday := range []bool{false, true} {
			win := ComputeVisibleWindow(blocks, isToday, 12, policy)
			if win.EndHour <= win.StartHour {
				t.Fatalf("empty window %+v for %v", win, blocks)
			}
			for _, b := range blocks {
				startHour := b.Start / 60
				endHour := b.End/60 + 1
				fits := startHour >= policy.MinHour && endHour <= policy.MaxHour
				contained := startHour >= win.StartHour && endHour <= win.EndHour
				if fits && !contained {
					t.Errorf("block %d (%d-%d) not contained in window %+v (isToday=%v)",
						b.ID, b.Start, b.End, win, isToday)
				}
			}
		}
	}
}
