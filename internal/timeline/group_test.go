package timeline

import "testing"

// tb builds a minimal block for layout test tables.
func tb(id int64, start, end int) Block {
	return Block{ID: id, Start: start, End: end}
}

func groupIDs(groups [][]Block) [][]int64 {
	out := make([][]int64, len(groups))
	for i, g := range groups {
		for _, b := range g {
			out[i] = append(out[i], b.ID)
		}
	}
	return out
}

func TestGroupOverlapping(t *testing.T) {
	tests := []struct {
		name   string
		blocks []Block
		want   [][]int64
	}{
		{
			name:   "empty",
			blocks: nil,
			want:   nil,
		},
		{
			name:   "single block",
			blocks: []Block{tb(1, 540, 600)},
			want:   [][]int64{{1}},
		},
		{
			name: "direct overlap pair plus loner",
			blocks: []Block{
				tb(1, 540, 600), // 09:00-10:00
				tb(2, 570, 630), // 09:30-10:30
				tb(3, 660, 720), // 11:00-12:00
			},
			want: [][]int64{{1, 2}, {3}},
		},
		{
			name: "three mutually overlapping",
			blocks: []Block{
				tb(1, 540, 660), // 09:00-11:00
				tb(2, 570, 630), // 09:30-10:30
				tb(3, 600, 690), // 10:00-11:30
			},
			want: [][]int64{{1, 2, 3}},
		},
		{
			name: "adjacent blocks do not overlap",
			blocks: []Block{
				tb(1, 540, 600), // 09:00-10:00
				tb(2, 600, 660), // 10:00-11:00
			},
			want: [][]int64{{1}, {2}},
		},
		{
			name: "transitive chain joins ends that never touch",
			blocks: []Block{
				tb(1, 540, 630), // 09:00-10:30
				tb(2, 600, 690), // 10:00-11:30
				tb(3, 660, 750), // 11:00-12:30, no direct overlap with 1
			},
			want: [][]int64{{1, 2, 3}},
		},
		{
			name: "unsorted input is grouped by time, not position",
			blocks: []Block{
				tb(3, 660, 720),
				tb(1, 540, 600),
				tb(2, 570, 630),
			},
			want: [][]int64{{1, 2}, {3}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := groupIDs(GroupOverlapping(tt.blocks))
			if len(got) != len(tt.want) {
				t.Fatalf("got %d groups %v, want %d groups %v", len(got), got, len(tt.want), tt.want)
			}
			for i := range got {
				if len(got[i]) != len(tt.want[i]) {
					t.Fatalf("group %d = %v, want %v", i, got[i], tt.want[i])
				}
				for j := range got[i] {
					if got[i][j] != tt.want[i][j] {
						t.Errorf("group %d = %v, want %v", i, got[i], tt.want[i])
						break
					}
				}
			}
		})
	}
}

func TestGroupOverlappingCrossGroupInvariant(t *testing.T) {
	blocks := []Block{
		tb(1, 300, 360),
		tb(2, 350, 420),
		tb(3, 420, 480),
		tb(4, 500, 700),
		tb(5, 650, 800),
		tb(6, 900, 960),
	}

	groups := GroupOverlapping(blocks)
	for i := range groups {
		for j := i + 1; j < len(groups); j++ {
			for _, a := range groups[i] {
				for _, b := range groups[j] {
					if a.Interval().Overlaps(b.Interval()) {
						t.Errorf("blocks %d and %d overlap but were placed in different groups", a.ID, b.ID)
					}
				}
			}
		}
	}
}

func TestGroupOverlappingDoesNotMutateInput(t *testing.T) {
	blocks := []Block{tb(2, 600, 700), tb(1, 540, 650)}
	GroupOverlapping(blocks)
	if blocks[0].ID != 2 || blocks[1].ID != 1 {
		t.Errorf("input slice was reordered: %v", blocks)
	}
}
