package timeline

import "slices"

// Placement assigns a block within its overlap group to a column.
// Column is zero-based; Columns is the group's total column count, shared by
// every placement in the group.
type Placement struct {
	Block   Block
	Column  int
	Columns int
}

// AssignColumns lays out one overlap group into columns using greedy
// interval-graph coloring: blocks are taken in (start, end) order and each
// one takes the leftmost column that is free at its start time.
//
// For interval graphs the chromatic number equals the clique number, so this
// uses exactly as many columns as the maximum number of blocks active at any
// single minute, never more. Overlapping blocks always land in different
// columns. The empty group yields nil.
func AssignColumns(group []Block) []Placement {
	if len(group) == 0 {
		return nil
	}

	sorted := slices.Clone(group)
	slices.SortFunc(sorted, compareBlocks)

	// colEnds[c] is the minute at which column c becomes free.
	var colEnds []int
	placements := make([]Placement, len(sorted))
	for i, b := range sorted {
		col := -1
		for c, end := range colEnds {
			if end <= b.Start {
				col = c
				break
			}
		}
		if col < 0 {
			col = len(colEnds)
			colEnds = append(colEnds, 0)
		}
		colEnds[col] = b.End
		placements[i] = Placement{Block: b, Column: col}
	}

	for i := range placements {
		placements[i].Columns = len(colEnds)
	}
	return placements
}
