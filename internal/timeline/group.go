package timeline

import "slices"

// GroupOverlapping partitions blocks into maximal groups of transitively
// overlapping intervals: if A overlaps B and B overlaps C, all three land in
// one group even when A and C do not touch. Blocks in different groups are
// guaranteed non-overlapping.
//
// Groups come back ordered by their earliest start, each group sorted by
// (start, end) ascending. The empty input yields nil.
func GroupOverlapping(blocks []Block) [][]Block {
	if len(blocks) == 0 {
		return nil
	}

	sorted := slices.Clone(blocks)
	slices.SortFunc(sorted, compareBlocks)

	uf := newUnionFind(len(sorted))
	for i := range sorted {
		for j := i + 1; j < len(sorted); j++ {
			// Sorted by start, so once a block starts at or after our
			// end, no later block can overlap us either.
			if sorted[j].Start >= sorted[i].End {
				break
			}
			uf.union(i, j)
		}
	}

	// Collect groups keyed by root, preserving sort order within and
	// first-appearance order across groups.
	index := make(map[int]int)
	var groups [][]Block
	for i, b := range sorted {
		root := uf.find(i)
		gi, ok := index[root]
		if !ok {
			gi = len(groups)
			index[root] = gi
			groups = append(groups, nil)
		}
		groups[gi] = append(groups[gi], b)
	}
	return groups
}

// compareBlocks orders by start ascending, ties broken by end ascending so
// the block freeing its slot soonest comes first.
func compareBlocks(a, b Block) int {
	if a.Start != b.Start {
		return a.Start - b.Start
	}
	return a.End - b.End
}

// unionFind is an index-based disjoint-set over positions in the sorted
// block slice, with path compression.
type unionFind struct {
	parent []int
}

func newUnionFind(n int) *unionFind {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &unionFind{parent: parent}
}

func (u *unionFind) find(i int) int {
	for u.parent[i] != i {
		u.parent[i] = u.parent[u.parent[i]]
		i = u.parent[i]
	}
	return i
}

func (u *unionFind) union(i, j int) {
	ri, rj := u.find(i), u.find(j)
	if ri != rj {
		u.parent[rj] = ri
	}
}
