package dag

import "slices"

// CountCrossings returns the total number of edge crossings implied by the
// graph's current rank orderings. It sums the crossings between each pair of
// adjacent ranks from 0 to MaxRank. Edges spanning more than one rank are
// counted between the ranks of their endpoints' projections only when the
// ranks are adjacent; the layout engine's longest-path layering keeps most
// edges between adjacent ranks, which is where crossings matter visually.
func CountCrossings(g *Graph) int {
	crossings := 0
	for r := 0; r < g.MaxRank(); r++ {
		crossings += CountRankCrossings(g, g.NodesInRank(r), g.NodesInRank(r+1))
	}
	return crossings
}

// CountRankCrossings counts edge crossings between two adjacent ranks using
// a Fenwick tree (binary indexed tree) for O(E log V) performance, where E
// is the number of edges between the ranks and V is the size of the lower
// rank.
//
// Two edges (u1,v1) and (u2,v2) cross if and only if:
//
//	pos(u1) < pos(u2) AND pos(v1) > pos(v2)
//
// This is equivalent to counting inversions in the sequence of target
// positions when edges are sorted by source position.
//
// Returns 0 if either rank is empty, as no crossings can exist without edges.
func CountRankCrossings(g *Graph, upper, lower []string) int {
	if len(upper) == 0 || len(lower) == 0 {
		return 0
	}

	lowerPos := PosMap(lower)

	type edge struct{ upper, lower int }
	edges := make([]edge, 0, len(upper)*2)
	for i, id := range upper {
		for _, next := range g.Successors(id) {
			if pos, ok := lowerPos[next]; ok {
				edges = append(edges, edge{i, pos})
			}
		}
	}
	if len(edges) < 2 {
		return 0
	}

	// Sort edges by source position, then by target position
	slices.SortFunc(edges, func(a, b edge) int {
		if a.upper != b.upper {
			return a.upper - b.upper
		}
		return a.lower - b.lower
	})

	// Count inversions using Fenwick tree
	fenwick := make([]int, len(lower)+1)
	crossings, total := 0, 0
	for _, e := range edges {
		// Query: count edges seen so far with target <= e.lower
		lessOrEqual := 0
		for q := e.lower + 1; q > 0; q -= q & (-q) {
			lessOrEqual += fenwick[q]
		}
		// Crossings = edges seen so far with target > e.lower
		crossings += total - lessOrEqual

		// Update: increment count at target position
		total++
		for idx := e.lower + 1; idx < len(fenwick); idx += idx & (-idx) {
			fenwick[idx]++
		}
	}
	return crossings
}
