package layout

import (
	"slices"

	"github.com/tablemap/tablemap/pkg/dag"
)

// OrderRanks reduces edge crossings by reordering nodes within each rank
// using the barycenter heuristic. Starting from the current rank orders
// (input order on the first call), it alternates downward sweeps (each rank
// sorted by the mean position of its predecessors in the previous rank) and
// upward sweeps (sorted by successors in the next rank) for at most
// maxPasses passes, stopping early when a full pass changes nothing.
//
// The pass cap is the engine's termination guarantee: orderings are not run
// to convergence on adversarial graphs. Sorts are stable and nodes without
// neighbors in the adjacent rank keep their current position, so the result
// is deterministic for a given input ordering.
//
// Returns the number of passes executed.
func OrderRanks(g *dag.Graph, maxPasses int) int {
	if g.NodeCount() == 0 || maxPasses <= 0 {
		return 0
	}

	maxRank := g.MaxRank()
	passes := 0
	for ; passes < maxPasses; passes++ {
		changed := false

		// Downward sweep: order each rank by predecessor positions.
		for r := 1; r <= maxRank; r++ {
			if sweepRank(g, r, g.Predecessors) {
				changed = true
			}
		}

		// Upward sweep: order each rank by successor positions.
		for r := maxRank - 1; r >= 0; r-- {
			if sweepRank(g, r, g.Successors) {
				changed = true
			}
		}

		if !changed {
			passes++
			break
		}
	}
	return passes
}

// sweepRank reorders one rank by the barycenter of each node's neighbors in
// the sweep direction, as selected by the neighbors function. Reports
// whether the order changed.
func sweepRank(g *dag.Graph, rank int, neighbors func(string) []string) bool {
	ids := g.NodesInRank(rank)
	if len(ids) < 2 {
		return false
	}

	type entry struct {
		id   string
		bary float64
		idx  int // current position, used as tiebreak and for fixed nodes
	}

	entries := make([]entry, len(ids))
	for i, id := range ids {
		entries[i] = entry{id: id, bary: barycenter(g, id, i, neighbors), idx: i}
	}

	slices.SortStableFunc(entries, func(a, b entry) int {
		switch {
		case a.bary < b.bary:
			return -1
		case a.bary > b.bary:
			return 1
		default:
			return a.idx - b.idx
		}
	})

	changed := false
	reordered := make([]string, len(entries))
	for i, e := range entries {
		reordered[i] = e.id
		if e.id != ids[i] {
			changed = true
		}
	}
	if changed {
		g.SetRankOrder(rank, reordered)
	}
	return changed
}

// barycenter computes the mean within-rank position of a node's neighbors
// in the sweep direction. Longest-path layering can leave edges spanning
// several ranks; their endpoints still contribute their positions. A node
// with no neighbors keeps its own position so it does not drift.
func barycenter(g *dag.Graph, id string, own int, neighbors func(string) []string) float64 {
	sum, count := 0.0, 0
	for _, nb := range neighbors(id) {
		n, ok := g.Node(nb)
		if !ok {
			continue
		}
		sum += float64(n.Order)
		count++
	}
	if count == 0 {
		return float64(own)
	}
	return sum / float64(count)
}
