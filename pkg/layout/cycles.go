package layout

import "github.com/tablemap/tablemap/pkg/dag"

// ReverseCycles makes the graph acyclic by reversing back edges found during
// a depth-first traversal. Traversal starts from source nodes, then covers
// any remaining unvisited nodes in insertion order, so the set of reversed
// edges is deterministic for a given input ordering.
//
// Reversal is layout-internal: the edge keeps its label and gets its
// Reversed flag set, and the emitter restores the semantic direction when
// producing the final result. Self loops cannot be fixed by reversal and are
// removed instead; the graph builder normally prevents them from existing.
//
// Returns the number of edges reversed or removed.
func ReverseCycles(g *dag.Graph) int {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int)
	var backEdges [][2]string

	var dfs func(id string)
	dfs = func(id string) {
		color[id] = gray
		for _, next := range g.Successors(id) {
			switch color[next] {
			case white:
				dfs(next)
			case gray:
				backEdges = append(backEdges, [2]string{id, next})
			}
		}
		color[id] = black
	}

	for _, n := range g.Sources() {
		if color[n.ID] == white {
			dfs(n.ID)
		}
	}

	for _, n := range g.Nodes() {
		if color[n.ID] == white {
			dfs(n.ID)
		}
	}

	for _, e := range backEdges {
		if e[0] == e[1] {
			g.RemoveEdge(e[0], e[1])
			continue
		}
		g.ReverseEdge(e[0], e[1])
	}
	return len(backEdges)
}
