package layout

import (
	"github.com/tablemap/tablemap/pkg/dag"
)

// Stats describes what one layout call did to the graph.
type Stats struct {
	// ReversedEdges is the number of edges flipped (or, for self loops,
	// removed) during cycle breaking.
	ReversedEdges int `json:"reversed_edges"`
	// Passes is the number of crossing-minimization passes executed before
	// the cap or early convergence stopped the sweeps.
	Passes int `json:"passes"`
	// Crossings is the residual crossing count after ordering.
	Crossings int `json:"crossings"`
	// Ranks is the number of distinct layers in the final layout.
	Ranks int `json:"ranks"`
}

// Apply runs the full layered layout pipeline on the arena in place:
// cycle breaking, longest-path rank assignment, barycenter crossing
// minimization, and coordinate assignment.
//
// Apply never fails on graph content - degenerate graphs (zero nodes, no
// edges, single node) are well-defined inputs, and termination is
// guaranteed structurally by the ordering pass cap. The only error is an
// invalid config.
func Apply(g *dag.Graph, cfg Config) (Stats, error) {
	if err := cfg.Validate(); err != nil {
		return Stats{}, err
	}
	cfg = cfg.withDefaults()

	var stats Stats
	if g.NodeCount() == 0 {
		return stats, nil
	}

	stats.ReversedEdges = ReverseCycles(g)
	AssignRanks(g)
	stats.Passes = OrderRanks(g, cfg.OrderingPasses)
	AssignCoords(g, cfg)

	stats.Crossings = dag.CountCrossings(g)
	stats.Ranks = g.RankCount()
	return stats, nil
}
