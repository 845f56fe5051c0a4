package layout

import "github.com/tablemap/tablemap/pkg/dag"

// AssignCoords computes the center coordinate of every node from its rank
// and within-rank order.
//
// Along the layering direction, ranks are spaced uniformly: every rank
// advances by the maximum node extent in that direction plus RankSep, so a
// rank's nodes share one along-axis center band. Across the layering
// direction, nodes are stacked cumulatively: each node's near edge sits at
// the margin plus the extents of the earlier nodes in its rank plus NodeSep
// per position index. Stacking edges (rather than centers) is what keeps
// variable-height nodes from overlapping.
//
// Stored X/Y are centers; the emitter converts to the consumer's top-left
// origin. With these formulas a single rank-0 node's top-left lands exactly
// on (MarginX, MarginY).
func AssignCoords(g *dag.Graph, cfg Config) {
	cfg = cfg.withDefaults()

	maxAlong := 0.0
	for _, n := range g.Nodes() {
		if extent := alongExtent(n, cfg.Direction); extent > maxAlong {
			maxAlong = extent
		}
	}

	for r := 0; r <= g.MaxRank(); r++ {
		offset := crossMargin(cfg)
		for i, id := range g.NodesInRank(r) {
			n, ok := g.Node(id)
			if !ok {
				continue
			}
			along := alongMargin(cfg) + float64(r)*(maxAlong+cfg.RankSep) + alongExtent(n, cfg.Direction)/2
			cross := offset + float64(i)*cfg.NodeSep + crossExtent(n, cfg.Direction)/2

			if cfg.Direction == DirectionTopBottom {
				n.X, n.Y = cross, along
			} else {
				n.X, n.Y = along, cross
			}
			offset += crossExtent(n, cfg.Direction)
		}
	}
}

// alongExtent is the node's size in the layering direction.
func alongExtent(n *dag.Node, d Direction) float64 {
	if d == DirectionTopBottom {
		return n.Height
	}
	return n.Width
}

// crossExtent is the node's size perpendicular to the layering direction.
func crossExtent(n *dag.Node, d Direction) float64 {
	if d == DirectionTopBottom {
		return n.Width
	}
	return n.Height
}

func alongMargin(cfg Config) float64 {
	if cfg.Direction == DirectionTopBottom {
		return cfg.MarginY
	}
	return cfg.MarginX
}

func crossMargin(cfg Config) float64 {
	if cfg.Direction == DirectionTopBottom {
		return cfg.MarginX
	}
	return cfg.MarginY
}
