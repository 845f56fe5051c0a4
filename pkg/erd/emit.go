package erd

import (
	"github.com/tablemap/tablemap/pkg/dag"
	"github.com/tablemap/tablemap/pkg/layout"
)

// Emit converts a positioned arena into the external Layout contract:
// center coordinates become top-left corners, cycle-broken edges are flipped
// back to their semantic direction, and the overall canvas size is computed
// from the node extents plus the config margins.
//
// The config must be the one passed to [layout.Apply] so the trailing margins
// mirror the leading ones.
func Emit(g *dag.Graph, cfg layout.Config, stats layout.Stats, diags []Diagnostic) Layout {
	l := Layout{
		Nodes:       make([]Node, 0, g.NodeCount()),
		Edges:       make([]Edge, 0, g.EdgeCount()),
		Stats:       stats,
		Diagnostics: diags,
	}

	var maxRight, maxBottom float64
	for _, n := range g.Nodes() {
		x := n.X - n.Width/2
		y := n.Y - n.Height/2
		l.Nodes = append(l.Nodes, Node{
			ID:     n.ID,
			Label:  n.Label,
			X:      x,
			Y:      y,
			Width:  n.Width,
			Height: n.Height,
			Rank:   n.Rank,
			Order:  n.Order,
		})
		if right := x + n.Width; right > maxRight {
			maxRight = right
		}
		if bottom := y + n.Height; bottom > maxBottom {
			maxBottom = bottom
		}
	}

	for _, e := range g.Edges() {
		src, dst := e.From, e.To
		if e.Reversed {
			src, dst = dst, src
		}
		l.Edges = append(l.Edges, Edge{
			ID:       edgeID(src, dst, e.Label),
			Source:   src,
			Target:   dst,
			Column:   e.Label,
			Reversed: e.Reversed,
		})
	}

	if len(l.Nodes) > 0 {
		l.Width = maxRight + cfg.MarginX
		l.Height = maxBottom + cfg.MarginY
	}
	return l
}

// edgeID builds a stable identifier from the semantic endpoints and joining
// column. The builder deduplicates relations per (pair, column), so IDs are
// unique within one layout.
func edgeID(source, target, column string) string {
	if column == "" {
		return source + "->" + target
	}
	return source + "->" + target + ":" + column
}
