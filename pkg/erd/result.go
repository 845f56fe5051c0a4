package erd

import (
	"github.com/tablemap/tablemap/pkg/layout"
)

// Geometry constants for table nodes, in abstract layout units. Height grows
// with column count between the display-row bounds so that narrow and wide
// tables stay legible on the same canvas.
const (
	BaseHeight = 44.0 // header band: table name + row-count line
	RowHeight  = 28.0 // one column row
	NodeWidth  = 240.0

	MinDisplayedRows = 3
	MaxDisplayedRows = 12
)

// Node is one positioned table in the emitted layout. Unlike the arena's
// internal representation, X and Y are the top-left corner, which is what
// rendering frontends expect.
type Node struct {
	ID     string  `json:"id" bson:"id"`
	Label  string  `json:"label" bson:"label"`
	X      float64 `json:"x" bson:"x"`
	Y      float64 `json:"y" bson:"y"`
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
	Rank   int     `json:"rank" bson:"rank"`
	Order  int     `json:"order" bson:"order"`
}

// Edge is one relation in the emitted layout, in its semantic direction.
// Edges the layout engine flipped for layering are flipped back here and
// marked Reversed so a frontend can route them against the rank flow.
type Edge struct {
	ID       string `json:"id" bson:"id"`
	Source   string `json:"source" bson:"source"`
	Target   string `json:"target" bson:"target"`
	Column   string `json:"column,omitempty" bson:"column,omitempty"`
	Reversed bool   `json:"reversed,omitempty" bson:"reversed,omitempty"`
}

// Diagnostic records an input problem the builder recovered from. The engine
// never fails on malformed catalog content; it skips the offending piece and
// reports it here.
type Diagnostic struct {
	Code    string `json:"code" bson:"code"`
	Message string `json:"message" bson:"message"`
}

// Layout is the complete positioned diagram: what the dashboard renders.
type Layout struct {
	Nodes  []Node  `json:"nodes" bson:"nodes"`
	Edges  []Edge  `json:"edges" bson:"edges"`
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`

	Stats       layout.Stats `json:"stats" bson:"stats"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty" bson:"diagnostics,omitempty"`
}

// Node returns the node with the given ID and true, or a zero Node and false.
func (l Layout) Node(id string) (Node, bool) {
	for _, n := range l.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}
