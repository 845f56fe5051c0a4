package dag

import (
	"errors"
	"slices"
)

var (
	// ErrInvalidNodeID is returned by [Graph.AddNode] when the node ID is
	// empty. All nodes must have non-empty identifiers.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Graph.AddNode] when a node with the
	// same ID already exists in the graph. Node IDs must be unique.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownSourceNode is returned by [Graph.AddEdge] when the From node
	// does not exist.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [Graph.AddEdge] when the To node
	// does not exist in the graph.
	ErrUnknownTargetNode = errors.New("unknown target node")

	// ErrRankNotMonotonic is returned by [Graph.Validate] when an edge does
	// not point from a strictly lower rank to a strictly higher rank.
	ErrRankNotMonotonic = errors.New("edges must point to a higher rank")

	// ErrGraphHasCycle is returned by [Graph.Validate] when a cycle is
	// detected. Cycles are found using depth-first search with
	// white/gray/black coloring.
	ErrGraphHasCycle = errors.New("graph contains a cycle")
)

// Node represents one table in the layout arena. Geometry is in abstract
// layout units. Rank, Order, X, and Y start at zero and are assigned by the
// layout phases; everything else is set by the graph builder.
//
// The zero value is not usable - ID must be set before adding to a Graph.
type Node struct {
	ID     string  // Unique identifier derived from the table name
	Label  string  // Display label (the original table name)
	Width  float64 // Horizontal extent (uniform across the graph)
	Height float64 // Vertical extent (derived from column count)

	Rank  int     // Layer assignment (0 = leftmost in a left-to-right layout)
	Order int     // Position within the rank after crossing minimization
	X, Y  float64 // Center coordinates assigned by the layout engine
}

// Edge represents a directed, labeled connection between two nodes.
// Reversed marks edges flipped during cycle breaking; the stored From/To are
// the working direction, and the emitter restores the original one.
type Edge struct {
	From     string // Source node ID (working direction)
	To       string // Target node ID (working direction)
	Label    string // Joining column name
	Reversed bool   // Set when cycle breaking flipped this edge
}

// Graph is the owned arena the layout engine works on. Nodes and edges are
// referenced by stable string IDs, never by pointer, which keeps
// deduplication and cycle breaking simple to reason about and test.
//
// Unlike a general-purpose graph, iteration order is part of the contract:
// Nodes and Edges return insertion order, and every layout phase that walks
// the arena does so in that order. This is what makes layout deterministic
// without relying on map iteration.
//
// The zero value is not usable - use New. Graph is not safe for concurrent
// use without external synchronization.
type Graph struct {
	nodes    map[string]*Node
	order    []string // node IDs in insertion order
	edges    []Edge
	outgoing map[string][]string // nodeID -> successor IDs
	incoming map[string][]string // nodeID -> predecessor IDs
	ranks    map[int][]string    // rank -> node IDs, insertion order
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{
		nodes:    make(map[string]*Node),
		outgoing: make(map[string][]string),
		incoming: make(map[string][]string),
		ranks:    make(map[int][]string),
	}
}

// AddNode adds a node to the graph and indexes it by its Rank.
// Returns ErrInvalidNodeID if the node ID is empty, or ErrDuplicateNodeID
// if a node with the same ID already exists.
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if _, exists := g.nodes[n.ID]; exists {
		return ErrDuplicateNodeID
	}
	node := &n
	g.nodes[node.ID] = node
	g.order = append(g.order, node.ID)
	g.ranks[node.Rank] = append(g.ranks[node.Rank], node.ID)
	return nil
}

// AddEdge adds a directed edge between two existing nodes.
// Returns ErrUnknownSourceNode or ErrUnknownTargetNode if an endpoint is
// missing. Parallel edges between the same nodes are allowed; callers that
// need uniqueness deduplicate before building the arena.
func (g *Graph) AddEdge(e Edge) error {
	if _, ok := g.nodes[e.From]; !ok {
		return ErrUnknownSourceNode
	}
	if _, ok := g.nodes[e.To]; !ok {
		return ErrUnknownTargetNode
	}
	g.edges = append(g.edges, e)
	g.outgoing[e.From] = append(g.outgoing[e.From], e.To)
	g.incoming[e.To] = append(g.incoming[e.To], e.From)
	return nil
}

// ReverseEdge flips the direction of the first from→to edge for layering
// purposes, toggling its Reversed flag. The semantic direction is recovered
// later from that flag. Reversing an already-reversed edge restores it.
// No-op if the edge does not exist.
func (g *Graph) ReverseEdge(from, to string) {
	for i := range g.edges {
		if g.edges[i].From == from && g.edges[i].To == to {
			g.edges[i].From, g.edges[i].To = to, from
			g.edges[i].Reversed = !g.edges[i].Reversed

			g.outgoing[from] = deleteFirst(g.outgoing[from], to)
			g.incoming[to] = deleteFirst(g.incoming[to], from)
			g.outgoing[to] = append(g.outgoing[to], from)
			g.incoming[from] = append(g.incoming[from], to)
			return
		}
	}
}

// RemoveEdge removes the first from→to edge if it exists.
// No error is returned if the edge does not exist.
func (g *Graph) RemoveEdge(from, to string) {
	for i := range g.edges {
		if g.edges[i].From == from && g.edges[i].To == to {
			g.edges = slices.Delete(g.edges, i, i+1)
			g.outgoing[from] = deleteFirst(g.outgoing[from], to)
			g.incoming[to] = deleteFirst(g.incoming[to], from)
			return
		}
	}
}

func deleteFirst(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return slices.Delete(ids, i, i+1)
		}
	}
	return ids
}

// SetRanks updates rank assignments and rebuilds the rank index, resetting
// each node's Order to its position within the rank. Nodes not present in
// the ranks map keep their current assignment. Within each rank, nodes
// appear in graph insertion order, so the rebuilt index is deterministic for
// a given input ordering.
func (g *Graph) SetRanks(ranks map[string]int) {
	g.ranks = make(map[int][]string)
	for _, id := range g.order {
		n := g.nodes[id]
		if rank, ok := ranks[id]; ok {
			n.Rank = rank
		}
		n.Order = len(g.ranks[n.Rank])
		g.ranks[n.Rank] = append(g.ranks[n.Rank], id)
	}
}

// SetRankOrder replaces the node ordering of a single rank and updates each
// node's Order field. The caller must pass a permutation of the rank's
// current IDs; unknown IDs are ignored.
func (g *Graph) SetRankOrder(rank int, ids []string) {
	kept := make([]string, 0, len(ids))
	for _, id := range ids {
		if n, ok := g.nodes[id]; ok && n.Rank == rank {
			n.Order = len(kept)
			kept = append(kept, id)
		}
	}
	g.ranks[rank] = kept
}

// Nodes returns all nodes in insertion order.
// The returned slice contains pointers to the actual node structs, so
// modifications affect the graph.
func (g *Graph) Nodes() []*Node {
	nodes := make([]*Node, len(g.order))
	for i, id := range g.order {
		nodes[i] = g.nodes[id]
	}
	return nodes
}

// Edges returns a copy of all edges in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Successors returns the IDs of nodes this node has edges to.
// The returned slice is a read-only view.
func (g *Graph) Successors(id string) []string { return g.outgoing[id] }

// Predecessors returns the IDs of nodes that have edges to this node.
// The returned slice is a read-only view.
func (g *Graph) Predecessors(id string) []string { return g.incoming[id] }

// OutDegree returns the number of outgoing edges from the node.
func (g *Graph) OutDegree(id string) int { return len(g.outgoing[id]) }

// InDegree returns the number of incoming edges to the node.
func (g *Graph) InDegree(id string) int { return len(g.incoming[id]) }

// Node returns the node with the given ID and true, or nil and false.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// NodesInRank returns the node IDs assigned to the given rank, in the order
// established by SetRanks/SetRankOrder. Returns nil for an empty rank.
func (g *Graph) NodesInRank(rank int) []string { return g.ranks[rank] }

// RankCount returns the number of distinct ranks in the graph.
func (g *Graph) RankCount() int { return len(g.ranks) }

// MaxRank returns the highest rank index, or 0 if the graph is empty.
func (g *Graph) MaxRank() int {
	max := 0
	for r := range g.ranks {
		if r > max {
			max = r
		}
	}
	return max
}

// Sources returns nodes with no incoming edges, in insertion order.
func (g *Graph) Sources() []*Node {
	var sources []*Node
	for _, id := range g.order {
		if len(g.incoming[id]) == 0 {
			sources = append(sources, g.nodes[id])
		}
	}
	return sources
}

// Sinks returns nodes with no outgoing edges, in insertion order.
func (g *Graph) Sinks() []*Node {
	var sinks []*Node
	for _, id := range g.order {
		if len(g.outgoing[id]) == 0 {
			sinks = append(sinks, g.nodes[id])
		}
	}
	return sinks
}

// Validate checks graph integrity after layering and returns nil if valid.
// It verifies that every edge points from a strictly lower rank to a
// strictly higher rank, and that the graph is acyclic.
//
// Returns ErrRankNotMonotonic or ErrGraphHasCycle. Use this after cycle
// breaking and rank assignment, before coordinate assignment.
func (g *Graph) Validate() error {
	for _, e := range g.edges {
		src, okS := g.nodes[e.From]
		dst, okD := g.nodes[e.To]
		if !okS || !okD {
			return ErrUnknownSourceNode
		}
		if dst.Rank <= src.Rank {
			return ErrRankNotMonotonic
		}
	}
	return g.detectCycles()
}

func (g *Graph) detectCycles() error {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int, len(g.nodes))
	var hasCycle bool

	var dfs func(id string)
	dfs = func(id string) {
		color[id] = gray
		for _, next := range g.outgoing[id] {
			switch color[next] {
			case white:
				dfs(next)
			case gray:
				hasCycle = true
				return
			}
		}
		color[id] = black
	}

	for _, id := range g.order {
		if color[id] == white {
			dfs(id)
			if hasCycle {
				return ErrGraphHasCycle
			}
		}
	}
	return nil
}

// PosMap creates a position lookup map from a slice of node IDs.
// The returned map maps each ID to its index in the slice. This is commonly
// used to convert rank orderings into fast position lookups for crossing
// calculations.
func PosMap(ids []string) map[string]int {
	m := make(map[string]int, len(ids))
	for i, id := range ids {
		m[id] = i
	}
	return m
}
