// Package dag provides the directed-graph arena used by the layered layout
// engine for entity-relationship diagrams.
//
// # Overview
//
// Tablemap draws a table catalog as a layered graph: each table becomes a
// sized node, each inferred relationship a directed labeled edge. This
// package holds the working representation those phases mutate - rank
// assignments, within-rank orderings, and final coordinates - while keeping
// the structure queryable through adjacency indexes.
//
// Nodes are referenced by stable string IDs in an owned arena rather than by
// pointer. That choice, together with insertion-ordered iteration everywhere,
// is what makes the layout pipeline deterministic: the same catalog in the
// same order always yields the same positions.
//
// # Basic Usage
//
// Create a graph with [New], add nodes with [Graph.AddNode], and edges with
// [Graph.AddEdge]:
//
//	g := dag.New()
//	g.AddNode(dag.Node{ID: "customers", Width: 240, Height: 128})
//	g.AddNode(dag.Node{ID: "orders", Width: 240, Height: 128})
//	g.AddEdge(dag.Edge{From: "orders", To: "customers", Label: "customer_id"})
//
// Query the structure with [Graph.Successors], [Graph.Predecessors],
// [Graph.NodesInRank], and related methods. Use [Graph.Validate] after
// layering to verify rank monotonicity and acyclicity.
//
// # Edge Crossings
//
// Crossing minimization needs to evaluate candidate orderings quickly. The
// [CountCrossings] and [CountRankCrossings] functions use a Fenwick tree
// (binary indexed tree) to count inversions in O(E log V) time.
//
// # Concurrency
//
// Graph instances are not safe for concurrent use. Each layout call owns its
// arena for the duration of the call; nothing is shared across calls.
package dag
