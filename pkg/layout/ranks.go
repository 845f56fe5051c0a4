package layout

import "github.com/tablemap/tablemap/pkg/dag"

// AssignRanks assigns every node a non-negative rank using longest-path
// layering via topological sort (Kahn's algorithm). Each node lands at one
// plus the maximum rank of its predecessors, so:
//   - Source nodes (no incoming edges) are at rank 0
//   - Every edge points from a strictly lower rank to a strictly higher rank
//   - A fully disconnected graph collapses onto rank 0
//
// Existing rank assignments are overwritten. The queue is seeded in node
// insertion order, keeping the rebuilt rank index deterministic.
//
// AssignRanks assumes the graph is acyclic; run [ReverseCycles] first.
// Nodes on a residual cycle would never reach zero in-degree and would stay
// at rank 0.
func AssignRanks(g *dag.Graph) {
	nodes := g.Nodes()
	inDegree := make(map[string]int, len(nodes))
	ranks := make(map[string]int, len(nodes))
	queue := make([]string, 0, len(nodes))

	for _, n := range nodes {
		degree := g.InDegree(n.ID)
		inDegree[n.ID] = degree
		if degree == 0 {
			queue = append(queue, n.ID)
		}
	}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		for _, next := range g.Successors(curr) {
			if rank := ranks[curr] + 1; rank > ranks[next] {
				ranks[next] = rank
			}
			inDegree[next]--
			if inDegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	g.SetRanks(ranks)
}
