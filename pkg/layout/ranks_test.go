package layout

import (
	"testing"

	"github.com/tablemap/tablemap/pkg/dag"
)

func rankOf(t *testing.T, g *dag.Graph, id string) int {
	t.Helper()
	n, ok := g.Node(id)
	if !ok {
		t.Fatalf("node %s not found", id)
	}
	return n.Rank
}

func TestAssignRanks_Chain(t *testing.T) {
	g := graphWith(t, []string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"b", "c"}})

	AssignRanks(g)

	for i, id := range []string{"a", "b", "c"} {
		if got := rankOf(t, g, id); got != i {
			t.Errorf("rank(%s) = %d, want %d", id, got, i)
		}
	}
}

func TestAssignRanks_LongestPathWins(t *testing.T) {
	// a→b→c and a→c: c must land below the longest path, at rank 2.
	g := graphWith(t, []string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"b", "c"}, {"a", "c"}})

	AssignRanks(g)

	if got := rankOf(t, g, "c"); got != 2 {
		t.Errorf("rank(c) = %d, want 2 (longest path)", got)
	}
}

func TestAssignRanks_DisconnectedGraph(t *testing.T) {
	g := graphWith(t, []string{"a", "b", "c"}, nil)

	AssignRanks(g)

	for _, id := range []string{"a", "b", "c"} {
		if got := rankOf(t, g, id); got != 0 {
			t.Errorf("rank(%s) = %d, want 0 for edge-free graph", id, got)
		}
	}
	if got := g.NodesInRank(0); len(got) != 3 {
		t.Errorf("NodesInRank(0) has %d nodes, want 3", len(got))
	}
}

func TestAssignRanks_EdgesAreMonotonic(t *testing.T) {
	g := graphWith(t, []string{"a", "b", "c", "d", "e"},
		[][2]string{{"a", "b"}, {"a", "c"}, {"b", "d"}, {"c", "d"}, {"d", "e"}})

	AssignRanks(g)

	if err := g.Validate(); err != nil {
		t.Errorf("Validate() after AssignRanks: %v", err)
	}
}

func TestAssignRanks_AfterCycleBreaking(t *testing.T) {
	// The two-cycle from inference scenario: a.b_id and b.a_id.
	g := graphWith(t, []string{"a", "b"}, [][2]string{{"a", "b"}, {"b", "a"}})

	ReverseCycles(g)
	AssignRanks(g)

	ra, rb := rankOf(t, g, "a"), rankOf(t, g, "b")
	if ra == rb {
		t.Fatalf("ranks equal (%d): a two-cycle must still split across ranks", ra)
	}
	if ra != 0 && rb != 0 {
		t.Errorf("ranks (%d, %d): one node must be at rank 0", ra, rb)
	}
}

func TestAssignRanks_OverwritesPrevious(t *testing.T) {
	g := graphWith(t, []string{"a", "b"}, [][2]string{{"a", "b"}})
	g.SetRanks(map[string]int{"a": 5, "b": 5})

	AssignRanks(g)

	if rankOf(t, g, "a") != 0 || rankOf(t, g, "b") != 1 {
		t.Error("AssignRanks() must overwrite stale rank assignments")
	}
}
