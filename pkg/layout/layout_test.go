package layout

import (
	"testing"

	"github.com/tablemap/tablemap/pkg/dag"
	"github.com/tablemap/tablemap/pkg/errors"
)

func TestApply_EmptyGraph(t *testing.T) {
	stats, err := Apply(dag.New(), DefaultConfig())
	if err != nil {
		t.Fatalf("Apply() on empty graph: %v", err)
	}
	if stats != (Stats{}) {
		t.Errorf("Apply() on empty graph returned %+v, want zero stats", stats)
	}
}

func TestApply_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RankSep = -1

	_, err := Apply(dag.New(), cfg)
	if err == nil {
		t.Fatal("Apply() with negative RankSep: expected error")
	}
	if code := errors.GetCode(err); code != errors.ErrCodeInvalidConfig {
		t.Errorf("error code = %s, want %s", code, errors.ErrCodeInvalidConfig)
	}
}

func TestApply_ZeroConfigGetsDefaults(t *testing.T) {
	// An all-zero config is valid: direction and pass cap are defaulted, and
	// zero separations just pack nodes tightly.
	g := graphWith(t, []string{"a", "b"}, [][2]string{{"a", "b"}})

	stats, err := Apply(g, Config{})
	if err != nil {
		t.Fatalf("Apply() with zero config: %v", err)
	}
	if stats.Ranks != 2 {
		t.Errorf("Ranks = %d, want 2", stats.Ranks)
	}
}

func TestApply_TwoCycleTerminates(t *testing.T) {
	// Mutual references must not hang the pipeline: one edge is reversed,
	// ranks split, and both edges survive.
	g := graphWith(t, []string{"a", "b"}, [][2]string{{"a", "b"}, {"b", "a"}})

	stats, err := Apply(g, DefaultConfig())
	if err != nil {
		t.Fatalf("Apply(): %v", err)
	}
	if stats.ReversedEdges != 1 {
		t.Errorf("ReversedEdges = %d, want 1", stats.ReversedEdges)
	}
	if stats.Ranks != 2 {
		t.Errorf("Ranks = %d, want 2", stats.Ranks)
	}
	if g.EdgeCount() != 2 {
		t.Errorf("EdgeCount() = %d, want 2", g.EdgeCount())
	}
}

func TestApply_Stats(t *testing.T) {
	g := graphWith(t, []string{"a", "b", "x", "y"},
		[][2]string{{"a", "y"}, {"b", "x"}})

	stats, err := Apply(g, DefaultConfig())
	if err != nil {
		t.Fatalf("Apply(): %v", err)
	}
	if stats.Crossings != 0 {
		t.Errorf("Crossings = %d, want 0 after ordering", stats.Crossings)
	}
	if stats.Passes < 1 {
		t.Errorf("Passes = %d, want at least 1", stats.Passes)
	}
	if stats.Ranks != 2 {
		t.Errorf("Ranks = %d, want 2", stats.Ranks)
	}
}

func TestApply_Deterministic(t *testing.T) {
	build := func() *dag.Graph {
		g := dag.New()
		for i, id := range []string{"users", "orders", "items", "products", "reviews"} {
			if err := g.AddNode(dag.Node{ID: id, Width: 240, Height: float64(44 + 28*(i+3))}); err != nil {
				t.Fatal(err)
			}
		}
		for _, e := range [][2]string{
			{"orders", "users"}, {"items", "orders"}, {"items", "products"},
			{"reviews", "products"}, {"reviews", "users"},
		} {
			if err := g.AddEdge(dag.Edge{From: e[0], To: e[1]}); err != nil {
				t.Fatal(err)
			}
		}
		return g
	}

	g1, g2 := build(), build()
	s1, err := Apply(g1, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	s2, err := Apply(g2, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	if s1 != s2 {
		t.Fatalf("stats differ between runs: %+v vs %+v", s1, s2)
	}
	for _, n1 := range g1.Nodes() {
		n2, _ := g2.Node(n1.ID)
		if *n1 != *n2 {
			t.Fatalf("node %s differs between runs: %+v vs %+v", n1.ID, n1, n2)
		}
	}
	e1, e2 := g1.Edges(), g2.Edges()
	for i := range e1 {
		if e1[i] != e2[i] {
			t.Fatalf("edge %d differs between runs: %+v vs %+v", i, e1[i], e2[i])
		}
	}
}
