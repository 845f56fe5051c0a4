package erd

import (
	"context"
	"testing"

	"github.com/tablemap/tablemap/pkg/errors"
	"github.com/tablemap/tablemap/pkg/infer"
	"github.com/tablemap/tablemap/pkg/observability"
	"github.com/tablemap/tablemap/pkg/schema"
)

func table(name string, columns ...string) schema.Table {
	t := schema.Table{Name: name}
	for _, c := range columns {
		t.Columns = append(t.Columns, schema.Column{Name: c})
	}
	return t
}

func TestNodeID(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"users", "users"},
		{"Users", "users"},
		{"Order Items", "order_items"},
		{"  Order   Items  ", "order_items"},
		{"order_items", "order_items"},
	}
	for _, tt := range tests {
		if got := NodeID(tt.name); got != tt.want {
			t.Errorf("NodeID(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestNodeHeight(t *testing.T) {
	tests := []struct {
		columns int
		want    float64
	}{
		{0, BaseHeight + 3*RowHeight},  // empty tables still get a readable box
		{3, BaseHeight + 3*RowHeight},  // at the lower clamp
		{5, BaseHeight + 5*RowHeight},  // within bounds
		{12, BaseHeight + 12*RowHeight},
		{30, BaseHeight + 12*RowHeight}, // wide tables clamp at the upper bound
	}
	for _, tt := range tests {
		if got := NodeHeight(tt.columns); got != tt.want {
			t.Errorf("NodeHeight(%d) = %v, want %v", tt.columns, got, tt.want)
		}
	}
}

func TestBuild_Basic(t *testing.T) {
	catalog := schema.Catalog{Tables: []schema.Table{
		table("Orders", "id", "customer_id", "total"),
		table("Customers", "id", "email"),
	}}
	relations := []infer.Relation{
		{Source: "Orders", Target: "Customers", Column: "customer_id"},
	}

	g, diags := Build(context.Background(), catalog, relations)

	if len(diags) != 0 {
		t.Fatalf("Build() diagnostics = %v, want none", diags)
	}
	if g.NodeCount() != 2 || g.EdgeCount() != 1 {
		t.Fatalf("graph has %d nodes, %d edges; want 2, 1", g.NodeCount(), g.EdgeCount())
	}

	n, ok := g.Node("orders")
	if !ok {
		t.Fatal("node orders not found")
	}
	if n.Label != "Orders" {
		t.Errorf("Label = %q, want the original table name", n.Label)
	}
	if n.Width != NodeWidth {
		t.Errorf("Width = %v, want %v", n.Width, NodeWidth)
	}
	if n.Height != NodeHeight(3) {
		t.Errorf("Height = %v, want %v", n.Height, NodeHeight(3))
	}

	e := g.Edges()[0]
	if e.From != "orders" || e.To != "customers" || e.Label != "customer_id" {
		t.Errorf("edge = %+v, want orders→customers on customer_id", e)
	}
}

func TestBuild_DuplicateTableSkipped(t *testing.T) {
	// "Users" and "users" collapse to the same node ID: the later table is
	// skipped, never merged.
	catalog := schema.Catalog{Tables: []schema.Table{
		table("Users", "id", "email"),
		table("users", "id", "name", "street", "city", "zip"),
	}}

	g, diags := Build(context.Background(), catalog, nil)

	if g.NodeCount() != 1 {
		t.Fatalf("NodeCount() = %d, want 1", g.NodeCount())
	}
	if len(diags) != 1 || diags[0].Code != string(errors.ErrCodeDuplicateTable) {
		t.Fatalf("diagnostics = %v, want one %s", diags, errors.ErrCodeDuplicateTable)
	}

	n, _ := g.Node("users")
	if n.Label != "Users" {
		t.Errorf("kept node Label = %q, want first table to win", n.Label)
	}
	if n.Height != NodeHeight(2) {
		t.Errorf("Height = %v, want the first table's geometry", n.Height)
	}
}

func TestBuild_UnknownEndpointDropped(t *testing.T) {
	catalog := schema.Catalog{Tables: []schema.Table{
		table("orders", "id"),
	}}
	relations := []infer.Relation{
		{Source: "orders", Target: "ghosts", Column: "ghost_id"},
	}

	g, diags := Build(context.Background(), catalog, relations)

	if g.EdgeCount() != 0 {
		t.Errorf("EdgeCount() = %d, want 0: edge to missing table must be dropped", g.EdgeCount())
	}
	if len(diags) != 1 || diags[0].Code != string(errors.ErrCodeUnknownEndpoint) {
		t.Fatalf("diagnostics = %v, want one %s", diags, errors.ErrCodeUnknownEndpoint)
	}
}

func TestBuild_EmptyCatalog(t *testing.T) {
	g, diags := Build(context.Background(), schema.Catalog{}, nil)
	if g.NodeCount() != 0 || g.EdgeCount() != 0 || len(diags) != 0 {
		t.Errorf("empty catalog produced nodes=%d edges=%d diags=%d",
			g.NodeCount(), g.EdgeCount(), len(diags))
	}
}

type captureDiagnostics struct {
	observability.NoopDiagnosticHooks
	codes []string
}

func (c *captureDiagnostics) OnDiagnostic(_ context.Context, code, _ string) {
	c.codes = append(c.codes, code)
}

func TestBuild_DiagnosticsReachHooks(t *testing.T) {
	capture := &captureDiagnostics{}
	observability.SetDiagnosticHooks(capture)
	defer observability.Reset()

	catalog := schema.Catalog{Tables: []schema.Table{
		table("users", "id"),
		table("Users", "id"),
	}}
	Build(context.Background(), catalog, []infer.Relation{
		{Source: "users", Target: "missing", Column: "missing_id"},
	})

	want := []string{string(errors.ErrCodeDuplicateTable), string(errors.ErrCodeUnknownEndpoint)}
	if len(capture.codes) != len(want) {
		t.Fatalf("hook received %v, want %v", capture.codes, want)
	}
	for i := range want {
		if capture.codes[i] != want[i] {
			t.Errorf("hook code[%d] = %s, want %s", i, capture.codes[i], want[i])
		}
	}
}
