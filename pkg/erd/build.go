package erd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tablemap/tablemap/pkg/dag"
	"github.com/tablemap/tablemap/pkg/errors"
	"github.com/tablemap/tablemap/pkg/infer"
	"github.com/tablemap/tablemap/pkg/observability"
	"github.com/tablemap/tablemap/pkg/schema"
)

// NodeID derives the arena node ID for a table name: lower-cased, with runs
// of whitespace collapsed to a single underscore. "Order Items" and
// "order items" map to the same ID, which is why duplicate detection happens
// at the ID level rather than on raw names.
func NodeID(tableName string) string {
	return strings.Join(strings.Fields(strings.ToLower(tableName)), "_")
}

// NodeHeight computes a table node's height from its column count. The
// displayed row count is clamped so empty tables still get a readable box and
// very wide tables do not dominate the canvas.
func NodeHeight(columnCount int) float64 {
	rows := columnCount
	if rows < MinDisplayedRows {
		rows = MinDisplayedRows
	}
	if rows > MaxDisplayedRows {
		rows = MaxDisplayedRows
	}
	return BaseHeight + float64(rows)*RowHeight
}

// Build constructs the layout arena from a catalog and its inferred
// relations. Malformed input never fails the build: tables whose derived IDs
// collide are skipped, and relations referencing missing tables are dropped,
// each with a diagnostic.
//
// Nodes are added in catalog order and edges in relation order, so the arena's
// insertion order - and with it the whole layout - is determined by the input.
func Build(ctx context.Context, catalog schema.Catalog, relations []infer.Relation) (*dag.Graph, []Diagnostic) {
	start := time.Now()
	observability.Engine().OnBuildStart(ctx, len(catalog.Tables), len(relations))

	g := dag.New()
	var diags []Diagnostic

	for _, t := range catalog.Tables {
		id := NodeID(t.Name)
		node := dag.Node{
			ID:     id,
			Label:  t.Name,
			Width:  NodeWidth,
			Height: NodeHeight(len(t.Columns)),
		}
		switch err := g.AddNode(node); err {
		case nil:
		case dag.ErrDuplicateNodeID:
			diags = record(ctx, diags, errors.ErrCodeDuplicateTable,
				fmt.Sprintf("table %q maps to node ID %q, already taken; skipping", t.Name, id))
		case dag.ErrInvalidNodeID:
			diags = record(ctx, diags, errors.ErrCodeInvalidTable,
				fmt.Sprintf("table %q has no usable name; skipping", t.Name))
		default:
			diags = record(ctx, diags, errors.ErrCodeInternal, err.Error())
		}
	}

	dropped := len(diags)
	for _, r := range relations {
		edge := dag.Edge{
			From:  NodeID(r.Source),
			To:    NodeID(r.Target),
			Label: r.Column,
		}
		if err := g.AddEdge(edge); err != nil {
			diags = record(ctx, diags, errors.ErrCodeUnknownEndpoint,
				fmt.Sprintf("relation %s→%s on %q references a missing table; dropping", r.Source, r.Target, r.Column))
		}
	}
	dropped = len(diags) - dropped

	observability.Engine().OnBuildComplete(ctx, g.NodeCount(), g.EdgeCount(), dropped, time.Since(start))
	return g, diags
}

func record(ctx context.Context, diags []Diagnostic, code errors.Code, message string) []Diagnostic {
	observability.Diagnostic().OnDiagnostic(ctx, string(code), message)
	return append(diags, Diagnostic{Code: string(code), Message: message})
}
