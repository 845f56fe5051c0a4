package erd

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"
)

// DOTOptions configures the debug DOT export.
type DOTOptions struct {
	// Detailed includes rank and order in node labels.
	// When false, only the table label is shown.
	Detailed bool
}

// ToDOT converts an emitted layout to Graphviz DOT format with pinned
// positions. The engine's own coordinates stay authoritative: every node gets
// a pos="x,y!" attribute, so rendering with the neato engine reproduces the
// computed layout instead of recomputing one.
//
// Layout units map to points one-to-one; the y axis is flipped because
// Graphviz grows upward.
func ToDOT(l Layout, opts DOTOptions) string {
	var buf bytes.Buffer
	buf.WriteString("digraph erd {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fixedsize=true];\n")
	buf.WriteString("\n")

	for _, n := range l.Nodes {
		cx := n.X + n.Width/2
		cy := l.Height - (n.Y + n.Height/2)
		attrs := []string{
			fmt.Sprintf("label=%q", dotLabel(n, opts.Detailed)),
			fmt.Sprintf("pos=\"%.0f,%.0f!\"", cx, cy),
			fmt.Sprintf("width=%.3f", n.Width/72),
			fmt.Sprintf("height=%.3f", n.Height/72),
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range l.Edges {
		if e.Column != "" {
			fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", e.Source, e.Target, e.Column)
		} else {
			fmt.Fprintf(&buf, "  %q -> %q;\n", e.Source, e.Target)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func dotLabel(n Node, detailed bool) string {
	if !detailed {
		return n.Label
	}
	return fmt.Sprintf("%s\nrank: %d, order: %d", n.Label, n.Rank, n.Order)
}

// RenderSVG renders a DOT layout to SVG using the neato engine so the pinned
// positions from [ToDOT] are honored.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.SVG)
}

// RenderPNG renders a DOT layout to PNG. See [RenderSVG].
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.PNG)
}

func renderFormat(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
