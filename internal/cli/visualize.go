package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tablemap/tablemap/pkg/erd"
	"github.com/tablemap/tablemap/pkg/errors"
)

// Output formats for the visualize command.
const (
	formatDOT = "dot"
	formatSVG = "svg"
	formatPNG = "png"
)

// visualizeCommand creates the visualize command for rendering a layout.
func (c *CLI) visualizeCommand() *cobra.Command {
	var (
		format   string
		output   string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "visualize [layout.json]",
		Short: "Render a computed layout as DOT, SVG, or PNG",
		Long: `Render a computed layout as DOT, SVG, or PNG.

The visualize command takes a layout.json file (produced by 'layout') and
renders it for inspection. The layout's own coordinates are pinned in the
output, so what you see is exactly what the engine computed - Graphviz only
draws, it does not re-position.

This is a debug surface: production frontends consume layout.json directly.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case formatDOT, formatSVG, formatPNG:
			default:
				return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q: use dot, svg, or png", format)
			}
			return c.runVisualize(cmd.Context(), args[0], format, output, detailed)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatSVG, "output format: svg (default), png, dot")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.<format>)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include rank and order in node labels")

	return cmd
}

// runVisualize loads the layout and renders it in the requested format.
func (c *CLI) runVisualize(ctx context.Context, input, format, output string, detailed bool) error {
	l, err := erd.ReadLayoutFile(input)
	if err != nil {
		return fmt.Errorf("load layout %s: %w", input, err)
	}

	dot := erd.ToDOT(l, erd.DOTOptions{Detailed: detailed})

	var data []byte
	switch format {
	case formatDOT:
		data = []byte(dot)
	case formatSVG:
		spinner := newSpinnerWithContext(ctx, "Rendering SVG...")
		spinner.Start()
		data, err = erd.RenderSVG(ctx, dot)
		spinner.Stop()
	case formatPNG:
		spinner := newSpinnerWithContext(ctx, "Rendering PNG...")
		spinner.Start()
		data, err = erd.RenderPNG(ctx, dot)
		spinner.Stop()
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", format, err)
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + "." + format
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Visualization complete")
	printFile(outputPath)
	printStats(len(l.Nodes), len(l.Edges), false)

	return nil
}
