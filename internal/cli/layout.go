package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tablemap/tablemap/pkg/erd"
	"github.com/tablemap/tablemap/pkg/layout"
	"github.com/tablemap/tablemap/pkg/pipeline"
	"github.com/tablemap/tablemap/pkg/schema"
)

// layoutCommand creates the layout command for computing diagram layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output     string
		configPath string
		noCache    bool
		refresh    bool
		rankSep    float64
		nodeSep    float64
		direction  string
	)

	cmd := &cobra.Command{
		Use:   "layout [catalog.json]",
		Short: "Compute an entity-relationship layout from a schema catalog",
		Long: `Compute an entity-relationship layout from a schema catalog.

The layout command runs the full pipeline: it infers relations from the
catalog, builds the diagram graph, and computes deterministic positions for
every table. The output is a layout.json file that can be rendered with the
'visualize' command or consumed directly by a frontend.

Spacing can be configured with flags or a TOML config file; flags win when
both are given. Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := pipeline.LoadOptionsFile(configPath)
			if err != nil {
				return err
			}
			opts.Refresh = refresh
			if cmd.Flags().Changed("rank-sep") {
				opts.Layout.RankSep = rankSep
			}
			if cmd.Flags().Changed("node-sep") {
				opts.Layout.NodeSep = nodeSep
			}
			if cmd.Flags().Changed("direction") {
				opts.Layout.Direction = layout.Direction(direction)
			}
			return c.runLayout(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().StringVar(&configPath, "config", "", "TOML config file with a [layout] section")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even if a cached result exists")

	cmd.Flags().Float64Var(&rankSep, "rank-sep", layout.DefaultRankSep, "gap between adjacent ranks")
	cmd.Flags().Float64Var(&nodeSep, "node-sep", layout.DefaultNodeSep, "gap between nodes within a rank")
	cmd.Flags().StringVar(&direction, "direction", string(layout.DirectionLeftRight), "layering direction: left-right (default), top-bottom")

	return cmd
}

// runLayout loads the catalog, runs the pipeline, and writes the layout.
func (c *CLI) runLayout(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	catalog, err := schema.ReadCatalogFile(input)
	if err != nil {
		return fmt.Errorf("load catalog %s: %w", input, err)
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, "Computing layout...")
	spinner.Start()

	result, err := runner.Execute(ctx, catalog, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".layout.json"
	}

	if err := erd.WriteLayoutFile(result.Layout, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(result.Stats.NodeCount, result.Stats.EdgeCount, result.CacheHit)
	for _, d := range result.Layout.Diagnostics {
		printWarning("%s: %s", d.Code, d.Message)
	}
	printNewline()
	printNextStep("Render", "tablemap visualize "+outputPath)

	return nil
}
