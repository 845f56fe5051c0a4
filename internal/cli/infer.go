package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tablemap/tablemap/pkg/infer"
	"github.com/tablemap/tablemap/pkg/schema"
)

// inferCommand creates the infer command for relation discovery.
func (c *CLI) inferCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "infer [catalog.json]",
		Short: "Infer table relations from column naming conventions",
		Long: `Infer table relations from column naming conventions.

The infer command reads a catalog.json file describing tables and their
columns, and discovers likely relations: shared identifying columns (uuid,
sku, email, ...) and foreign-key naming patterns such as customer_id or
fk_customer. The output is a relations.json file.

No database access happens; the heuristics work on names alone, so the
result is a suggestion for review, not a constraint extraction.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInfer(cmd.Context(), args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

// runInfer loads the catalog, runs inference, and writes the relations.
func (c *CLI) runInfer(ctx context.Context, input, output string) error {
	logger := loggerFromContext(ctx)

	catalog, err := schema.ReadCatalogFile(input)
	if err != nil {
		return fmt.Errorf("load catalog %s: %w", input, err)
	}

	p := newProgress(logger)
	relations := infer.New().Infer(catalog.Tables)
	p.done(fmt.Sprintf("Inferred %d relations from %d tables", len(relations), len(catalog.Tables)))

	data, err := json.MarshalIndent(relations, "", "  ")
	if err != nil {
		return fmt.Errorf("encode relations: %w", err)
	}
	data = append(data, '\n')

	if output == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("write output %s: %w", output, err)
	}

	printSuccess("Inference complete")
	printFile(output)
	printStats(len(catalog.Tables), len(relations), false)
	printNewline()
	printNextStep("Layout", "tablemap layout "+input)

	return nil
}
