package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evoviz/evoviz/pkg/lineage"
	"github.com/evoviz/evoviz/pkg/pipeline"
)

// lineageCommand creates the lineage command for laying out the family
// tree of an evolution run.
func (c *CLI) lineageCommand() *cobra.Command {
	var (
		output      string
		formats     string
		noCache     bool
		generations int
	)
	opts := c.layoutOptions()

	cmd := &cobra.Command{
		Use:   "lineage [run.json]",
		Short: "Compute the generation-level layout of an evolution run",
		Long: `Compute the generation-level layout of an evolution run.

The lineage command takes a run document (nodes with generations, fitness and
survival state, plus derivation edges) and lays out the family tree with one
row per generation. Degraded documents that carry only edges and roots are
accepted; node identity and generations are then reconstructed from the edges.

The --generations flag forces at least that many generation rows, so sparse
early runs still show the full timeline.

When no file is given, an interactive picker lists the JSON documents in the
current directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := pickInput(args, ".")
			if err != nil {
				return err
			}
			opts.Formats = parseFormats(formats)
			opts.GenerationCount = generations
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runLineage(cmd.Context(), input, opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.<format>)")
	cmd.Flags().StringVarP(&formats, "format", "f", "", "output format(s): json (default), dot, svg, png (comma-separated)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().IntVarP(&generations, "generations", "g", 0, "minimum number of generation rows")
	cmd.Flags().Float64Var(&opts.NodeGap, "node-gap", opts.NodeGap, "gap between siblings in a generation")
	cmd.Flags().Float64Var(&opts.RankGap, "rank-gap", opts.RankGap, "gap between generations")

	return cmd
}

// runLineage loads the run document, computes the layout, and writes
// the requested formats.
func (c *CLI) runLineage(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	opts.Kind = pipeline.KindLineage

	doc, err := lineage.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load run %s: %w", input, err)
	}

	runner := c.newRunner(noCache)
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, "Computing lineage layout...")
	spinner.Start()

	out, cacheHit, err := runner.ComputeLineage(ctx, doc, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	paths, err := c.writeFormats(ctx, runner, out, opts, output, input)
	if err != nil {
		return err
	}

	printSuccess("Lineage layout complete")
	for _, p := range paths {
		printFile(p)
	}
	printStats(len(out.Nodes), len(out.Edges), cacheHit)
	return nil
}
