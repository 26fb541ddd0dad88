package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/evoviz/evoviz/pkg/graph"
	"github.com/evoviz/evoviz/pkg/pipeline"
	"github.com/evoviz/evoviz/pkg/strategy"
)

// strategyCommand creates the strategy command for laying out a single
// strategy's computation graph.
func (c *CLI) strategyCommand() *cobra.Command {
	var (
		output   string
		formats  string
		noCache  bool
		detailed bool
	)
	opts := c.layoutOptions()

	cmd := &cobra.Command{
		Use:   "strategy [strategy.json]",
		Short: "Compute the node-level layout of a strategy",
		Long: `Compute the node-level layout of a strategy.

The strategy command takes a strategy document (the JSON export of a single
evolved strategy) and computes the layered layout of its computation graph:
data feeds at the top, signals at the bottom, edges following the dataflow.

When no file is given, an interactive picker lists the JSON documents in the
current directory.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := pickInput(args, ".")
			if err != nil {
				return err
			}
			opts.Formats = parseFormats(formats)
			opts.Detailed = detailed
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runStrategy(cmd.Context(), input, opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.<format>)")
	cmd.Flags().StringVarP(&formats, "format", "f", "", "output format(s): json (default), dot, svg, png (comma-separated)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include params and outputs in DOT labels")
	cmd.Flags().Float64Var(&opts.NodeGap, "node-gap", opts.NodeGap, "gap between siblings in a row")
	cmd.Flags().Float64Var(&opts.RankGap, "rank-gap", opts.RankGap, "gap between rows")

	return cmd
}

// runStrategy loads the document, computes the layout, and writes the
// requested formats.
func (c *CLI) runStrategy(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	opts.Kind = pipeline.KindStrategy

	doc, err := strategy.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load strategy %s: %w", input, err)
	}

	runner := c.newRunner(noCache)
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, "Computing strategy layout...")
	spinner.Start()

	out, cacheHit, err := runner.ComputeStrategy(ctx, doc, opts)
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

	printSuccess("Strategy layout complete")
	for _, p := range paths {
		printFile(p)
	}
	printStats(len(out.Nodes), len(out.Edges), cacheHit)
	return nil
}

// writeFormats renders the layout to each requested format and writes
// the resulting files.
func (c *CLI) writeFormats(ctx context.Context, runner *pipeline.Runner, out graph.Renderable, opts pipeline.Options, output, input string) ([]string, error) {
	paths := make([]string, 0, len(opts.Formats))
	for i, format := range opts.Formats {
		data, err := runner.Render(ctx, out, format, opts)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		path := outputPath(output, input, format, i == 0 && len(opts.Formats) == 1)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, fmt.Errorf("write output %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
