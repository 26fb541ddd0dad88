package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evoviz/evoviz/pkg/graph"
	"github.com/evoviz/evoviz/pkg/pipeline"
)

// renderCommand creates the render command for turning a computed
// layout into an image.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output   string
		formats  string
		kind     string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "render [layout.json]",
		Short: "Render a computed layout to DOT, SVG, or PNG",
		Long: `Render a computed layout to DOT, SVG, or PNG.

The render command takes a layout.json file (produced by 'strategy' or
'lineage' with -f json) and renders it without recomputing the layout. The
--kind flag controls orientation: lineage layouts render left to right.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := pipeline.ValidateKind(kind); err != nil {
				return err
			}
			fs := parseFormats(formats)
			if err := pipeline.ValidateFormats(fs); err != nil {
				return err
			}
			opts := pipeline.Options{
				Kind:     kind,
				Formats:  fs,
				Detailed: detailed,
				Logger:   c.Logger,
			}
			return c.runRender(cmd.Context(), args[0], opts, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.<format>)")
	cmd.Flags().StringVarP(&formats, "format", "f", "svg", "output format(s): json, dot, svg, png (comma-separated)")
	cmd.Flags().StringVarP(&kind, "kind", "k", pipeline.KindStrategy, "layout kind: strategy or lineage")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include params and outputs in DOT labels")

	return cmd
}

// runRender loads the layout and writes each requested format.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string) error {
	layout, err := graph.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load layout %s: %w", input, err)
	}
	c.Logger.Debug("layout loaded", "nodes", len(layout.Nodes), "edges", len(layout.Edges))

	runner := c.newRunner(true)
	defer runner.Close()

	paths, err := c.writeFormats(ctx, runner, layout, opts, output, input)
	if err != nil {
		return err
	}

	printSuccess("Render complete")
	for _, p := range paths {
		printFile(p)
	}
	return nil
}
