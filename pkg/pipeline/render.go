package pipeline

import (
	"context"

	evoerrors "github.com/evoviz/evoviz/pkg/errors"
	"github.com/evoviz/evoviz/pkg/graph"
	"github.com/evoviz/evoviz/pkg/render/nodelink"
)

// Render encodes a renderable graph in the requested format. DOT output
// uses the lineage orientation when opts.Kind is "lineage" so generations
// read left to right.
func (r *Runner) Render(ctx context.Context, g graph.Renderable, format string, opts Options) ([]byte, error) {
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}

	nlOpts := nodelink.Options{
		Detailed:    opts.Detailed,
		LeftToRight: opts.Kind == KindLineage,
	}

	switch format {
	case FormatJSON:
		data, err := graph.Marshal(g)
		if err != nil {
			return nil, evoerrors.Wrap(evoerrors.ErrCodeInternal, err, "encode layout")
		}
		return data, nil
	case FormatDOT:
		return []byte(nodelink.ToDOT(g, nlOpts)), nil
	case FormatSVG:
		data, err := nodelink.RenderSVG(nodelink.ToDOT(g, nlOpts))
		if err != nil {
			return nil, evoerrors.Wrap(evoerrors.ErrCodeInternal, err, "render svg")
		}
		return data, nil
	case FormatPNG:
		data, err := nodelink.RenderPNG(nodelink.ToDOT(g, nlOpts))
		if err != nil {
			return nil, evoerrors.Wrap(evoerrors.ErrCodeInternal, err, "render png")
		}
		return data, nil
	}
	return nil, errInvalidFormat(format)
}
