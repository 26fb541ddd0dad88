package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/evoviz/evoviz/pkg/cache"
	evoerrors "github.com/evoviz/evoviz/pkg/errors"
	"github.com/evoviz/evoviz/pkg/graph"
	"github.com/evoviz/evoviz/pkg/lineage"
	"github.com/evoviz/evoviz/pkg/observability"
	"github.com/evoviz/evoviz/pkg/strategy"
)

// layoutTTL bounds how long cached layouts live in backends that honor
// TTLs. Entries are content-addressed so they never go stale; the TTL
// only caps storage growth.
const layoutTTL = 7 * 24 * time.Hour

// Runner executes the pipeline with a shared cache and logger.
type Runner struct {
	cache  cache.Cache
	logger *log.Logger
}

// NewRunner creates a pipeline runner. A nil cache disables memoization;
// a nil logger discards output.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{cache: c, logger: logger}
}

// Close releases the runner's cache.
func (r *Runner) Close() error { return r.cache.Close() }

// ComputeStrategy computes the layout for a strategy document, memoized
// on the document bytes and layout options. The second return reports a
// cache hit.
func (r *Runner) ComputeStrategy(ctx context.Context, doc strategy.Document, opts Options) (graph.Renderable, bool, error) {
	opts.Kind = KindStrategy
	return r.compute(ctx, doc, opts, func() graph.Renderable {
		return strategy.ComputeDAG(doc, opts.Spacing())
	})
}

// ComputeLineage computes the layout for a lineage document, memoized on
// the document bytes and layout options.
func (r *Runner) ComputeLineage(ctx context.Context, doc lineage.Document, opts Options) (graph.Renderable, bool, error) {
	opts.Kind = KindLineage
	return r.compute(ctx, doc, opts, func() graph.Renderable {
		return lineage.ComputeLayout(doc, opts.GenerationCount, opts.Spacing())
	})
}

// compute looks the layout up in the cache and falls back to fn. Cache
// failures are logged and degrade to recomputation - a broken cache
// backend must never fail a layout request.
func (r *Runner) compute(ctx context.Context, doc any, opts Options, fn func() graph.Renderable) (graph.Renderable, bool, error) {
	key, err := r.layoutKey(doc, opts)
	if err != nil {
		return graph.Renderable{}, false, err
	}

	if data, ok, cerr := r.cache.Get(ctx, key); cerr != nil {
		r.logger.Warn("layout cache get failed", "err", cerr)
	} else if ok {
		var out graph.Renderable
		if err := json.Unmarshal(data, &out); err == nil {
			observability.Cache().OnCacheHit(ctx, "layout")
			return out, true, nil
		}
		// Corrupt entry: drop it and recompute.
		_ = r.cache.Delete(ctx, key)
	}
	observability.Cache().OnCacheMiss(ctx, "layout")

	nodeCount := 0
	switch d := doc.(type) {
	case strategy.Document:
		nodeCount = len(d.Nodes)
	case lineage.Document:
		nodeCount = len(d.Nodes)
	}
	observability.Layout().OnLayoutStart(ctx, opts.Kind, nodeCount)
	start := time.Now()
	out := fn()
	observability.Layout().OnLayoutComplete(ctx, opts.Kind, time.Since(start), nil)

	r.logger.Debug("layout computed",
		"kind", opts.Kind,
		"nodes", len(out.Nodes),
		"edges", len(out.Edges),
		"elapsed", time.Since(start).Round(time.Millisecond),
	)

	if data, err := graph.Marshal(out); err == nil {
		if cerr := r.cache.Set(ctx, key, data, layoutTTL); cerr != nil {
			r.logger.Warn("layout cache set failed", "err", cerr)
		}
	}
	return out, false, nil
}

// layoutKey derives the memoization key: a stable hash of the canonical
// document encoding plus the layout options. encoding/json sorts map
// keys, so byte-identical documents always hash the same.
func (r *Runner) layoutKey(doc any, opts Options) (string, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return "", evoerrors.Wrap(evoerrors.ErrCodeInvalidDocument, err, "encode document")
	}
	return cache.LayoutKey(cache.Hash(data), cache.LayoutKeyOpts{
		Kind:            opts.Kind,
		GenerationCount: opts.GenerationCount,
		NodeGap:         opts.Spacing().NodeGap,
		RankGap:         opts.Spacing().RankGap,
	}), nil
}

func errInvalidKind(kind string) error {
	return evoerrors.New(evoerrors.ErrCodeInvalidKind, "invalid kind: %q (must be one of: strategy, lineage)", kind)
}

func errInvalidFormat(format string) error {
	return evoerrors.New(evoerrors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)", format, fmt.Sprintf("%s, %s, %s, %s", FormatJSON, FormatDOT, FormatSVG, FormatPNG))
}
