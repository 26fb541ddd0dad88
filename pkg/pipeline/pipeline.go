// Package pipeline provides the compute → memoize → render pipeline
// shared by the CLI and the HTTP API. By centralizing this logic, both
// entry points get identical caching and rendering behavior.
//
// # Architecture
//
// The pipeline has two stages:
//
//  1. Compute: run the pure layout engine on a document, memoized by a
//     stable hash of the document bytes and layout options
//  2. Render: encode the renderable graph as JSON, DOT, SVG or PNG
//
// The layout engine itself is pure and cache-free; memoization lives
// here, keyed so that byte-identical input never recomputes.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, logger)
//	opts := pipeline.Options{Kind: pipeline.KindStrategy}
//	result, err := runner.ComputeStrategy(ctx, doc, opts)
package pipeline

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/evoviz/evoviz/pkg/layout"
)

// Document kinds accepted by the pipeline.
const (
	KindStrategy = "strategy"
	KindLineage  = "lineage"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatPNG  = "png"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON: true,
	FormatDOT:  true,
	FormatSVG:  true,
	FormatPNG:  true,
}

// ValidKinds is the set of supported document kinds.
var ValidKinds = map[string]bool{
	KindStrategy: true,
	KindLineage:  true,
}

// Options contains all configuration for a pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Kind selects the document family: "strategy" or "lineage".
	Kind string `json:"kind,omitempty"`

	// GenerationCount forces that many generation rows into lineage
	// output (ignored for strategy documents).
	GenerationCount int `json:"generation_count,omitempty"`

	// Grid spacing; zero values fall back to the engine defaults.
	NodeGap float64 `json:"node_gap,omitempty"`
	RankGap float64 `json:"rank_gap,omitempty"`

	// Render options
	Formats  []string `json:"formats,omitempty"`
	Detailed bool     `json:"detailed,omitempty"` // verbose DOT labels

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// Spacing resolves the grid spacing from the options, falling back to
// the engine defaults for unset values.
func (o *Options) Spacing() layout.Spacing {
	sp := layout.DefaultSpacing
	if o.NodeGap > 0 {
		sp.NodeGap = o.NodeGap
	}
	if o.RankGap > 0 {
		sp.RankGap = o.RankGap
	}
	return sp
}

// SetDefaults applies defaults for unset fields. Idempotent.
func (o *Options) SetDefaults() {
	if o.Kind == "" {
		o.Kind = KindStrategy
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatJSON}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateKind checks that a document kind is valid.
func ValidateKind(kind string) error {
	if !ValidKinds[kind] {
		return errInvalidKind(kind)
	}
	return nil
}

// ValidateFormat checks that an output format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errInvalidFormat(format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}
