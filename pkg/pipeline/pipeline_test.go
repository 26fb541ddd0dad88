package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/evoviz/evoviz/pkg/cache"
	"github.com/evoviz/evoviz/pkg/layout"
	"github.com/evoviz/evoviz/pkg/lineage"
	"github.com/evoviz/evoviz/pkg/strategy"
)

func TestOptionsSpacing(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want layout.Spacing
	}{
		{
			name: "Defaults",
			opts: Options{},
			want: layout.DefaultSpacing,
		},
		{
			name: "NodeGapOverride",
			opts: Options{NodeGap: 90},
			want: layout.Spacing{NodeGap: 90, RankGap: layout.DefaultSpacing.RankGap},
		},
		{
			name: "BothOverridden",
			opts: Options{NodeGap: 90, RankGap: 70},
			want: layout.Spacing{NodeGap: 90, RankGap: 70},
		},
		{
			name: "NegativeIgnored",
			opts: Options{NodeGap: -5, RankGap: -5},
			want: layout.DefaultSpacing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.opts.Spacing(); got != tt.want {
				t.Errorf("Spacing() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestOptionsSetDefaults(t *testing.T) {
	var opts Options
	opts.SetDefaults()

	if opts.Kind != KindStrategy {
		t.Errorf("Kind = %q, want %q", opts.Kind, KindStrategy)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatJSON {
		t.Errorf("Formats = %v, want [json]", opts.Formats)
	}
	if opts.Logger == nil {
		t.Error("Logger = nil, want discard logger")
	}
}

func TestValidateKind(t *testing.T) {
	if err := ValidateKind(KindStrategy); err != nil {
		t.Errorf("ValidateKind(strategy) = %v", err)
	}
	if err := ValidateKind(KindLineage); err != nil {
		t.Errorf("ValidateKind(lineage) = %v", err)
	}
	if err := ValidateKind("towers"); err == nil {
		t.Error("ValidateKind(towers) = nil, want error")
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{FormatJSON, FormatDOT, FormatSVG, FormatPNG}); err != nil {
		t.Errorf("valid formats rejected: %v", err)
	}
	if err := ValidateFormats([]string{FormatJSON, "gif"}); err == nil {
		t.Error("invalid format accepted")
	}
}

func strategyDoc() strategy.Document {
	return strategy.Document{Nodes: []strategy.NodeDef{
		{ID: "feed", Type: "MarketData"},
		{ID: "sma", Type: "SMA", Inputs: map[string]any{"source": "feed.candles"}},
	}}
}

func TestRunnerMemoizesStrategy(t *testing.T) {
	c, err := cache.NewMemoryCache(16)
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(c, nil)
	defer r.Close()
	ctx := context.Background()

	out1, hit1, err := r.ComputeStrategy(ctx, strategyDoc(), Options{})
	if err != nil {
		t.Fatalf("first compute: %v", err)
	}
	if hit1 {
		t.Error("first compute reported a cache hit")
	}

	out2, hit2, err := r.ComputeStrategy(ctx, strategyDoc(), Options{})
	if err != nil {
		t.Fatalf("second compute: %v", err)
	}
	if !hit2 {
		t.Error("second compute missed the cache")
	}
	if len(out1.Nodes) != len(out2.Nodes) || len(out1.Edges) != len(out2.Edges) {
		t.Error("cached result differs from computed result")
	}
}

func TestRunnerOptionsChangeKey(t *testing.T) {
	c, err := cache.NewMemoryCache(16)
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(c, nil)
	defer r.Close()
	ctx := context.Background()

	if _, _, err := r.ComputeStrategy(ctx, strategyDoc(), Options{}); err != nil {
		t.Fatal(err)
	}
	_, hit, err := r.ComputeStrategy(ctx, strategyDoc(), Options{NodeGap: 42})
	if err != nil {
		t.Fatal(err)
	}
	if hit {
		t.Error("different spacing hit the old cache entry")
	}
}

func TestRunnerNilCacheNeverHits(t *testing.T) {
	r := NewRunner(nil, nil)
	defer r.Close()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, hit, err := r.ComputeStrategy(ctx, strategyDoc(), Options{})
		if err != nil {
			t.Fatal(err)
		}
		if hit {
			t.Fatalf("run %d: hit with null cache", i)
		}
	}
}

func TestRunnerComputeLineage(t *testing.T) {
	r := NewRunner(nil, nil)
	defer r.Close()

	gen0 := 0
	doc := lineage.Document{Nodes: []lineage.NodeDef{{ID: "adam", Generation: &gen0}}}

	out, _, err := r.ComputeLineage(context.Background(), doc, Options{GenerationCount: 4})
	if err != nil {
		t.Fatalf("ComputeLineage: %v", err)
	}
	if len(out.Rows) != 4 {
		t.Errorf("rows = %d, want 4", len(out.Rows))
	}
}

func TestRenderJSON(t *testing.T) {
	r := NewRunner(nil, nil)
	defer r.Close()
	ctx := context.Background()

	out, _, err := r.ComputeStrategy(ctx, strategyDoc(), Options{})
	if err != nil {
		t.Fatal(err)
	}

	data, err := r.Render(ctx, out, FormatJSON, Options{Kind: KindStrategy})
	if err != nil {
		t.Fatalf("Render(json): %v", err)
	}
	if !strings.Contains(string(data), `"feed"`) {
		t.Error("JSON output missing node ID")
	}
}

func TestRenderDOT(t *testing.T) {
	r := NewRunner(nil, nil)
	defer r.Close()
	ctx := context.Background()

	out, _, err := r.ComputeStrategy(ctx, strategyDoc(), Options{})
	if err != nil {
		t.Fatal(err)
	}

	data, err := r.Render(ctx, out, FormatDOT, Options{Kind: KindStrategy})
	if err != nil {
		t.Fatalf("Render(dot): %v", err)
	}
	if !strings.HasPrefix(string(data), "digraph") {
		t.Errorf("DOT output starts with %q", string(data[:20]))
	}
}

func TestRenderInvalidFormat(t *testing.T) {
	r := NewRunner(nil, nil)
	defer r.Close()

	if _, err := r.Render(context.Background(), strategy.ComputeDAG(strategyDoc(), layout.DefaultSpacing), "gif", Options{}); err == nil {
		t.Fatal("Render(gif) = nil error")
	}
}
