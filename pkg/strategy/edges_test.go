package strategy

import (
	"slices"
	"testing"
)

func edgeIDs(nodes []NodeDef) []string {
	edges := BuildEdges(nodes)
	ids := make([]string, len(edges))
	for i, e := range edges {
		ids[i] = e.ID
	}
	return ids
}

func TestBuildEdges(t *testing.T) {
	tests := []struct {
		name  string
		nodes []NodeDef
		want  []string
	}{
		{
			name: "SimplePipeline",
			nodes: []NodeDef{
				{ID: "market_data", Outputs: []string{"candles"}},
				{ID: "sma", Inputs: map[string]any{"source": "market_data.candles"}},
			},
			want: []string{"market_data.candles->sma:source"},
		},
		{
			name: "DanglingProducerSkipped",
			nodes: []NodeDef{
				{ID: "sma", Inputs: map[string]any{"source": "ghost.candles"}},
			},
			want: nil,
		},
		{
			name: "MalformedRefSkipped",
			nodes: []NodeDef{
				{ID: "a"},
				{ID: "b", Inputs: map[string]any{
					"x": "nodot",
					"y": 7,
					"z": "a.out",
				}},
			},
			want: []string{"a.out->b:z"},
		},
		{
			name: "ArrayValuedSlot",
			nodes: []NodeDef{
				{ID: "fast"},
				{ID: "slow"},
				{ID: "cross", Inputs: map[string]any{
					"series": []any{"fast.values", "slow.values"},
				}},
			},
			want: []string{
				"fast.values->cross:series",
				"slow.values->cross:series",
			},
		},
		{
			name: "StringSliceSlot",
			nodes: []NodeDef{
				{ID: "a"},
				{ID: "b", Inputs: map[string]any{"in": []string{"a.x", "a.y"}}},
			},
			want: []string{"a.x->b:in", "a.y->b:in"},
		},
		{
			name: "DuplicateCompositeDeduped",
			nodes: []NodeDef{
				{ID: "a"},
				{ID: "b", Inputs: map[string]any{
					"in": []any{"a.out", "a.out", "a.out"},
				}},
			},
			want: []string{"a.out->b:in"},
		},
		{
			name: "SameRefDifferentSlotsKept",
			nodes: []NodeDef{
				{ID: "a"},
				{ID: "b", Inputs: map[string]any{
					"first":  "a.out",
					"second": "a.out",
				}},
			},
			want: []string{"a.out->b:first", "a.out->b:second"},
		},
		{
			name: "SlotsVisitedInSortedOrder",
			nodes: []NodeDef{
				{ID: "a"},
				{ID: "b", Inputs: map[string]any{
					"zz": "a.one",
					"aa": "a.two",
				}},
			},
			want: []string{"a.two->b:aa", "a.one->b:zz"},
		},
		{
			name: "SelfReferenceKept",
			nodes: []NodeDef{
				{ID: "loop", Inputs: map[string]any{"prev": "loop.state"}},
			},
			want: []string{"loop.state->loop:prev"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := edgeIDs(tt.nodes)
			if !slices.Equal(got, tt.want) {
				t.Errorf("BuildEdges = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildEdgesDeterministic(t *testing.T) {
	nodes := []NodeDef{
		{ID: "feed"},
		{ID: "f1", Inputs: map[string]any{"b": "feed.candles", "a": "feed.volume"}},
		{ID: "f2", Inputs: map[string]any{"in": []any{"f1.out", "feed.candles"}}},
	}

	first := edgeIDs(nodes)
	for i := 0; i < 20; i++ {
		if got := edgeIDs(nodes); !slices.Equal(got, first) {
			t.Fatalf("run %d: %v, want %v", i, got, first)
		}
	}
}

func TestEdgeID(t *testing.T) {
	got := EdgeID("sma", "values", "signal", "series")
	want := "sma.values->signal:series"
	if got != want {
		t.Errorf("EdgeID = %q, want %q", got, want)
	}
}
