package lineage

import (
	"bytes"
	"slices"
	"testing"

	"github.com/evoviz/evoviz/pkg/graph"
	"github.com/evoviz/evoviz/pkg/layout"
)

func TestComputeLayoutEmptyDocument(t *testing.T) {
	out := ComputeLayout(Document{}, 0, layout.DefaultSpacing)

	if out.Nodes == nil || len(out.Nodes) != 0 {
		t.Errorf("Nodes = %v, want empty non-nil slice", out.Nodes)
	}
	if out.Edges == nil || len(out.Edges) != 0 {
		t.Errorf("Edges = %v, want empty non-nil slice", out.Edges)
	}
}

func TestComputeLayoutGenerationMarkerRows(t *testing.T) {
	// One node at generation 0 with a forced count of 5: the output must
	// carry five rows, four of them empty markers.
	doc := Document{Nodes: []NodeDef{{ID: "adam", Generation: intp(0)}}}

	out := ComputeLayout(doc, 5, layout.DefaultSpacing)

	if len(out.Rows) != 5 {
		t.Fatalf("rows = %d, want 5", len(out.Rows))
	}
	if got := out.Rows[0].NodeIDs; len(got) != 1 || got[0] != "adam" {
		t.Errorf("row 0 = %v, want [adam]", got)
	}
	for i := 1; i < 5; i++ {
		if len(out.Rows[i].NodeIDs) != 0 {
			t.Errorf("row %d = %v, want empty marker", i, out.Rows[i].NodeIDs)
		}
		if out.Rows[i].Rank != i {
			t.Errorf("row %d rank = %d", i, out.Rows[i].Rank)
		}
	}
	// Marker rows still carry their axis offset.
	if got := out.Rows[3].Offset; got != 3*layout.DefaultSpacing.RankGap {
		t.Errorf("row 3 offset = %v", got)
	}
}

func TestComputeLayoutDegradedShape(t *testing.T) {
	// Only edges and roots: the node set is synthesized from endpoints
	// in first-seen order.
	doc := Document{
		Edges: []EdgeDef{
			{Source: "gen0_adam", Target: "gen1_child_a"},
			{Source: "gen0_adam", Target: "gen1_child_b"},
		},
		Roots: []string{"gen0_adam", "gen0_eve"},
	}

	out := ComputeLayout(doc, 0, layout.DefaultSpacing)

	if len(out.Nodes) != 4 {
		t.Fatalf("nodes = %d, want 4", len(out.Nodes))
	}
	if len(out.Edges) != 2 {
		t.Fatalf("edges = %d, want 2", len(out.Edges))
	}

	// Generations inferred from IDs.
	gens := map[string]int{}
	for _, n := range out.Nodes {
		gens[n.ID] = n.Data.Rank
	}
	want := map[string]int{"gen0_adam": 0, "gen0_eve": 0, "gen1_child_a": 1, "gen1_child_b": 1}
	for id, g := range want {
		if gens[id] != g {
			t.Errorf("generation(%s) = %d, want %d", id, gens[id], g)
		}
	}
}

func TestComputeLayoutParentChildSpelling(t *testing.T) {
	doc := Document{
		Nodes: []NodeDef{
			{ID: "p", Generation: intp(0)},
			{ID: "c", Generation: intp(1)},
		},
		Edges: []EdgeDef{{Parent: "p", Child: "c"}},
	}

	out := ComputeLayout(doc, 0, layout.DefaultSpacing)
	if len(out.Edges) != 1 || out.Edges[0].ID != "p->c" {
		t.Fatalf("edges = %v, want [p->c]", out.Edges)
	}
}

func TestComputeLayoutParentPointerAndDedup(t *testing.T) {
	// The same derivation appears both as an edge and as a ParentID
	// pointer; only one edge survives.
	doc := Document{
		Nodes: []NodeDef{
			{ID: "p", Generation: intp(0)},
			{ID: "c", Generation: intp(1), ParentID: "p"},
			{ID: "orphan", Generation: intp(1), ParentID: "ghost"},
		},
		Edges: []EdgeDef{{Source: "p", Target: "c"}},
	}

	out := ComputeLayout(doc, 0, layout.DefaultSpacing)
	if len(out.Edges) != 1 {
		t.Fatalf("edges = %d, want 1 (deduplicated, dangling dropped)", len(out.Edges))
	}
}

func TestComputeLayoutSiblingOrderByFitness(t *testing.T) {
	doc := Document{Nodes: []NodeDef{
		{ID: "weak", Generation: intp(0), Fitness: 0.1},
		{ID: "strong", Generation: intp(0), Fitness: 0.9},
		{ID: "tied_b", Generation: intp(0), Fitness: 0.5},
		{ID: "tied_a", Generation: intp(0), Fitness: 0.5},
	}}

	out := ComputeLayout(doc, 0, layout.DefaultSpacing)
	want := []string{"strong", "tied_a", "tied_b", "weak"}
	if !slices.Equal(out.Rows[0].NodeIDs, want) {
		t.Errorf("row 0 = %v, want %v", out.Rows[0].NodeIDs, want)
	}
}

func TestComputeLayoutStates(t *testing.T) {
	doc := Document{Nodes: []NodeDef{
		{ID: "a", Verdict: "survive"},
		{ID: "b", Verdict: "kill"},
		{ID: "c", State: "elite"},
		{ID: "d"},
	}}

	out := ComputeLayout(doc, 0, layout.DefaultSpacing)
	states := map[string]string{}
	for _, n := range out.Nodes {
		states[n.ID] = n.Data.State
	}
	want := map[string]string{"a": "alive", "b": "dead", "c": "elite", "d": "alive"}
	for id, s := range want {
		if states[id] != s {
			t.Errorf("state(%s) = %q, want %q", id, states[id], s)
		}
	}
}

func TestComputeLayoutHorizontalAxis(t *testing.T) {
	doc := Document{Nodes: []NodeDef{
		{ID: "g0", Generation: intp(0)},
		{ID: "g1", Generation: intp(1)},
	}}
	sp := layout.Spacing{NodeGap: 10, RankGap: 200}

	out := ComputeLayout(doc, 0, sp)
	pos := map[string]layout.Point{}
	for _, n := range out.Nodes {
		pos[n.ID] = n.Position
	}
	// Generations advance along X.
	if pos["g0"].X != 0 || pos["g1"].X != 200 {
		t.Errorf("positions = %v, want X 0 and 200", pos)
	}
}

func TestComputeLayoutByteIdentical(t *testing.T) {
	doc := Document{
		Nodes: []NodeDef{
			{ID: "gen0_adam", Fitness: 1.2, Verdict: "survive"},
			{ID: "gen1_a", Fitness: 0.4, Verdict: "kill"},
			{ID: "gen1_b", Fitness: 2.0, State: "elite"},
		},
		Edges: []EdgeDef{
			{Source: "gen0_adam", Target: "gen1_a"},
			{Source: "gen0_adam", Target: "gen1_b"},
		},
	}

	first, err := graph.Marshal(ComputeLayout(doc, 3, layout.DefaultSpacing))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := graph.Marshal(ComputeLayout(doc, 3, layout.DefaultSpacing))
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if !bytes.Equal(first, again) {
			t.Fatalf("run %d produced different bytes", i)
		}
	}
}
