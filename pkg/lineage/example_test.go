package lineage_test

import (
	"fmt"

	"github.com/evoviz/evoviz/pkg/layout"
	"github.com/evoviz/evoviz/pkg/lineage"
)

func ExampleComputeLayout() {
	gen0, gen1 := 0, 1
	doc := lineage.Document{
		Nodes: []lineage.NodeDef{
			{ID: "adam", Generation: &gen0, Fitness: 1.0},
			{ID: "child_a", Generation: &gen1, Fitness: 0.8, Verdict: "survive"},
			{ID: "child_b", Generation: &gen1, Fitness: 0.2, Verdict: "kill"},
		},
		Edges: []lineage.EdgeDef{
			{Source: "adam", Target: "child_a"},
			{Source: "adam", Target: "child_b"},
		},
	}

	out := lineage.ComputeLayout(doc, 0, layout.DefaultSpacing)

	for _, row := range out.Rows {
		fmt.Printf("generation %d: %v\n", row.Rank, row.NodeIDs)
	}
	for _, n := range out.Nodes {
		fmt.Printf("%s: %s\n", n.ID, n.Data.State)
	}
	// Output:
	// generation 0: [adam]
	// generation 1: [child_a child_b]
	// adam: alive
	// child_a: alive
	// child_b: dead
}
