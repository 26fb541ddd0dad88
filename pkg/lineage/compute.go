package lineage

import (
	"fmt"
	"slices"

	"github.com/evoviz/evoviz/pkg/dag"
	"github.com/evoviz/evoviz/pkg/graph"
	"github.com/evoviz/evoviz/pkg/layout"
)

// profile implements layout.Profile for lineage graphs: siblings order by
// descending fitness then ascending ID, and generations advance left to
// right.
type profile struct {
	fitness map[string]float64
}

func (p profile) Less(a, b string) bool {
	fa, fb := p.fitness[a], p.fitness[b]
	if fa != fb {
		return fa > fb
	}
	return a < b
}

func (profile) Axis() layout.Axis { return layout.AxisHorizontal }

// ComputeLayout transforms a lineage document into a positioned
// renderable graph. generationCount, when positive, forces that many
// generation rows into the output even if the trailing ones are empty, so
// a caller can consistently render "generation N has 0 members". A
// document with no nodes and no edges yields an empty graph.
//
// The function is pure and deterministic; partial or malformed data
// degrades by omission.
func ComputeLayout(doc Document, generationCount int, sp layout.Spacing) graph.Renderable {
	defs := normalizeNodes(doc)
	if len(defs) == 0 {
		return graph.Renderable{Nodes: []graph.Node{}, Edges: []graph.Edge{}}
	}

	g := dag.New()
	byID := make(map[string]NodeDef, len(defs))
	for _, def := range defs {
		if err := g.AddNode(dag.Node{ID: def.ID}); err != nil {
			continue
		}
		byID[def.ID] = def
	}

	edges := buildEdges(doc, defs, g)
	for _, e := range edges {
		_ = g.AddEdge(e)
	}

	// Ranks come from the data, not from relaxation: generations are
	// discrete and known (or inferable) per individual.
	hints := edgeHints(doc.Edges)
	ranks := make(map[string]int, len(defs))
	fitness := make(map[string]float64, len(defs))
	for _, def := range defs {
		ranks[def.ID] = resolveGeneration(def, hints)
		fitness[def.ID] = def.Fitness
	}
	g.SetRanks(ranks)

	res := layout.Build(g, profile{fitness: fitness}, sp)

	return assemble(g, res, sp, byID, edges, generationCount)
}

// normalizeNodes returns the document's usable node definitions. With
// explicit nodes, entries without an ID are dropped and the first of any
// duplicate wins. Without explicit nodes the set is synthesized from the
// union of edge endpoints and declared roots, in first-seen order, with
// all defaults (generation inferred or 0, fitness 0, state alive).
func normalizeNodes(doc Document) []NodeDef {
	if len(doc.Nodes) > 0 {
		out := make([]NodeDef, 0, len(doc.Nodes))
		seen := make(map[string]struct{}, len(doc.Nodes))
		for _, n := range doc.Nodes {
			if n.ID == "" {
				continue
			}
			if _, dup := seen[n.ID]; dup {
				continue
			}
			seen[n.ID] = struct{}{}
			out = append(out, n)
		}
		return out
	}

	var out []NodeDef
	seen := make(map[string]struct{})
	add := func(id string) {
		if id == "" {
			return
		}
		if _, dup := seen[id]; dup {
			return
		}
		seen[id] = struct{}{}
		out = append(out, NodeDef{ID: id})
	}
	for _, e := range doc.Edges {
		parent, child := e.endpoints()
		add(parent)
		add(child)
	}
	for _, root := range doc.Roots {
		add(root)
	}
	return out
}

// buildEdges collects derivation edges from the edge list and from
// backward parent pointers, deduplicated on the (parent, child) pair.
// Edges with a missing or unknown endpoint are dropped.
func buildEdges(doc Document, defs []NodeDef, g *dag.DAG) []dag.Edge {
	var edges []dag.Edge
	seen := make(map[string]struct{})

	add := func(parent, child string) {
		if parent == "" || child == "" || !g.Has(parent) || !g.Has(child) {
			return
		}
		id := EdgeID(parent, child)
		if _, dup := seen[id]; dup {
			return
		}
		seen[id] = struct{}{}
		edges = append(edges, dag.Edge{ID: id, From: parent, To: child})
	}

	for _, e := range doc.Edges {
		parent, child := e.endpoints()
		add(parent, child)
	}
	for _, def := range defs {
		add(def.ParentID, def.ID)
	}
	return edges
}

// EdgeID derives the deterministic identifier for a derivation edge.
func EdgeID(parent, child string) string {
	return fmt.Sprintf("%s->%s", parent, child)
}

func assemble(g *dag.DAG, res layout.Result, sp layout.Spacing, byID map[string]NodeDef, edges []dag.Edge, generationCount int) graph.Renderable {
	maxRank := g.MaxRank()
	if generationCount > maxRank+1 {
		maxRank = generationCount - 1
	}

	out := graph.Renderable{
		Nodes: make([]graph.Node, 0, g.NodeCount()),
		Edges: make([]graph.Edge, 0, len(edges)),
		Rows:  make([]graph.Row, 0, maxRank+1),
	}

	// Every generation up to the maximum gets a row, occupied or not;
	// empty rows act as markers for the caller.
	for rank := 0; rank <= maxRank; rank++ {
		ids := res.Rows[rank]
		out.Rows = append(out.Rows, graph.Row{
			Rank:    rank,
			Offset:  layout.RowOffset(rank, sp),
			NodeIDs: slices.Clone(ids),
		})
		for _, id := range ids {
			def := byID[id]
			out.Nodes = append(out.Nodes, graph.Node{
				ID:       id,
				Position: res.Positions[id],
				Data: graph.NodeData{
					Label:   id,
					Rank:    rank,
					Fitness: def.Fitness,
					State:   ClassifyState(def.State, def.Verdict),
				},
			})
		}
	}

	for _, e := range edges {
		out.Edges = append(out.Edges, graph.Edge{
			ID:     e.ID,
			Source: e.From,
			Target: e.To,
		})
	}

	return out
}
