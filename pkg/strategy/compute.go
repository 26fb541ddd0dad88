package strategy

import (
	"maps"
	"slices"

	"github.com/evoviz/evoviz/pkg/dag"
	"github.com/evoviz/evoviz/pkg/dag/transform"
	"github.com/evoviz/evoviz/pkg/graph"
	"github.com/evoviz/evoviz/pkg/layout"
)

// profile implements layout.Profile for strategy pipelines: siblings
// order by ascending node ID (there is no fitness concept here) and ranks
// flow top to bottom.
type profile struct{}

func (profile) Less(a, b string) bool { return a < b }
func (profile) Axis() layout.Axis     { return layout.AxisVertical }

// ComputeDAG transforms a strategy document into a positioned renderable
// graph using the given grid spacing. It is pure and deterministic:
// identical input yields byte-identical marshaled output, and malformed
// or partial data degrades by omission rather than failing. An empty
// document yields an empty graph.
func ComputeDAG(doc Document, sp layout.Spacing) graph.Renderable {
	defs := doc.sanitize()
	if len(defs) == 0 {
		return graph.Renderable{Nodes: []graph.Node{}, Edges: []graph.Edge{}}
	}

	g := dag.New()
	byID := make(map[string]NodeDef, len(defs))
	for _, def := range defs {
		if err := g.AddNode(dag.Node{ID: def.ID}); err != nil {
			continue // unreachable after sanitize, kept for safety
		}
		byID[def.ID] = def
	}

	edges := BuildEdges(defs)
	for _, e := range edges {
		_ = g.AddEdge(e) // endpoints are known by construction
	}

	transform.AssignLevels(g)
	res := layout.Build(g, profile{}, sp)

	return assemble(g, res, sp, byID, edges)
}

func assemble(g *dag.DAG, res layout.Result, sp layout.Spacing, byID map[string]NodeDef, edges []dag.Edge) graph.Renderable {
	out := graph.Renderable{
		Nodes: make([]graph.Node, 0, g.NodeCount()),
		Edges: make([]graph.Edge, 0, len(edges)),
		Rows:  make([]graph.Row, 0, len(res.Rows)),
	}

	for _, rank := range slices.Sorted(maps.Keys(res.Rows)) {
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
					Kind:    KindOf(def.Type),
					Rank:    rank,
					Params:  sortedParams(def.Params),
					Outputs: slices.Clone(def.Outputs),
				},
			})
		}
	}

	for _, e := range edges {
		out.Edges = append(out.Edges, graph.Edge{
			ID:     e.ID,
			Source: e.From,
			Target: e.To,
			Label:  e.Label,
		})
	}

	return out
}

// sortedParams flattens a parameter map into a name-sorted list so output
// bytes do not depend on map iteration order.
func sortedParams(params map[string]any) []graph.Param {
	if len(params) == 0 {
		return nil
	}
	out := make([]graph.Param, 0, len(params))
	for _, name := range slices.Sorted(maps.Keys(params)) {
		out = append(out, graph.Param{Name: name, Value: params[name]})
	}
	return out
}
