package layout

import (
	"slices"

	"github.com/evoviz/evoviz/pkg/dag"
)

// OrderRanks chooses a stable order for the nodes of every rank and
// returns rank -> ordered node IDs.
//
// The first (lowest) rank is ordered purely by the profile's domain sort
// key. Every later rank clusters nodes under the parent that first claimed
// them: a node's grouping parent is the source of its first inbound edge
// in edge insertion order, an explicit tie-break for nodes with several
// parents. Groups are ordered by the index their parent occupied in the
// previous rank; within a group, members follow the domain sort key.
// Nodes whose grouping parent is absent from the previous rank fall back
// to lexicographic ID order after the grouped nodes.
//
// The result is deterministic for fixed node and edge ordering.
func OrderRanks(g *dag.DAG, p Profile) map[int][]string {
	rows := make(map[int][]string, len(g.RankIDs()))

	// First inbound edge wins when a node has multiple parents.
	firstParent := make(map[string]string)
	for _, e := range g.Edges() {
		if _, seen := firstParent[e.To]; !seen {
			firstParent[e.To] = e.From
		}
	}

	var prevPos map[string]int
	for _, rank := range g.RankIDs() {
		ids := dag.NodeIDs(g.NodesInRank(rank))

		if prevPos == nil {
			slices.SortStableFunc(ids, func(a, b string) int {
				return lessToCmp(p.Less, a, b)
			})
		} else {
			pos := prevPos // capture for the closure
			slices.SortStableFunc(ids, func(a, b string) int {
				ga, aGrouped := groupIndex(a, firstParent, pos)
				gb, bGrouped := groupIndex(b, firstParent, pos)
				switch {
				case aGrouped && !bGrouped:
					return -1
				case !aGrouped && bGrouped:
					return 1
				case !aGrouped && !bGrouped:
					return compareStrings(a, b)
				}
				if ga != gb {
					return ga - gb
				}
				return lessToCmp(p.Less, a, b)
			})
		}

		rows[rank] = ids
		prevPos = dag.PosMap(ids)
	}

	return rows
}

// groupIndex resolves a node's grouping parent to its index in the
// previous rank. The second return is false for ungrouped nodes (no
// inbound edge, or parent not present in the previous rank).
func groupIndex(id string, firstParent map[string]string, prevPos map[string]int) (int, bool) {
	parent, ok := firstParent[id]
	if !ok {
		return 0, false
	}
	idx, ok := prevPos[parent]
	return idx, ok
}

func lessToCmp(less func(a, b string) bool, a, b string) int {
	switch {
	case less(a, b):
		return -1
	case less(b, a):
		return 1
	default:
		return 0
	}
}

func compareStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
