package transform

import "github.com/evoviz/evoviz/pkg/dag"

// AssignLevels assigns nodes to ranks (layers) based on their depth in the
// graph, and returns the number of relaxation passes executed.
//
// All ranks start at 0. Up to N passes are made over the edge list, where
// N is the node count: for every edge, if rank(from)+1 > rank(to), the
// target is pushed down and the pass is marked dirty. The loop exits as
// soon as a pass changes nothing. For acyclic input this converges to the
// longest-path layering, so:
//   - Source nodes (no incoming edges) stay at rank 0
//   - rank(to) >= rank(from)+1 holds for every edge
//
// Existing rank assignments in the DAG are overwritten.
//
// # Cycles
//
// The relaxation is deliberately iterative with an explicit pass budget
// rather than a recursive or queue-driven topological traversal: the input
// is user-edited (or partially generated) and may contain cycles. Inside a
// cycle every pass keeps pushing ranks down, so without the budget the
// loop would never reach a fixed point. The N-pass cap stops it after at
// most N full scans, leaving finite ranks that yield a usable (if
// non-canonical) layout instead of hanging or crashing.
//
// # Determinism
//
// For fixed node and edge ordering the result is always identical: edges
// are scanned in insertion order and no map iteration affects the
// outcome.
//
// # Performance
//
// Worst case O(V*E); acyclic graphs exit after at most depth+1 passes.
func AssignLevels(g *dag.DAG) int {
	n := g.NodeCount()
	edges := g.Edges()
	ranks := make(map[string]int, n)

	passes := 0
	for i := 0; i < n; i++ {
		passes++
		changed := false
		for _, e := range edges {
			if r := ranks[e.From] + 1; r > ranks[e.To] {
				ranks[e.To] = r
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	g.SetRanks(ranks)
	return passes
}
