package transform

import "github.com/evoviz/evoviz/pkg/dag"

// BreakCycles removes back edges until the graph is acyclic and returns
// the number of edges removed. A back edge is one whose target is still on
// the active depth-first path; which edge of a cycle is considered the back
// edge depends on insertion order, so results are deterministic for a
// fixed graph.
//
// The layout path never calls this: AssignLevels tolerates cycles on its
// own. BreakCycles exists for diagnostics and for callers that want a true
// DAG, such as exporting to tools that reject cycles.
func BreakCycles(g *dag.DAG) int {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int, g.NodeCount())
	var backEdges [][2]string

	for _, start := range dag.NodeIDs(g.Nodes()) {
		if color[start] != white {
			continue
		}
		type frame struct {
			id   string
			next int
		}
		stack := []frame{{id: start}}
		color[start] = gray
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			children := g.Children(top.id)
			if top.next >= len(children) {
				color[top.id] = black
				stack = stack[:len(stack)-1]
				continue
			}
			child := children[top.next]
			top.next++
			switch color[child] {
			case white:
				color[child] = gray
				stack = append(stack, frame{id: child})
			case gray:
				backEdges = append(backEdges, [2]string{top.id, child})
			}
		}
	}

	for _, e := range backEdges {
		g.RemoveEdge(e[0], e[1])
	}
	return len(backEdges)
}
