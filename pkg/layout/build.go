package layout

import "github.com/evoviz/evoviz/pkg/dag"

// Result is the output of [Build]: ordered rows plus a coordinate for
// every node.
type Result struct {
	Rows      map[int][]string
	Positions map[string]Point
}

// Build runs ordering and position assignment in sequence for a ranked
// graph. Rank assignment is the caller's concern (see dag/transform);
// Build assumes every node already carries its final rank.
func Build(g *dag.DAG, p Profile, sp Spacing) Result {
	rows := OrderRanks(g, p)
	return Result{
		Rows:      rows,
		Positions: AssignPositions(rows, sp, p.Axis()),
	}
}
