package layout

// AssignPositions maps every ordered row onto fixed grid coordinates and
// returns node ID -> point.
//
// Each row is centered at 0 along the packing axis: for a row of n nodes
// the row length is (n-1)*NodeGap, the first node sits at -length/2 and
// each subsequent node advances by NodeGap. Along the rank axis a node
// sits at rank*RankGap. There is no relaxation or physics, so the cost is
// O(1) per node and identical input always yields identical output.
func AssignPositions(rows map[int][]string, sp Spacing, axis Axis) map[string]Point {
	out := make(map[string]Point)
	for rank, ids := range rows {
		rowLen := float64(len(ids)-1) * sp.NodeGap
		start := -rowLen / 2
		across := float64(rank) * sp.RankGap
		for i, id := range ids {
			along := start + float64(i)*sp.NodeGap
			if axis == AxisVertical {
				out[id] = Point{X: along, Y: across}
			} else {
				out[id] = Point{X: across, Y: along}
			}
		}
	}
	return out
}

// RowOffset returns the coordinate of a rank along the rank axis. It lets
// callers place marker rows for ranks that contain no nodes.
func RowOffset(rank int, sp Spacing) float64 {
	return float64(rank) * sp.RankGap
}
