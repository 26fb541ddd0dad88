// Package layout turns a ranked graph into deterministic 2D coordinates.
//
// The pipeline has two steps, both pure functions of their input:
//
//  1. [OrderRanks] picks a stable order for nodes sharing a rank, keeping
//     children near the parent that first claimed them so related subtrees
//     stay visually adjacent. This is heuristic crossing reduction, not
//     crossing minimization.
//  2. [AssignPositions] maps (rank, order index) to coordinates on a fixed
//     grid: each row is centered at 0 along its packing axis, ranks are
//     spaced by a constant gap along the other axis.
//
// Differences between document kinds (sort key, rank orientation, spacing)
// are captured by a [Profile] so both the strategy and lineage assemblers
// share one implementation.
package layout
