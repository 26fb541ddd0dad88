package layout

// Axis selects which coordinate the rank index advances along.
type Axis int

const (
	// AxisVertical stacks ranks top to bottom; rows pack along X.
	AxisVertical Axis = iota
	// AxisHorizontal stacks ranks left to right; rows pack along Y.
	AxisHorizontal
)

// Spacing holds the fixed grid constants for position assignment.
// Both values are in output coordinate units (pixels downstream).
type Spacing struct {
	NodeGap float64 // distance between adjacent nodes within a rank
	RankGap float64 // distance between adjacent ranks
}

// DefaultSpacing matches the grid the rendering surface was designed
// around.
var DefaultSpacing = Spacing{NodeGap: 180, RankGap: 140}

// Point is a 2D coordinate assigned to a node.
type Point struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}

// Profile supplies the per-document-kind knobs the shared layout core
// needs: how to compare siblings and which way ranks advance. Implemented
// by the strategy and lineage assemblers.
type Profile interface {
	// Less is the domain sort key, comparing two node IDs. It orders
	// rank-0 rows and members within a parent group. Implementations must
	// be deterministic and total (a strict weak ordering).
	Less(a, b string) bool

	// Axis reports the rank orientation for position assignment.
	Axis() Axis
}
