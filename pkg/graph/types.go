package graph

import "github.com/evoviz/evoviz/pkg/layout"

// Node states for lineage graphs. Classification is supplied per render by
// the caller; the engine models no transitions between states.
const (
	StateAlive   = "alive"
	StateDead    = "dead"
	StateElite   = "elite"
	StateTesting = "testing"
)

// Renderable is the engine's output: positioned nodes and directed edges,
// ready for an external rendering surface. No layout information is
// implicit - everything a renderer needs is in the struct.
type Renderable struct {
	Nodes []Node `json:"nodes" bson:"nodes"`
	Edges []Edge `json:"edges" bson:"edges"`

	// Rows lists every rank in ascending order with its ordered member
	// IDs. For lineage layouts this includes empty generation marker rows
	// up to the requested generation count, so a caller can render
	// "generation N has 0 members" consistently.
	Rows []Row `json:"rows,omitempty" bson:"rows,omitempty"`
}

// Node is a positioned node in a renderable graph.
type Node struct {
	ID       string       `json:"id" bson:"id"`
	Position layout.Point `json:"position" bson:"position"`
	Data     NodeData     `json:"data" bson:"data"`
}

// NodeData carries the domain fields a renderer may display. Which fields
// are populated depends on the document kind: strategy nodes have Kind,
// Params and Outputs; lineage nodes have Fitness and State. Rank is always
// set. None of these fields affect layout.
type NodeData struct {
	Label   string   `json:"label,omitempty" bson:"label,omitempty"`
	Kind    string   `json:"kind,omitempty" bson:"kind,omitempty"`
	Rank    int      `json:"rank" bson:"rank"`
	Fitness float64  `json:"fitness,omitempty" bson:"fitness,omitempty"`
	State   string   `json:"state,omitempty" bson:"state,omitempty"`
	Params  []Param  `json:"params,omitempty" bson:"params,omitempty"`
	Outputs []string `json:"outputs,omitempty" bson:"outputs,omitempty"`
}

// Param is one name/value pair from a strategy node's parameter mapping.
// Parameters are emitted as an ordered list (sorted by name) rather than a
// map so output bytes are stable.
type Param struct {
	Name  string `json:"name" bson:"name"`
	Value any    `json:"value" bson:"value"`
}

// Edge is a directed edge in a renderable graph. ID is deterministic for
// identical input so downstream diffing stays stable across re-renders.
type Edge struct {
	ID     string `json:"id" bson:"id"`
	Source string `json:"source" bson:"source"`
	Target string `json:"target" bson:"target"`
	Label  string `json:"label,omitempty" bson:"label,omitempty"`
}

// Row describes one rank of the layout: its index, its offset along the
// rank axis and its ordered member IDs. A row with no members is a marker
// row.
type Row struct {
	Rank    int      `json:"rank" bson:"rank"`
	Offset  float64  `json:"offset" bson:"offset"`
	NodeIDs []string `json:"node_ids,omitempty" bson:"node_ids,omitempty"`
}

// NodeIDs extracts the ID of every node in the renderable, in order.
func (r Renderable) NodeIDs() []string {
	ids := make([]string, len(r.Nodes))
	for i, n := range r.Nodes {
		ids[i] = n.ID
	}
	return ids
}

// NodeByID returns the node with the given ID and true, or a zero Node
// and false.
func (r Renderable) NodeByID(id string) (Node, bool) {
	for _, n := range r.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}
