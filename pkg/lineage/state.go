package lineage

import (
	"strings"

	"github.com/evoviz/evoviz/pkg/graph"
)

// ClassifyState resolves a node's health state for display derivation.
// An explicit valid state wins; otherwise the evaluation verdict decides
// ("survive" maps to alive, "kill" to dead, case-insensitive); otherwise
// the node counts as alive. The result feeds edge emphasis and badges
// only - it never affects rank or position.
func ClassifyState(state, verdict string) string {
	switch strings.ToLower(state) {
	case graph.StateAlive, graph.StateDead, graph.StateElite, graph.StateTesting:
		return strings.ToLower(state)
	}
	switch strings.ToLower(verdict) {
	case "survive":
		return graph.StateAlive
	case "kill":
		return graph.StateDead
	}
	return graph.StateAlive
}
