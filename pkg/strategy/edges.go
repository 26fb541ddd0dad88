package strategy

import (
	"fmt"
	"maps"
	"slices"

	"github.com/evoviz/evoviz/pkg/dag"
)

// BuildEdges resolves every node's declared inputs into a deduplicated
// list of directed edges.
//
// For each node, each input slot (slot names visited in sorted order so
// edge order is reproducible), each encoded reference: parse, skip on
// failure, skip references whose producer is not a known node ID. A
// surviving reference emits an edge keyed by the
// (producer, output, target, slot) composite; a previously seen composite
// is skipped, so array-valued inputs or repeated declarations cannot
// duplicate an edge. Edge IDs are derived from the composite, making them
// identical across repeated runs on identical input.
func BuildEdges(nodes []NodeDef) []dag.Edge {
	known := make(map[string]struct{}, len(nodes))
	for _, n := range nodes {
		known[n.ID] = struct{}{}
	}

	var edges []dag.Edge
	seen := make(map[string]struct{})

	for _, n := range nodes {
		for _, slot := range slices.Sorted(maps.Keys(n.Inputs)) {
			for _, raw := range slotRefs(n.Inputs[slot]) {
				ref, ok := ParseRef(raw)
				if !ok {
					continue
				}
				if _, exists := known[ref.Producer]; !exists {
					continue // dangling reference, tolerated
				}
				id := EdgeID(ref.Producer, ref.Output, n.ID, slot)
				if _, dup := seen[id]; dup {
					continue
				}
				seen[id] = struct{}{}
				edges = append(edges, dag.Edge{
					ID:    id,
					From:  ref.Producer,
					To:    n.ID,
					Label: ref.Output,
					Slot:  slot,
				})
			}
		}
	}
	return edges
}

// EdgeID derives the deterministic identifier for an edge from its
// composite key.
func EdgeID(producer, output, target, slot string) string {
	return fmt.Sprintf("%s.%s->%s:%s", producer, output, target, slot)
}

// slotRefs normalizes a slot value to the list of encoded references it
// holds: a bare value is one reference, a list contributes each element.
// Anything else yields nothing.
func slotRefs(v any) []any {
	switch vv := v.(type) {
	case []any:
		return vv
	case []string:
		refs := make([]any, len(vv))
		for i, s := range vv {
			refs[i] = s
		}
		return refs
	case nil:
		return nil
	default:
		return []any{v}
	}
}
