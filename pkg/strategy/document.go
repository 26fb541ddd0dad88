package strategy

// Document is the consumed shape of a strategy computation graph. Only
// the node list matters for layout; other top-level fields of the source
// document (universe, time config, constraints) are ignored here.
type Document struct {
	Nodes []NodeDef `json:"nodes"`
}

// NodeDef describes one node of the strategy pipeline. Constructed once
// per render pass from the source document and treated as immutable.
//
// Inputs maps an input slot name to either a single encoded reference
// ("producerId.outputLabel") or a list of them; any other value shape is
// ignored slot-wise. The loose typing is deliberate: upstream documents
// are hand-edited and partially generated.
type NodeDef struct {
	ID      string         `json:"id"`
	Type    string         `json:"type,omitempty"`
	Params  map[string]any `json:"params,omitempty"`
	Inputs  map[string]any `json:"inputs,omitempty"`
	Outputs []string       `json:"outputs,omitempty"`
}

// sanitize returns the document's usable nodes: entries without an ID are
// dropped, and for duplicate IDs the first occurrence wins. Document
// order is preserved.
func (d Document) sanitize() []NodeDef {
	out := make([]NodeDef, 0, len(d.Nodes))
	seen := make(map[string]struct{}, len(d.Nodes))
	for _, n := range d.Nodes {
		if n.ID == "" {
			continue
		}
		if _, dup := seen[n.ID]; dup {
			continue
		}
		seen[n.ID] = struct{}{}
		out = append(out, n)
	}
	return out
}
