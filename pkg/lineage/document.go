package lineage

// Document is the consumed shape of a lineage graph. Two forms are
// accepted: the explicit form populates Nodes and Edges; the degraded
// form carries only Edges (and optionally Roots), in which case the node
// set is synthesized from edge endpoints.
type Document struct {
	Nodes []NodeDef `json:"nodes,omitempty"`
	Edges []EdgeDef `json:"edges,omitempty"`
	Roots []string  `json:"roots,omitempty"`
}

// NodeDef describes one individual in the lineage.
//
// Generation is optional; when absent the rank is inferred from a
// gen<N> pattern embedded in the ID, then from edge hints, then defaults
// to 0. State takes one of alive|dead|elite|testing; when absent the
// verdict field decides, and when that is absent too the node counts as
// alive. ParentID is a backward parent pointer honored in addition to the
// edge list.
type NodeDef struct {
	ID         string  `json:"id"`
	Generation *int    `json:"generation,omitempty"`
	Fitness    float64 `json:"fitness,omitempty"`
	State      string  `json:"state,omitempty"`
	Verdict    string  `json:"verdict,omitempty"`
	ParentID   string  `json:"parent_id,omitempty"`
}

// EdgeDef is one derivation edge. Both the {source, target} and the
// {parent, child} spellings are accepted; source/target wins when both
// are present. Generation, when set, is a rank hint for the child.
type EdgeDef struct {
	Source     string `json:"source,omitempty"`
	Target     string `json:"target,omitempty"`
	Parent     string `json:"parent,omitempty"`
	Child      string `json:"child,omitempty"`
	Generation *int   `json:"generation,omitempty"`
}

// endpoints resolves the edge to its (parent, child) pair, preferring the
// source/target spelling. Either side may come back empty for malformed
// entries; the caller drops those.
func (e EdgeDef) endpoints() (string, string) {
	from, to := e.Source, e.Target
	if from == "" {
		from = e.Parent
	}
	if to == "" {
		to = e.Child
	}
	return from, to
}
