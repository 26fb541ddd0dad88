package cache

// LayoutKeyOpts are the layout parameters that participate in the cache
// key. Two computations with the same document hash but different options
// must never share a key.
type LayoutKeyOpts struct {
	Kind            string  `json:"kind"` // "strategy" or "lineage"
	GenerationCount int     `json:"generation_count,omitempty"`
	NodeGap         float64 `json:"node_gap"`
	RankGap         float64 `json:"rank_gap"`
}

// LayoutKey generates the cache key for a layout computation from the
// document content hash and the layout options. Deterministic: identical
// inputs always produce the same key.
func LayoutKey(docHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", docHash, opts)
}

// ArtifactKey generates the cache key for a rendered artifact (dot, svg,
// png) derived from a layout.
func ArtifactKey(layoutHash, format string) string {
	return hashKey("artifact", layoutHash, format)
}
