// Package graph defines the renderable graph format produced by the
// layout engine and consumed by external drawing surfaces.
//
// The format is the canonical serialization for API responses, storage
// and caching: positioned nodes, directed edges and per-rank rows.
// Marshaling the same [Renderable] twice yields byte-identical JSON, which
// callers rely on for re-render diffing and cache keys.
package graph
