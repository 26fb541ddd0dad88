// Package dag implements the directed graph core used by the layered layout
// engine. A [DAG] holds nodes with rank (layer) assignments and labeled,
// slot-tagged edges between them.
//
// Despite the name, the structure tolerates cycles: construction never
// rejects a cyclic edge set, and rank assignment (see package
// dag/transform) is bounded so that cyclic input produces a usable layout
// instead of an error. [DAG.Validate] is available as a diagnostic for
// callers that want to know whether the graph is actually acyclic.
//
// Node insertion order and edge insertion order are both preserved. The
// layout engine depends on this: sibling ordering breaks ties by the first
// inbound edge encountered, so identical input must always produce
// identical traversal order.
package dag
