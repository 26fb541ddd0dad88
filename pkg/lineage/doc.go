// Package lineage builds renderable layouts for ancestry graphs of
// evolved strategies: one node per individual, edges denoting
// parent-to-child derivation, ranks corresponding to generations.
//
// The entry point is [ComputeLayout]. It accepts either an explicit
// {nodes, edges} document or a degraded {edges, roots} form, synthesizing
// the node set from edge endpoints when necessary. Like the strategy
// assembler it is pure, deterministic and never fails on partial data.
package lineage
