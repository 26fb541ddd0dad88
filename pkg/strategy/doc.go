// Package strategy builds renderable layouts for strategy computation
// graphs: the internal node pipeline of a trading strategy, where node
// inputs are symbolic dotted references of the form
// "producerId.outputLabel".
//
// The entry point is [ComputeDAG]. It is a pure function and never fails:
// documents are often partially specified during interactive editing, so
// malformed references, dangling producers, duplicate or unnamed nodes and
// cycles all degrade by silent omission instead of raising.
package strategy
