// Package transform provides rank-assignment transforms for layered
// layouts.
//
// [AssignLevels] is the only transform most callers need: it computes a
// longest-path-from-roots layering using a bounded edge relaxation that
// terminates even when the input contains cycles.
package transform
