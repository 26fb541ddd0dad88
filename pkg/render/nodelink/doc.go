// Package nodelink renders a renderable graph as a classic node-link
// diagram: DOT output for Graphviz tooling, or SVG/PNG via the embedded
// Graphviz engine.
//
// Layout coordinates from the engine are advisory here - Graphviz runs
// its own placement - but ranks are pinned so the generated diagram keeps
// the engine's layering.
package nodelink
