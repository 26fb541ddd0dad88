// Package store persists computed layouts keyed by run ID, so the HTTP
// server can hand back the layout of a finished evolution run without
// recomputing it. Persistence is optional: the server works without a
// store, it just recomputes on demand.
package store

import (
	"context"
	"errors"

	"github.com/evoviz/evoviz/pkg/graph"
)

// ErrNotFound is returned by [Store.Load] when no layout exists for the
// requested run and kind.
var ErrNotFound = errors.New("layout not found")

// Store saves and loads renderable layouts per run.
type Store interface {
	// Save upserts the layout for a run. kind is "strategy" or "lineage".
	Save(ctx context.Context, runID, kind string, r graph.Renderable) error

	// Load returns the stored layout, or ErrNotFound.
	Load(ctx context.Context, runID, kind string) (graph.Renderable, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}
