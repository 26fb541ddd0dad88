// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register
// hooks at startup to receive events about layout computation and cache
// operations.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetLayoutHooks(&myLayoutHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Layout().OnLayoutStart(ctx, kind, nodeCount)
//	// ... compute ...
//	observability.Layout().OnLayoutComplete(ctx, kind, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// LayoutHooks receives events from layout computation.
type LayoutHooks interface {
	// OnLayoutStart fires before a layout computation begins.
	// kind is "strategy" or "lineage".
	OnLayoutStart(ctx context.Context, kind string, nodeCount int)

	// OnLayoutComplete fires after a computation finishes.
	OnLayoutComplete(ctx context.Context, kind string, duration time.Duration, err error)
}

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit. keyType is "layout" or "artifact".
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)
}

// =============================================================================
// No-op defaults
// =============================================================================

type noopLayoutHooks struct{}

func (noopLayoutHooks) OnLayoutStart(context.Context, string, int)                  {}
func (noopLayoutHooks) OnLayoutComplete(context.Context, string, time.Duration, error) {}

type noopCacheHooks struct{}

func (noopCacheHooks) OnCacheHit(context.Context, string)  {}
func (noopCacheHooks) OnCacheMiss(context.Context, string) {}

// =============================================================================
// Registration
// =============================================================================

var (
	mu          sync.RWMutex
	layoutHooks LayoutHooks = noopLayoutHooks{}
	cacheHooks  CacheHooks  = noopCacheHooks{}
)

// SetLayoutHooks registers layout hooks. Passing nil restores the no-op
// default. Call during startup, before computations begin.
func SetLayoutHooks(h LayoutHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		layoutHooks = noopLayoutHooks{}
		return
	}
	layoutHooks = h
}

// SetCacheHooks registers cache hooks. Passing nil restores the no-op
// default.
func SetCacheHooks(h CacheHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		cacheHooks = noopCacheHooks{}
		return
	}
	cacheHooks = h
}

// Layout returns the registered layout hooks.
func Layout() LayoutHooks {
	mu.RLock()
	defer mu.RUnlock()
	return layoutHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	mu.RLock()
	defer mu.RUnlock()
	return cacheHooks
}
