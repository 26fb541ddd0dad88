// Package cache provides the result cache used to memoize layout
// computation. The engine itself is pure and holds no state between
// calls; callers key cached results on a stable hash of the input
// document and layout options so unrelated re-renders never recompute.
//
// Three backends implement the same interface: a file cache for CLI
// usage, an in-process LRU for the HTTP server's hot path, and Redis for
// multi-instance deployments. [NullCache] disables caching entirely.
package cache

import (
	"context"
	"time"
)

// Cache is the minimal byte-oriented cache interface shared by all
// backends.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present (a miss is not an error).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A non-positive ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
