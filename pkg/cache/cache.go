// Package cache provides pluggable caching for rendered diagrams.
//
// Diagram rendering is deterministic, so the cache is purely an
// optimization: a miss is always safe and simply re-renders. Three
// backends are provided:
//   - file: directory-based cache for CLI and single-instance servers
//   - redis: shared cache for multi-instance deployments
//   - null: disabled caching for tests and development
package cache

import (
	"context"
	"time"
)

// Cache is the interface implemented by all cache backends.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// DiagramKey generates the cache key for a rendered diagram.
// The key covers every input that affects the output bytes.
func DiagramKey(formation, coverage, concept, format string) string {
	return hashKey("diagram", formation, coverage, concept, format)
}
