// Package observability provides hooks for metrics and tracing.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register
// hooks at startup to receive events about diagram rendering and cache
// operations:
//
//	func main() {
//	    observability.SetDiagramHooks(&myDiagramHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Diagram().OnRenderStart(ctx, formation, coverage)
//	// ... render ...
//	observability.Diagram().OnRenderComplete(ctx, formation, coverage, size, duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// DiagramHooks receives events from diagram rendering.
type DiagramHooks interface {
	// OnRenderStart records the start of a diagram render.
	OnRenderStart(ctx context.Context, formation, coverage string)

	// OnRenderComplete records a finished render with the output size.
	OnRenderComplete(ctx context.Context, formation, coverage string, size int, duration time.Duration)
}

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// NoopDiagramHooks is a no-op implementation of DiagramHooks.
type NoopDiagramHooks struct{}

func (NoopDiagramHooks) OnRenderStart(context.Context, string, string) {}
func (NoopDiagramHooks) OnRenderComplete(context.Context, string, string, int, time.Duration) {
}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

var (
	diagramHooks DiagramHooks = NoopDiagramHooks{}
	cacheHooks   CacheHooks   = NoopCacheHooks{}
	hooksMu      sync.RWMutex
)

// SetDiagramHooks registers custom diagram hooks.
// This should be called once at application startup before any rendering.
func SetDiagramHooks(h DiagramHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		diagramHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Diagram returns the registered diagram hooks.
func Diagram() DiagramHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return diagramHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	diagramHooks = NoopDiagramHooks{}
	cacheHooks = NoopCacheHooks{}
}
