// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about engine execution, diagnostics, and cache operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core engine dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetEngineHooks(&myEngineHooks{})
//	    observability.SetDiagnosticHooks(&myDiagnosticHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Engine().OnInferStart(ctx, tableCount)
//	// ... run inference ...
//	observability.Engine().OnInferComplete(ctx, tableCount, relationCount, duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Engine Hooks
// =============================================================================

// EngineHooks receives events from the inference and layout engine.
type EngineHooks interface {
	// Inference events
	OnInferStart(ctx context.Context, tableCount int)
	OnInferComplete(ctx context.Context, tableCount, relationCount int, duration time.Duration)

	// Graph build events
	OnBuildStart(ctx context.Context, tableCount, relationCount int)
	OnBuildComplete(ctx context.Context, nodeCount, edgeCount, droppedCount int, duration time.Duration)

	// Layout events
	OnLayoutStart(ctx context.Context, nodeCount, edgeCount int)
	OnLayoutComplete(ctx context.Context, rankCount, crossings int, duration time.Duration)
}

// =============================================================================
// Diagnostic Hooks
// =============================================================================

// DiagnosticHooks receives non-fatal diagnostics recorded during a run.
// The engine never fails on malformed input; it records a diagnostic and
// continues with the remaining valid graph.
type DiagnosticHooks interface {
	// OnDiagnostic records a recovered input problem (dropped edge,
	// duplicate table, and similar). The code is a pkg/errors code string.
	OnDiagnostic(ctx context.Context, code, message string)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopEngineHooks is a no-op implementation of EngineHooks.
type NoopEngineHooks struct{}

func (NoopEngineHooks) OnInferStart(context.Context, int)                               {}
func (NoopEngineHooks) OnInferComplete(context.Context, int, int, time.Duration)        {}
func (NoopEngineHooks) OnBuildStart(context.Context, int, int)                          {}
func (NoopEngineHooks) OnBuildComplete(context.Context, int, int, int, time.Duration)   {}
func (NoopEngineHooks) OnLayoutStart(context.Context, int, int)                         {}
func (NoopEngineHooks) OnLayoutComplete(context.Context, int, int, time.Duration)       {}

// NoopDiagnosticHooks is a no-op implementation of DiagnosticHooks.
type NoopDiagnosticHooks struct{}

func (NoopDiagnosticHooks) OnDiagnostic(context.Context, string, string) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	engineHooks     EngineHooks     = NoopEngineHooks{}
	diagnosticHooks DiagnosticHooks = NoopDiagnosticHooks{}
	cacheHooks      CacheHooks      = NoopCacheHooks{}
	hooksMu         sync.RWMutex
)

// SetEngineHooks registers custom engine hooks.
// This should be called once at application startup before any engine runs.
func SetEngineHooks(h EngineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		engineHooks = h
	}
}

// SetDiagnosticHooks registers custom diagnostic hooks.
// This should be called once at application startup before any engine runs.
func SetDiagnosticHooks(h DiagnosticHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		diagnosticHooks = h
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

// Engine returns the registered engine hooks.
func Engine() EngineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return engineHooks
}

// Diagnostic returns the registered diagnostic hooks.
func Diagnostic() DiagnosticHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return diagnosticHooks
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
	engineHooks = NoopEngineHooks{}
	diagnosticHooks = NoopDiagnosticHooks{}
	cacheHooks = NoopCacheHooks{}
}
