package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/tablemap/tablemap/pkg/cache"
	"github.com/tablemap/tablemap/pkg/erd"
	"github.com/tablemap/tablemap/pkg/infer"
	"github.com/tablemap/tablemap/pkg/layout"
	"github.com/tablemap/tablemap/pkg/observability"
	"github.com/tablemap/tablemap/pkg/schema"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't store
// pipeline results. Multiple goroutines can safely use the same Runner with
// different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and logger.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Execute runs the complete infer → build → layout pipeline with caching.
//
// The cache key covers the catalog content and the layout config, so any
// change to either recomputes. Input problems (duplicate tables, dangling
// relations) never fail the run; they surface as diagnostics on the layout.
func (r *Runner) Execute(ctx context.Context, catalog schema.Catalog, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{RunID: uuid.NewString()}
	logger := r.Logger.With("run_id", result.RunID)

	catalogData, err := schema.MarshalCatalog(catalog)
	if err != nil {
		return nil, fmt.Errorf("serialize catalog for cache key: %w", err)
	}
	result.CatalogHash = cache.Hash(catalogData)
	cacheKey := cache.Key("layout", result.CatalogHash, opts.Layout)

	if !opts.Refresh {
		if cached, ok := r.cachedLayout(ctx, cacheKey); ok {
			observability.Cache().OnCacheHit(ctx, "layout")
			logger.Debug("layout cache hit", "key", cacheKey)
			result.Layout = cached
			result.CacheHit = true
			result.Stats.TableCount = len(catalog.Tables)
			result.Stats.NodeCount = len(cached.Nodes)
			result.Stats.EdgeCount = len(cached.Edges)
			return result, nil
		}
		observability.Cache().OnCacheMiss(ctx, "layout")
	}

	// Stage 1: Infer
	inferencer := opts.Inferencer
	if inferencer == nil {
		inferencer = infer.New()
	}
	inferStart := time.Now()
	observability.Engine().OnInferStart(ctx, len(catalog.Tables))
	relations := inferencer.Infer(catalog.Tables)
	result.Relations = relations
	result.Stats.TableCount = len(catalog.Tables)
	result.Stats.RelationCount = len(relations)
	result.Stats.InferTime = time.Since(inferStart)
	observability.Engine().OnInferComplete(ctx, len(catalog.Tables), len(relations), result.Stats.InferTime)

	logger.Info("inferred relations",
		"tables", len(catalog.Tables),
		"relations", len(relations),
		"duration", result.Stats.InferTime)

	// Stage 2: Build
	buildStart := time.Now()
	g, diags := erd.Build(ctx, catalog, relations)
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.NodeCount = g.NodeCount()
	result.Stats.EdgeCount = g.EdgeCount()

	logger.Info("built graph",
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"diagnostics", len(diags),
		"duration", result.Stats.BuildTime)

	// Stage 3: Layout
	layoutStart := time.Now()
	observability.Engine().OnLayoutStart(ctx, g.NodeCount(), g.EdgeCount())
	stats, err := layout.Apply(g, opts.Layout)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = erd.Emit(g, opts.Layout, stats, diags)
	result.Stats.LayoutTime = time.Since(layoutStart)
	observability.Engine().OnLayoutComplete(ctx, stats.Ranks, stats.Crossings, result.Stats.LayoutTime)

	logger.Info("computed layout",
		"ranks", stats.Ranks,
		"crossings", stats.Crossings,
		"reversed_edges", stats.ReversedEdges,
		"duration", result.Stats.LayoutTime)

	if data, err := erd.MarshalLayout(result.Layout); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout); err == nil {
			observability.Cache().OnCacheSet(ctx, "layout", len(data))
		}
	}

	return result, nil
}

// cachedLayout fetches and decodes a cached layout. A decode failure is
// treated as a miss so stale entries from older versions recompute cleanly.
func (r *Runner) cachedLayout(ctx context.Context, key string) (erd.Layout, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil || !hit {
		return erd.Layout{}, false
	}
	l, err := erd.ReadLayout(bytes.NewReader(data))
	if err != nil {
		return erd.Layout{}, false
	}
	return l, true
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
