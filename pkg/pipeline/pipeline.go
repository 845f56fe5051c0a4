// Package pipeline provides the complete schema-to-layout pipeline.
//
// This package implements the infer → build → layout → emit sequence that
// both the CLI commands and embedding callers use. Centralizing it keeps
// caching, hook emission, and logging consistent across entry points.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Infer: Discover table relations from column-name heuristics
//  2. Build: Construct the layout arena from catalog and relations
//  3. Layout: Position the graph and emit the external layout contract
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, logger)
//	opts := pipeline.DefaultOptions()
//	result, err := runner.Execute(ctx, catalog, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	erd.WriteLayout(result.Layout, os.Stdout)
package pipeline

import (
	"time"

	"github.com/tablemap/tablemap/pkg/erd"
	"github.com/tablemap/tablemap/pkg/infer"
	"github.com/tablemap/tablemap/pkg/layout"
)

// Options contains all configuration for one pipeline run.
// This struct supports JSON serialization for stored run manifests.
type Options struct {
	// Layout holds the spacing and direction parameters.
	Layout layout.Config `json:"layout"`

	// Refresh bypasses the cache read and recomputes, still writing the
	// fresh result back.
	Refresh bool `json:"refresh,omitempty"`

	// Inferencer overrides the relation heuristics. Nil means defaults.
	Inferencer *infer.Inferencer `json:"-"`
}

// DefaultOptions returns Options with the standard layout configuration.
func DefaultOptions() Options {
	return Options{Layout: layout.DefaultConfig()}
}

// Validate checks the options before a run.
func (o Options) Validate() error {
	return o.Layout.Validate()
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies this execution in logs and hooks.
	RunID string `json:"run_id"`

	// CatalogHash is the content hash of the input catalog.
	CatalogHash string `json:"catalog_hash"`

	// Relations are the inferred table relations. Empty when the result
	// came from cache - the cached layout already embeds their outcome.
	Relations []infer.Relation `json:"relations,omitempty"`

	// Layout is the positioned diagram.
	Layout erd.Layout `json:"layout"`

	// Stats contains timing and size information.
	Stats Stats `json:"stats"`

	// CacheHit reports whether the layout came from the cache.
	CacheHit bool `json:"cache_hit,omitempty"`
}

// Stats contains pipeline execution statistics.
type Stats struct {
	TableCount    int           `json:"table_count"`
	RelationCount int           `json:"relation_count"`
	NodeCount     int           `json:"node_count"`
	EdgeCount     int           `json:"edge_count"`
	InferTime     time.Duration `json:"infer_time"`
	BuildTime     time.Duration `json:"build_time"`
	LayoutTime    time.Duration `json:"layout_time"`
}
