// Package cache provides the result cache used by the CLI to skip repeated
// pipeline runs over an unchanged catalog. The engine itself never consults
// a cache; callers decide whether a cached layout is acceptable.
package cache

import (
	"context"
	"time"
)

// TTLLayout is how long cached layout results stay valid. Layouts are pure
// functions of catalog and config, so the TTL only bounds disk growth.
const TTLLayout = 24 * time.Hour

// Cache stores serialized pipeline results keyed by content hash.
//
// Implementations must treat a missing key as (nil, false, nil), not as an
// error - a miss is the normal path on first run.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a time-to-live. A non-positive ttl means the
	// entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}
