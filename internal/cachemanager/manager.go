// Package cachemanager provides generic caching for catalog pages and
// preview art. Instances are created per use case so TTLs and flushes
// stay independent.
package cachemanager

import (
	"context"
	"time"
)

type CacheManager[K comparable, V any] interface {
	Get(ctx context.Context, key K) (V, bool)
	Set(ctx context.Context, key K, value V, ttl time.Duration)
	Flush(ctx context.Context) error
}
