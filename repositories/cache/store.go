package cache

import (
	// Go Internal Packages
	"context"
	"time"
)

// Store is a byte-value cache with per-entry TTL. Implementations must
// be safe for concurrent use and treat every failure as a miss; a cache
// outage must never fail a request.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}
