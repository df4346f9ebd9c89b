package cache

import (
	"context"
	"time"
)

// Cache is the common interface over the in-memory and Redis backends. Reads
// return (value, found); writes never fail loudly. A cache miss or a backend
// error always degrades to a miss.
type Cache interface {
	Get(ctx context.Context, key string) (interface{}, bool)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration)
	Delete(ctx context.Context, key string)
	DeleteByPrefix(ctx context.Context, prefix string)
}
