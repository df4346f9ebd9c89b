package cache

import (
	"github.com/memberware/renewals/internal/config"
	"github.com/memberware/renewals/internal/logger"
	redisClient "github.com/memberware/renewals/internal/redis"
)

// CacheType represents the type of cache to use
type CacheType string

const (
	// CacheTypeInMemory represents an in-memory cache
	CacheTypeInMemory CacheType = "inmemory"

	// CacheTypeRedis represents a Redis-backed cache
	CacheTypeRedis CacheType = "redis"
)

// Initialize initializes the cache system based on the configured type.
func Initialize(cfg *config.Configuration, log *logger.Logger) Cache {
	log.Infow("initializing cache system", "type", cfg.Cache.Type)

	var cache Cache

	switch CacheType(cfg.Cache.Type) {
	case CacheTypeRedis:
		client, err := redisClient.NewClient(cfg.Cache.Redis, log)
		if err != nil {
			log.Errorw("redis unavailable, falling back to in-memory cache", "error", err)
			InitializeInMemoryCache()
			return GetInMemoryCache()
		}
		InitializeRedisCache(client, log, cfg)
		cache = GetRedisCache()
	case CacheTypeInMemory:
		fallthrough
	default:
		InitializeInMemoryCache()
		cache = GetInMemoryCache()
	}

	log.Infow("cache system initialized", "type", cfg.Cache.Type)
	return cache
}
