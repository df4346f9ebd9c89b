package configstore

import (
	"context"

	"github.com/memberware/renewals/internal/cache"
	"github.com/memberware/renewals/internal/config"
	"github.com/memberware/renewals/internal/domain/pricing"
	"github.com/memberware/renewals/internal/logger"
	"github.com/memberware/renewals/internal/types"
)

const cacheKeyTierMapping = "pricing:tier_mapping"

// priceMappingRepository serves the operator-configured product/variation ->
// tier table. The table is read-only at runtime, so caching the parsed form
// cannot violate read-your-writes.
type priceMappingRepository struct {
	cfg   *config.Configuration
	cache cache.Cache
	log   *logger.Logger
}

func NewPriceMappingRepository(cfg *config.Configuration, c cache.Cache, log *logger.Logger) pricing.Repository {
	return &priceMappingRepository{
		cfg:   cfg,
		cache: c,
		log:   log,
	}
}

func (r *priceMappingRepository) GetMapping(ctx context.Context) (*pricing.TierMapping, error) {
	if r.cache != nil {
		if value, found := r.cache.Get(ctx, cacheKeyTierMapping); found {
			if mapping, ok := cache.UnmarshalCacheValue[pricing.TierMapping](value); ok {
				return mapping, nil
			}
		}
	}

	mapping := &pricing.TierMapping{Items: make(map[string]types.DuesTier, len(r.cfg.Pricing.Mapping))}
	for id, raw := range r.cfg.Pricing.Mapping {
		tier, err := types.ParseDuesTier(raw)
		if err != nil {
			// Validated at load time; an unknown tier here means the config
			// was mutated behind our back. Skip the entry, keep serving.
			r.log.Warnw("skipping price mapping entry with unknown tier", "id", id, "tier", raw)
			continue
		}
		mapping.Items[id] = tier
	}

	if r.cache != nil {
		r.cache.Set(ctx, cacheKeyTierMapping, mapping, cache.ExpiryDefaultInMemory)
	}

	return mapping, nil
}
