package configstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memberware/renewals/internal/cache"
	"github.com/memberware/renewals/internal/config"
	"github.com/memberware/renewals/internal/logger"
	"github.com/memberware/renewals/internal/testutil"
	"github.com/memberware/renewals/internal/types"
)

func TestGetMapping(t *testing.T) {
	ctx := testutil.SetupContext()
	cfg := config.GetDefaultConfig()
	cfg.Pricing.Mapping = map[string]string{
		"prod-1": "annual",
		"var-9":  "biennial",
	}

	repo := NewPriceMappingRepository(cfg, cache.NewInMemoryCache(), logger.GetLogger())

	mapping, err := repo.GetMapping(ctx)
	require.NoError(t, err)
	assert.Equal(t, types.DUES_TIER_ANNUAL, mapping.Items["prod-1"])
	assert.Equal(t, types.DUES_TIER_BIENNIAL, mapping.Items["var-9"])

	// second read is served from cache and identical
	again, err := repo.GetMapping(ctx)
	require.NoError(t, err)
	assert.Equal(t, mapping.Items, again.Items)
}

func TestGetMapping_SkipsInvalidEntries(t *testing.T) {
	ctx := testutil.SetupContext()
	cfg := config.GetDefaultConfig()
	cfg.Pricing.Mapping = map[string]string{
		"prod-1": "annual",
		"prod-2": "weekly",
	}

	repo := NewPriceMappingRepository(cfg, nil, logger.GetLogger())

	mapping, err := repo.GetMapping(ctx)
	require.NoError(t, err)
	assert.Len(t, mapping.Items, 1)
	_, ok := mapping.Items["prod-2"]
	assert.False(t, ok)
}
