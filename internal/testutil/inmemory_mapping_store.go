package testutil

import (
	"context"

	"github.com/memberware/renewals/internal/domain/pricing"
	"github.com/memberware/renewals/internal/types"
)

// InMemoryMappingStore implements pricing.Repository
type InMemoryMappingStore struct {
	mapping *pricing.TierMapping
}

// NewInMemoryMappingStore creates a mapping store serving a fixed table
func NewInMemoryMappingStore(items map[string]types.DuesTier) *InMemoryMappingStore {
	if items == nil {
		items = make(map[string]types.DuesTier)
	}
	return &InMemoryMappingStore{
		mapping: &pricing.TierMapping{Items: items},
	}
}

func (s *InMemoryMappingStore) GetMapping(ctx context.Context) (*pricing.TierMapping, error) {
	return s.mapping, nil
}
