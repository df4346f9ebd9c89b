package testutil

import (
	"context"

	"github.com/memberware/renewals/internal/domain/order"
	ierr "github.com/memberware/renewals/internal/errors"
)

// InMemorySubscriptionStore implements order.SubscriptionRepository
type InMemorySubscriptionStore struct {
	*InMemoryStore[order.Subscription]
}

// NewInMemorySubscriptionStore creates a new in-memory subscription store
func NewInMemorySubscriptionStore() *InMemorySubscriptionStore {
	return &InMemorySubscriptionStore{
		InMemoryStore: NewInMemoryStore[order.Subscription](),
	}
}

func (s *InMemorySubscriptionStore) Add(sub order.Subscription) {
	s.Set(sub.ID(), sub)
}

func (s *InMemorySubscriptionStore) Get(ctx context.Context, id string) (order.Subscription, error) {
	if sub, ok := s.InMemoryStore.Get(id); ok {
		return sub, nil
	}
	return nil, ierr.NewErrorf("subscription %s not found", id).
		WithHint("The subscription may have been deleted by the host").
		Mark(ierr.ErrNotFound)
}
