package testutil

import (
	"context"
	"sync"
)

// InMemoryMemberStore implements member.AttributeStore
type InMemoryMemberStore struct {
	mu    sync.RWMutex
	attrs map[string]map[string]string
}

// NewInMemoryMemberStore creates a new in-memory member attribute store
func NewInMemoryMemberStore() *InMemoryMemberStore {
	return &InMemoryMemberStore{
		attrs: make(map[string]map[string]string),
	}
}

func (s *InMemoryMemberStore) GetAttribute(ctx context.Context, memberID, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if m, ok := s.attrs[memberID]; ok {
		if v, ok := m[key]; ok {
			return v, true, nil
		}
	}
	return "", false, nil
}

func (s *InMemoryMemberStore) SetAttribute(ctx context.Context, memberID, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.attrs[memberID]; !ok {
		s.attrs[memberID] = make(map[string]string)
	}
	s.attrs[memberID][key] = value
	return nil
}

func (s *InMemoryMemberStore) ClearAttribute(ctx context.Context, memberID, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m, ok := s.attrs[memberID]; ok {
		delete(m, key)
	}
	return nil
}
