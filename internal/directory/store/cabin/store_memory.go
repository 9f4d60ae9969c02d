// Package cabin persists badge reader locations.
package cabin

import (
	"context"
	"slices"
	"sync"

	"rollcall/internal/directory/models"
	"rollcall/pkg/platform/sentinel"

	"github.com/google/uuid"
)

// InMemoryStore keeps cabins in insertion order.
type InMemoryStore struct {
	mu     sync.RWMutex
	cabins map[uuid.UUID]models.Cabin
	order  []uuid.UUID
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{cabins: make(map[uuid.UUID]models.Cabin)}
}

func (s *InMemoryStore) Create(_ context.Context, c *models.Cabin) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.cabins[c.ID]; ok {
		return sentinel.ErrConflict
	}
	s.cabins[c.ID] = *c
	s.order = append(s.order, c.ID)
	return nil
}

func (s *InMemoryStore) List(_ context.Context) ([]*models.Cabin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Cabin, 0, len(s.order))
	for _, id := range s.order {
		c := s.cabins[id]
		out = append(out, &c)
	}
	return out, nil
}

func (s *InMemoryStore) FindByID(_ context.Context, id uuid.UUID) (*models.Cabin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, ok := s.cabins[id]; ok {
		return &c, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryStore) Update(_ context.Context, c *models.Cabin) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.cabins[c.ID]; !ok {
		return sentinel.ErrNotFound
	}
	s.cabins[c.ID] = *c
	return nil
}

func (s *InMemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.cabins[id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.cabins, id)
	s.order = slices.DeleteFunc(s.order, func(v uuid.UUID) bool { return v == id })
	return nil
}
