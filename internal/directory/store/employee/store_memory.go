// Package employee persists badge holders.
package employee

import (
	"context"
	"slices"
	"sync"

	"rollcall/internal/directory/models"
	"rollcall/pkg/platform/sentinel"

	"github.com/google/uuid"
)

// InMemoryStore keeps employees in insertion order.
type InMemoryStore struct {
	mu        sync.RWMutex
	employees map[uuid.UUID]*models.Employee
	order     []uuid.UUID
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{employees: make(map[uuid.UUID]*models.Employee)}
}

func clone(e *models.Employee) *models.Employee {
	c := *e
	c.Cabins = slices.Clone(e.Cabins)
	return &c
}

func (s *InMemoryStore) Create(_ context.Context, e *models.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.employees[e.ID]; ok {
		return sentinel.ErrConflict
	}
	s.employees[e.ID] = clone(e)
	s.order = append(s.order, e.ID)
	return nil
}

func (s *InMemoryStore) List(_ context.Context) ([]*models.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Employee, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, clone(s.employees[id]))
	}
	return out, nil
}

func (s *InMemoryStore) FindByID(_ context.Context, id uuid.UUID) (*models.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if e, ok := s.employees[id]; ok {
		return clone(e), nil
	}
	return nil, sentinel.ErrNotFound
}

// FindByRFID returns every employee holding rfid, oldest first.
func (s *InMemoryStore) FindByRFID(_ context.Context, rfid string) ([]*models.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Employee
	for _, id := range s.order {
		if e := s.employees[id]; e.RFID == rfid {
			out = append(out, clone(e))
		}
	}
	return out, nil
}

func (s *InMemoryStore) Update(_ context.Context, e *models.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.employees[e.ID]; !ok {
		return sentinel.ErrNotFound
	}
	s.employees[e.ID] = clone(e)
	return nil
}

func (s *InMemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.employees[id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.employees, id)
	s.order = slices.DeleteFunc(s.order, func(v uuid.UUID) bool { return v == id })
	return nil
}
