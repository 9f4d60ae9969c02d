// Package event persists raw swipe events.
package event

import (
	"context"
	"slices"
	"sync"

	"rollcall/internal/attendance/models"

	"github.com/google/uuid"
)

// InMemoryStore keeps events in arrival order. It backs local runs and tests.
type InMemoryStore struct {
	mu     sync.RWMutex
	events []models.Event
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Append(_ context.Context, ev models.Event) error {
	if ev.ID == uuid.Nil {
		ev.ID = uuid.New()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return nil
}

// Fetch returns matching events in arrival order.
func (s *InMemoryStore) Fetch(_ context.Context, filter models.QueryFilter) ([]models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Event
	for _, ev := range s.events {
		if matches(ev, filter) {
			out = append(out, ev)
		}
	}
	return out, nil
}

func matches(ev models.Event, f models.QueryFilter) bool {
	if len(f.Names) > 0 && !slices.Contains(f.Names, ev.Name) {
		return false
	}
	if len(f.Tokens) > 0 && !slices.Contains(f.Tokens, ev.RFID) {
		return false
	}
	if f.Date != "" && ev.Date != f.Date {
		return false
	}
	if f.Location != "" && ev.Location != f.Location {
		return false
	}
	return true
}
