// Package debounce suppresses repeated swipes that arrive within a short window.
package debounce

import (
	"context"
	"sync"
	"time"
)

// InMemoryGuard remembers the last accepted swipe per key.
type InMemoryGuard struct {
	mu   sync.Mutex
	seen map[string]time.Time
	now  func() time.Time
}

// InMemoryOption configures an InMemoryGuard.
type InMemoryOption func(*InMemoryGuard)

// WithClock overrides the guard's time source.
func WithClock(now func() time.Time) InMemoryOption {
	return func(g *InMemoryGuard) {
		if now != nil {
			g.now = now
		}
	}
}

func NewInMemoryGuard(opts ...InMemoryOption) *InMemoryGuard {
	g := &InMemoryGuard{
		seen: make(map[string]time.Time),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Allow reports whether key may pass. The first call for a key within window
// wins; later calls are rejected until the window elapses.
func (g *InMemoryGuard) Allow(_ context.Context, key string, window time.Duration) (bool, error) {
	if window <= 0 {
		return true, nil
	}
	now := g.now()

	g.mu.Lock()
	defer g.mu.Unlock()

	if until, ok := g.seen[key]; ok && now.Before(until) {
		return false, nil
	}
	g.seen[key] = now.Add(window)
	g.evictExpired(now)
	return true, nil
}

// evictExpired keeps the map bounded by the number of keys live in one window.
func (g *InMemoryGuard) evictExpired(now time.Time) {
	for k, until := range g.seen {
		if !now.Before(until) {
			delete(g.seen, k)
		}
	}
}
