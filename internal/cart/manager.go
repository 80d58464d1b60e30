package cart

import (
	"context"
	"sync"

	"storefront-service/internal/store"
)

// Manager hands out one Store per session id, constructing (and
// rehydrating) it on first use. It replaces any notion of a global cart
// singleton: carts are explicit objects with a constructor, injected
// where needed.
type Manager struct {
	mu       sync.Mutex
	sessions store.SessionStorer
	carts    map[string]*Store
}

// NewManager creates a Manager backed by the given session storer. A nil
// storer yields memory-only carts.
func NewManager(sessions store.SessionStorer) *Manager {
	return &Manager{
		sessions: sessions,
		carts:    make(map[string]*Store),
	}
}

// ForSession returns the cart for the session, creating it on first use.
func (m *Manager) ForSession(ctx context.Context, sessionID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.carts[sessionID]; ok {
		return s
	}
	s := NewStore(ctx, m.sessions, sessionID)
	m.carts[sessionID] = s
	return s
}

// Evict drops the in-memory cart for a session; the persisted payload is
// untouched and the next ForSession call rehydrates from it.
func (m *Manager) Evict(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, sessionID)
}
