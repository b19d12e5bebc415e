// internal/store/memory.go
//
// In-memory implementation of the Store interface.
// Sessions are ephemeral by nature (timers, subscribers), so there is no
// durable backend.
//
// Characteristics:
//   - Stores *hub.Session objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Delete and Prune close the sessions they remove.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/akj2003/GamingHub/internal/hub"
)

// ErrNotFound is returned for unknown session IDs.
var ErrNotFound = errors.New("not found")

// Store defines the persistence interface for game sessions.
type Store interface {
	// Save adds or replaces a session.
	Save(ctx context.Context, s *hub.Session) error

	// Get retrieves a session by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*hub.Session, error)

	// Delete closes and removes a session, or returns ErrNotFound.
	Delete(ctx context.Context, id string) error

	// Prune closes and removes sessions idle since before cutoff and
	// reports how many were removed.
	Prune(ctx context.Context, cutoff time.Time) (int, error)

	// Len reports the number of stored sessions.
	Len() int
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex           // guards sessions map
	sessions map[string]*hub.Session // keyed by Session.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*hub.Session)}
}

func (m *memory) Save(ctx context.Context, s *hub.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if old, ok := m.sessions[s.ID]; ok && old != s {
		old.Close()
	}
	m.sessions[s.ID] = s
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*hub.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if !ok {
		return ErrNotFound
	}
	s.Close()
	return nil
}

func (m *memory) Prune(ctx context.Context, cutoff time.Time) (int, error) {
	var stale []*hub.Session
	m.mu.Lock()
	for id, s := range m.sessions {
		if err := ctx.Err(); err != nil {
			m.mu.Unlock()
			return 0, err
		}
		if s.LastActive().Before(cutoff) {
			stale = append(stale, s)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, s := range stale {
		s.Close()
	}
	return len(stale), nil
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
