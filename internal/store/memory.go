// internal/store/memory.go
//
// In-memory implementation of the Store interface.
// Used in tests and when BOSSDLE_STORE=memory; nothing survives a restart.
//
// Characteristics:
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Slices are copied on the way in and out so callers cannot alias state.

package store

import (
	"context"
	"sync"

	"github.com/robalobadob/bossdle/internal/game"
)

// Store is the persistence boundary consumed by the engine, plus Close.
type Store interface {
	game.Persistence
	Close() error
}

// memory is an in-memory Store.
type memory struct {
	mu       sync.RWMutex // guards everything below
	attempts []string
	day      int
	hasDay   bool
	stats    game.Stats
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{}
}

func (m *memory) LoadAttempts(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.attempts...), nil
}

func (m *memory) SaveAttempts(ctx context.Context, names []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attempts = append([]string(nil), names...)
	return nil
}

func (m *memory) LoadLastDay(ctx context.Context) (int, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.day, m.hasDay, nil
}

func (m *memory) SaveLastDay(ctx context.Context, day int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.day, m.hasDay = day, true
	return nil
}

func (m *memory) LoadStats(ctx context.Context) (game.Stats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.stats, nil
}

func (m *memory) SaveStats(ctx context.Context, s game.Stats) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats = s
	return nil
}

func (m *memory) Close() error { return nil }
