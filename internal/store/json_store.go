// internal/store/json_store.go
//
// JSON file Store. The whole state is one small document rewritten on every
// save (temp file + rename, so a crash never leaves a torn file).

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/robalobadob/bossdle/internal/game"
)

// fileState mirrors the three persisted keys.
type fileState struct {
	Attempts []string    `json:"erdle_attempts_v1,omitempty"`
	LastDay  *int        `json:"erdle_last_date_v1,omitempty"`
	Stats    *game.Stats `json:"erdle_stats_v1,omitempty"`
}

type JSONStore struct {
	filePath string
	mu       sync.RWMutex
	state    fileState
}

func NewJSONStore(filePath string) (*JSONStore, error) {
	s := &JSONStore{filePath: filePath}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *JSONStore) LoadAttempts(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.state.Attempts...), nil
}

func (s *JSONStore) SaveAttempts(ctx context.Context, names []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Attempts = append([]string(nil), names...)
	return s.persistLocked()
}

func (s *JSONStore) LoadLastDay(ctx context.Context) (int, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.LastDay == nil {
		return 0, false, nil
	}
	return *s.state.LastDay, true, nil
}

func (s *JSONStore) SaveLastDay(ctx context.Context, day int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.LastDay = &day
	return s.persistLocked()
}

func (s *JSONStore) LoadStats(ctx context.Context) (game.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.Stats == nil {
		return game.Stats{}, nil
	}
	return *s.state.Stats, nil
}

func (s *JSONStore) SaveStats(ctx context.Context, st game.Stats) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Stats = &st
	return s.persistLocked()
}

func (s *JSONStore) Close() error { return nil }

func (s *JSONStore) load() error {
	data, err := os.ReadFile(s.filePath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, &s.state); err != nil {
		return fmt.Errorf("decode %s: %w", s.filePath, err)
	}
	return nil
}

func (s *JSONStore) persistLocked() error {
	if dir := filepath.Dir(s.filePath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.filePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.filePath)
}
