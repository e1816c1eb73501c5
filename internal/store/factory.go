package store

import (
	"errors"
	"strings"
)

const (
	EngineMemory = "memory"
	EngineJSON   = "json"
	EngineSQLite = "sqlite"
)

// NewByEngine builds the Store named by engine. path is ignored for memory.
func NewByEngine(engine string, path string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(engine)) {
	case "", EngineSQLite:
		return NewSQLiteStore(path)
	case EngineJSON:
		return NewJSONStore(path)
	case EngineMemory:
		return NewMemoryStore(), nil
	default:
		return nil, errors.New("unsupported store engine: " + engine)
	}
}
