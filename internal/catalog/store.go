package catalog

import (
	"context"
	"sync/atomic"
)

// Source produces a validated catalog from some backing data — a JSON file
// or the rate tables in Postgres.
type Source interface {
	Load(ctx context.Context) (*Catalog, error)
}

// Store holds the catalog currently in service and replaces it atomically
// on reload. Readers always observe a complete catalog, old or new, never a
// partial one.
type Store struct {
	source  Source
	current atomic.Pointer[Catalog]
}

func NewStore(source Source) *Store {
	return &Store{source: source}
}

// Reload loads a fresh catalog from the source and swaps it in. On failure
// the previous catalog, if any, stays in service.
func (s *Store) Reload(ctx context.Context) (*Catalog, error) {
	cat, err := s.source.Load(ctx)
	if err != nil {
		return nil, err
	}
	s.current.Store(cat)
	return cat, nil
}

// Current returns the catalog in service, or nil before the first
// successful Reload.
func (s *Store) Current() *Catalog {
	return s.current.Load()
}
