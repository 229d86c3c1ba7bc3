package memory

import (
	"context"
	"sync"

	"story-gate/internal/domain/eventlog"
)

// Store es un Repository en memoria (tests / modo dev sin disco).
type Store struct {
	mu   sync.RWMutex
	recs []eventlog.Record
}

func New() *Store {
	return &Store{}
}

func (s *Store) Append(ctx context.Context, rec eventlog.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recs = append(s.recs, rec)
	return nil
}

func (s *Store) FindLatest(ctx context.Context, kind eventlog.Kind) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := len(s.recs) - 1; i >= 0; i-- {
		if s.recs[i].Kind == kind && s.recs[i].StoryURL != "" {
			return s.recs[i].StoryURL, nil
		}
	}
	return "", nil
}

// All devuelve una copia de los registros en orden de append.
func (s *Store) All() []eventlog.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]eventlog.Record, len(s.recs))
	copy(out, s.recs)
	return out
}
