package session

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/rahulkv/movieguess/internal/catalog"
)

// MemoryStore keeps bindings in a process-local map. There is no eviction:
// sessions live until the process exits, which is acceptable at this
// game's scale but caps how long a single deployment can run hot.
type MemoryStore struct {
	pool *catalog.Pool

	mu       sync.Mutex
	rng      *rand.Rand
	sessions map[string]catalog.Movie
}

func NewMemoryStore(pool *catalog.Pool) *MemoryStore {
	return &MemoryStore{
		pool:     pool,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		sessions: make(map[string]catalog.Movie),
	}
}

// GetOrCreate returns the movie bound to sessionID, drawing one uniformly
// from the pool on first sight. The draw and insert happen under one lock,
// so a racing duplicate request cannot bind a second movie.
func (s *MemoryStore) GetOrCreate(_ context.Context, sessionID string) (catalog.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if movie, ok := s.sessions[sessionID]; ok {
		return movie, nil
	}
	if s.pool.Len() == 0 {
		return catalog.Movie{}, ErrEmptyPool
	}
	movie := s.pool.At(s.rng.Intn(s.pool.Len()))
	s.sessions[sessionID] = movie
	return movie, nil
}

// Len reports the number of live bindings.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
