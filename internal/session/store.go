// Package session binds opaque session identifiers to hidden movies. A
// session's movie is drawn once, on first access, and never changes for
// the lifetime of the binding.
package session

import (
	"context"
	"errors"

	"github.com/rahulkv/movieguess/internal/catalog"
)

// ErrEmptyPool is returned when a store is asked to bind against a
// candidate pool with no movies in it.
var ErrEmptyPool = errors.New("session: empty candidate pool")

// Store resolves a session id to its bound movie, creating the binding on
// first sight. Implementations must be safe for concurrent use: two racing
// first requests for the same id observe the same movie.
type Store interface {
	GetOrCreate(ctx context.Context, sessionID string) (catalog.Movie, error)
}
