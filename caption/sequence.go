package caption

import (
	"context"
	"fmt"
	"sync"

	"github.com/randalmurphal/captionkit/counter"
)

// Sequencer brackets Render with the fetch and commit calls against a
// counter store, serializing the whole fetch-render-commit sequence per
// scope identity. Two concurrent renders against the same scope therefore
// never fetch the same prior value: each observes a monotonically unique
// counter, with no duplicates and no gaps.
type Sequencer struct {
	store counter.Store

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewSequencer creates a Sequencer over the given store.
func NewSequencer(store counter.Store) *Sequencer {
	return &Sequencer{
		store: store,
		locks: make(map[string]*sync.Mutex),
	}
}

// Render fetches the scope's snapshot, renders the template, and commits
// the updated snapshot, all under the scope's lock.
//
// Fetch and commit failures are returned to the caller, never retried
// internally: a fetch failure leaves the caller free to fall back to a
// default snapshot, and a swallowed commit failure would cause counter
// drift. Renders that change no counters skip the commit.
func (s *Sequencer) Render(ctx context.Context, scope counter.Scope, template string) (string, counter.Snapshot, error) {
	if s.store == nil {
		return "", counter.Snapshot{}, ErrNoStore
	}

	lock := s.scopeLock(scope.Key())
	lock.Lock()
	defer lock.Unlock()

	prior, err := s.store.Fetch(ctx, scope)
	if err != nil {
		return "", counter.Snapshot{}, fmt.Errorf("fetch counters for %s: %w", scope, err)
	}

	rendered, next := Render(template, prior)
	if next == prior {
		return rendered, next, nil
	}

	if err := s.store.Commit(ctx, scope, next); err != nil {
		return "", counter.Snapshot{}, fmt.Errorf("commit counters for %s: %w", scope, err)
	}
	return rendered, next, nil
}

// scopeLock returns the mutex for a scope key, creating it on first use.
// Locks are never discarded; the key space is bounded by the number of
// distinct users and stores.
func (s *Sequencer) scopeLock(key string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[key] = lock
	}
	return lock
}
