package scope

import (
	"sync"

	"github.com/randalmurphal/captionkit/counter"
)

// Resolver tracks the active named store per user and resolves each render
// to a local or named scope. The zero value is not usable; call
// NewResolver.
type Resolver struct {
	mu     sync.RWMutex
	active map[int64]string
}

// NewResolver creates a Resolver with no active stores.
func NewResolver() *Resolver {
	return &Resolver{active: make(map[int64]string)}
}

// Use activates a named store for the user. Subsequent Resolve calls for
// that user return the named scope until Clear.
func (r *Resolver) Use(userID int64, store string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active[userID] = store
}

// Clear deactivates the user's named store, returning renders to the
// local per-user counters.
func (r *Resolver) Clear(userID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.active, userID)
}

// Active returns the user's active store name, if any.
func (r *Resolver) Active(userID int64) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	name, ok := r.active[userID]
	return name, ok
}

// Resolve returns the scope the user's next render should run against:
// the active named store when one is set, else the user's local scope.
func (r *Resolver) Resolve(userID int64) counter.Scope {
	if name, ok := r.Active(userID); ok {
		return counter.NamedScope(name)
	}
	return counter.LocalScope(userID)
}
