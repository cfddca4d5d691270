package counter

import (
	"context"
	"fmt"
)

// Router dispatches local scopes and named scopes to separate backends, so
// callers hold a single Store regardless of which scope a render resolves
// to. Either backend may be nil; scopes routed to a nil backend fail with
// ErrNoBackend.
type Router struct {
	local Store
	named Store
}

// NewRouter creates a Router over the given backends.
func NewRouter(local, named Store) *Router {
	return &Router{local: local, named: named}
}

// Fetch implements Store.
func (r *Router) Fetch(ctx context.Context, scope Scope) (Snapshot, error) {
	store, err := r.route(scope)
	if err != nil {
		return Snapshot{}, err
	}
	return store.Fetch(ctx, scope)
}

// Commit implements Store.
func (r *Router) Commit(ctx context.Context, scope Scope, snap Snapshot) error {
	store, err := r.route(scope)
	if err != nil {
		return err
	}
	return store.Commit(ctx, scope, snap)
}

func (r *Router) route(scope Scope) (Store, error) {
	store := r.local
	if scope.IsNamed() {
		store = r.named
	}
	if store == nil {
		return nil, fmt.Errorf("%s: %w", scope, ErrNoBackend)
	}
	return store, nil
}
