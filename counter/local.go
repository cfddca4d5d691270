package counter

import (
	"context"
	"fmt"
	"sync"
)

// Local is an in-memory Store keyed by user identity. It backs local
// scopes only; named scopes belong to a durable backend.
type Local struct {
	mu    sync.RWMutex
	users map[int64]Snapshot
}

// NewLocal creates an empty in-memory store.
func NewLocal() *Local {
	return &Local{users: make(map[int64]Snapshot)}
}

// Fetch returns the user's snapshot. Unknown users get the empty snapshot;
// local lookups never fail.
func (l *Local) Fetch(_ context.Context, scope Scope) (Snapshot, error) {
	if scope.IsNamed() {
		return Snapshot{}, fmt.Errorf("local store cannot serve %s: %w", scope, ErrScopeMismatch)
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.users[scope.UserID()], nil
}

// Commit stores the user's snapshot.
func (l *Local) Commit(_ context.Context, scope Scope, snap Snapshot) error {
	if scope.IsNamed() {
		return fmt.Errorf("local store cannot serve %s: %w", scope, ErrScopeMismatch)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.users[scope.UserID()] = snap
	return nil
}

// Reset discards the user's counters. The next render seeds them afresh
// from the template literal.
func (l *Local) Reset(userID int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.users, userID)
}
