package counter

import "context"

// Store is the persistence capability bracketing a render: fetch the prior
// snapshot, render, commit the updated snapshot.
//
// Fetch fails with ErrScopeNotFound when a named scope has no backing
// document; local scope lookups never fail, an absent user yields the empty
// snapshot. Commit failures must be surfaced to the caller, never
// swallowed, since a lost commit causes counter drift.
type Store interface {
	// Fetch returns the snapshot currently stored for the scope.
	Fetch(ctx context.Context, scope Scope) (Snapshot, error)

	// Commit replaces the stored snapshot for the scope.
	Commit(ctx context.Context, scope Scope, snap Snapshot) error
}
