package counter

import "errors"

// Sentinel errors for counter stores.
//
// Usage pattern: wrap sentinels with context at call site using fmt.Errorf:
//
//	return fmt.Errorf("store %q: %w", name, ErrScopeNotFound)
//
// This preserves errors.Is() compatibility while adding context.
var (
	// ErrScopeNotFound indicates a named scope has no backing document.
	// Local scope lookups never return this; an unknown user simply has an
	// empty snapshot.
	ErrScopeNotFound = errors.New("scope not found")

	// ErrScopeMismatch indicates a store was asked to serve a scope kind it
	// does not back (e.g. a named scope sent to the in-memory local store).
	ErrScopeMismatch = errors.New("scope not supported by this store")

	// ErrNoBackend indicates a Router has no store configured for the
	// scope's kind.
	ErrNoBackend = errors.New("no store backend for scope")
)
