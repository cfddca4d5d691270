package counterfile

import "errors"

// Sentinel errors for file-backed counter stores.
var (
	// ErrStoreExists indicates Create was called for a name that already
	// has a document.
	ErrStoreExists = errors.New("store already exists")

	// ErrInvalidName indicates a store name is empty or would escape the
	// data directory.
	ErrInvalidName = errors.New("invalid store name")

	// ErrLockTimeout indicates the file lock could not be acquired within
	// the configured timeout.
	ErrLockTimeout = errors.New("could not acquire store lock")

	// ErrInvalidDocument indicates a store document failed validation.
	ErrInvalidDocument = errors.New("invalid store document")
)
