package caption

import "errors"

// Sentinel errors for caption rendering.
var (
	// ErrNoStore is returned when a Sequencer is constructed without a
	// counter store.
	ErrNoStore = errors.New("sequencer has no counter store")
)
