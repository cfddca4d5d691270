package counterfile

import (
	"context"
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
)

// Op describes what happened to a watched store document.
type Op int

const (
	// OpWrite means the document was created or rewritten.
	OpWrite Op = iota

	// OpRemove means the document was deleted or renamed away.
	OpRemove
)

// String implements fmt.Stringer.
func (o Op) String() string {
	if o == OpRemove {
		return "remove"
	}
	return "write"
}

// Event reports an external change to one named store.
type Event struct {
	// Store is the store name the changed document belongs to.
	Store string

	// Op is the kind of change.
	Op Op
}

// Watch observes the data directory for external changes to store
// documents (edits, resets, deletions from other processes) and delivers
// one Event per change until ctx is cancelled, at which point the channel
// is closed.
//
// Lock files, temp files, and non-store entries are filtered out. Events
// may coalesce under heavy churn; consumers should treat an event as "the
// store changed, re-fetch if you care", not as a precise edit log.
func (s *Store) Watch(ctx context.Context) (<-chan Event, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(s.dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watch data directory: %w", err)
	}

	events := make(chan Event)
	go func() {
		defer close(events)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return

			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				name, ok := s.pathInDir(ev.Name)
				if !ok {
					continue
				}
				var op Op
				switch {
				case ev.Op.Has(fsnotify.Remove) || ev.Op.Has(fsnotify.Rename):
					op = OpRemove
				case ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Write):
					op = OpWrite
				default:
					continue
				}
				select {
				case events <- Event{Store: name, Op: op}:
				case <-ctx.Done():
					return
				}

			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Watcher errors are transient on the platforms we
				// support; keep watching.
			}
		}
	}()

	return events, nil
}
