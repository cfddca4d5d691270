// Package captionkit provides caption template rendering with stateful
// counters for sequential file uploads.
//
// captionkit renders a user-authored caption template each time a file is
// published, advancing numeric counters embedded in the template so that
// consecutive renders produce sequential episode numbers, conditional
// inserts, and round-robin text. Each subpackage can be used independently:
//
//   - caption: Token scanning and template rendering
//   - counter: Counter snapshots, scopes, and the store contract
//   - counterfile: Durable named counter stores backed by YAML files
//   - scope: Per-user active-store resolution
//   - config: TOML configuration with environment fallbacks
//
// # Quick Start
//
// Rendering against an in-memory store:
//
//	import (
//		"github.com/randalmurphal/captionkit/caption"
//		"github.com/randalmurphal/captionkit/counter"
//	)
//
//	seq := caption.NewSequencer(counter.NewLocal())
//	out, _, _ := seq.Render(ctx, counter.LocalScope(42), "Show [01]")
//	// out == "Show 01"; the next render yields "Show 02".
//
// Durable named stores:
//
//	import "github.com/randalmurphal/captionkit/counterfile"
//	store := counterfile.NewStore("/var/lib/captionkit/stores")
//	seq := caption.NewSequencer(store)
//	out, _, _ := seq.Render(ctx, counter.NamedScope("season-2"), "Ep [(05)]")
//
// # Design Philosophy
//
//   - Rendering is pure: all persistence happens at the call boundary
//   - Interfaces for extensibility, concrete types for simplicity
//   - Sensible defaults with full configurability
package captionkit
