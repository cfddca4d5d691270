// Package caption renders caption templates with stateful counter tokens.
//
// A template is opaque text carrying up to three kinds of bracketed tokens:
//
//	[01]        counter: substituted with the next episode number,
//	            zero-padded to the literal's width; [(05)] keeps the parens
//	[text (3)]  conditional: substituted with "text " when the episode
//	            number of this render equals 3, otherwise removed
//	[re(A, B)]  cycle: substituted round-robin from the item list
//
// Scanning and rendering are pure: Render takes the prior counter snapshot
// and returns the rendered string plus the updated snapshot, and the caller
// commits the snapshot to whichever store is active. Sequencer wraps that
// fetch-render-commit bracket with per-scope serialization so concurrent
// renders against one scope never observe the same counter value.
//
// Malformed bracket text is not an error; it passes through unchanged.
package caption
