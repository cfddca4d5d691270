// Package counterfile persists named counter stores as YAML documents.
//
// Each named store is one document under a data directory:
//
//	<dir>/<name>.yaml
//
// holding an identity block (uuid, timestamps) and the counters map. Every
// read-modify-write is bracketed by an advisory file lock (a sibling .lock
// file), so separate processes sharing a data directory do not lose
// increments.
//
// Store implements counter.Store for named scopes and additionally exposes
// the management operations the surrounding application needs: Create,
// Delete, List, Reset, and Validate. Watch tails the data directory with
// fsnotify so a long-lived process notices external edits and resets.
package counterfile
