// Package counter defines counter snapshots, scopes, and the store
// contract used by caption rendering.
//
// A Snapshot is the {main, cycle} integer state belonging to one scope at
// one point in time. Snapshots are immutable values: WithMain and WithCycle
// return updated copies, and absence of a key is tracked explicitly because
// the renderer seeds absent counters from the template's own literal.
//
// A Scope identifies whose counters are being read and written: either a
// Local scope keyed by user identity and held in process memory, or a Named
// scope keyed by store name and durably persisted (see package counterfile).
//
// Store is the capability the renderer's caller uses to fetch a snapshot
// before rendering and commit the updated snapshot after. Implementations
// in this package: Local (in-memory, per-user) and Router (dispatches Local
// scopes and Named scopes to separate backends).
package counter
