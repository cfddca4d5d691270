// Package scope decides which counter scope a user's renders run against.
//
// A user either has an active named store, in which case renders read and
// write that store's durable counters, or no active store, in which case
// the per-user local counters apply. The Resolver tracks the active store
// per user and turns a user identity into a counter.Scope; it can be
// persisted to a small YAML file so CLI invocations share state.
package scope
