package counter

import (
	"fmt"
	"strconv"
)

type scopeKind int

const (
	scopeLocal scopeKind = iota
	scopeNamed
)

// Scope identifies whose counters a render reads and writes: a per-user
// local scope or a named store. The two are mutually exclusive per render.
type Scope struct {
	kind scopeKind
	user int64
	name string
}

// LocalScope returns the scope for a user's in-memory counters.
func LocalScope(userID int64) Scope {
	return Scope{kind: scopeLocal, user: userID}
}

// NamedScope returns the scope for a named, durably persisted store.
func NamedScope(name string) Scope {
	return Scope{kind: scopeNamed, name: name}
}

// IsNamed reports whether the scope refers to a named store.
func (s Scope) IsNamed() bool {
	return s.kind == scopeNamed
}

// UserID returns the user identity for local scopes (zero for named).
func (s Scope) UserID() int64 {
	return s.user
}

// Name returns the store name for named scopes (empty for local).
func (s Scope) Name() string {
	return s.name
}

// Key returns a stable string identity for the scope, suitable for keying
// per-scope locks and maps.
func (s Scope) Key() string {
	if s.kind == scopeNamed {
		return "store:" + s.name
	}
	return "user:" + strconv.FormatInt(s.user, 10)
}

// String implements fmt.Stringer.
func (s Scope) String() string {
	if s.kind == scopeNamed {
		return fmt.Sprintf("store %q", s.name)
	}
	return fmt.Sprintf("user %d", s.user)
}
