package counter

import "fmt"

// Snapshot holds the counter state for one scope at one point in time.
//
// The zero value is the empty snapshot: no keys present. Presence matters —
// an absent main counter is seeded from the template literal on first
// render, which is not the same as a main counter of zero.
type Snapshot struct {
	main     int
	cycle    int
	hasMain  bool
	hasCycle bool
}

// Main returns the main counter value and whether it is present.
func (s Snapshot) Main() (int, bool) {
	return s.main, s.hasMain
}

// Cycle returns the cycle index and whether it is present.
func (s Snapshot) Cycle() (int, bool) {
	return s.cycle, s.hasCycle
}

// WithMain returns a copy of the snapshot with the main counter set.
func (s Snapshot) WithMain(n int) Snapshot {
	s.main = n
	s.hasMain = true
	return s
}

// WithCycle returns a copy of the snapshot with the cycle index set.
func (s Snapshot) WithCycle(n int) Snapshot {
	s.cycle = n
	s.hasCycle = true
	return s
}

// IsZero reports whether the snapshot has no keys present.
func (s Snapshot) IsZero() bool {
	return !s.hasMain && !s.hasCycle
}

// String returns a compact representation for logs and errors.
func (s Snapshot) String() string {
	switch {
	case s.hasMain && s.hasCycle:
		return fmt.Sprintf("{main:%d cycle:%d}", s.main, s.cycle)
	case s.hasMain:
		return fmt.Sprintf("{main:%d}", s.main)
	case s.hasCycle:
		return fmt.Sprintf("{cycle:%d}", s.cycle)
	}
	return "{}"
}
