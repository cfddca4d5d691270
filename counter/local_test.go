package counter

import (
	"context"
	"errors"
	"testing"
)

func TestLocal_FetchCommit(t *testing.T) {
	store := NewLocal()
	ctx := context.Background()

	// Unknown users have an empty snapshot; local fetches never fail.
	snap, err := store.Fetch(ctx, LocalScope(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !snap.IsZero() {
		t.Errorf("expected empty snapshot, got %v", snap)
	}

	if err := store.Commit(ctx, LocalScope(1), Snapshot{}.WithMain(5)); err != nil {
		t.Fatalf("commit: %v", err)
	}

	snap, err = store.Fetch(ctx, LocalScope(1))
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if main, ok := snap.Main(); !ok || main != 5 {
		t.Errorf("got %v, want {main:5}", snap)
	}

	// Another user is unaffected.
	snap, _ = store.Fetch(ctx, LocalScope(2))
	if !snap.IsZero() {
		t.Errorf("user 2 should be empty, got %v", snap)
	}
}

func TestLocal_Reset(t *testing.T) {
	store := NewLocal()
	ctx := context.Background()

	_ = store.Commit(ctx, LocalScope(1), Snapshot{}.WithMain(5).WithCycle(2))
	store.Reset(1)

	snap, _ := store.Fetch(ctx, LocalScope(1))
	if !snap.IsZero() {
		t.Errorf("expected empty snapshot after reset, got %v", snap)
	}
}

func TestLocal_RejectsNamedScopes(t *testing.T) {
	store := NewLocal()
	ctx := context.Background()

	if _, err := store.Fetch(ctx, NamedScope("s")); !errors.Is(err, ErrScopeMismatch) {
		t.Errorf("fetch: got %v, want ErrScopeMismatch", err)
	}
	if err := store.Commit(ctx, NamedScope("s"), Snapshot{}); !errors.Is(err, ErrScopeMismatch) {
		t.Errorf("commit: got %v, want ErrScopeMismatch", err)
	}
}
