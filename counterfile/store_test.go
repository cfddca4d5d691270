package counterfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/captionkit/caption"
	"github.com/randalmurphal/captionkit/counter"
)

func TestStore_FetchCommit(t *testing.T) {
	ctx := context.Background()
	store := NewStore(t.TempDir())
	scope := counter.NamedScope("season")

	t.Run("missing store fails fetch", func(t *testing.T) {
		_, err := store.Fetch(ctx, scope)
		require.Error(t, err)
		assert.ErrorIs(t, err, counter.ErrScopeNotFound)
	})

	t.Run("created store starts empty", func(t *testing.T) {
		require.NoError(t, store.Create(ctx, "season"))
		snap, err := store.Fetch(ctx, scope)
		require.NoError(t, err)
		assert.True(t, snap.IsZero())
	})

	t.Run("commit then fetch round-trips", func(t *testing.T) {
		require.NoError(t, store.Commit(ctx, scope, counter.Snapshot{}.WithMain(3).WithCycle(1)))

		snap, err := store.Fetch(ctx, scope)
		require.NoError(t, err)
		main, ok := snap.Main()
		require.True(t, ok)
		assert.Equal(t, 3, main)
		cycle, ok := snap.Cycle()
		require.True(t, ok)
		assert.Equal(t, 1, cycle)
	})

	t.Run("snapshot survives a new store instance", func(t *testing.T) {
		reopened := NewStore(store.Dir())
		snap, err := reopened.Fetch(ctx, scope)
		require.NoError(t, err)
		main, _ := snap.Main()
		assert.Equal(t, 3, main)
	})

	t.Run("commit to deleted store fails", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "season"))
		err := store.Commit(ctx, scope, counter.Snapshot{}.WithMain(1))
		assert.ErrorIs(t, err, counter.ErrScopeNotFound)
	})
}

func TestStore_RejectsLocalScopes(t *testing.T) {
	ctx := context.Background()
	store := NewStore(t.TempDir())

	_, err := store.Fetch(ctx, counter.LocalScope(1))
	assert.ErrorIs(t, err, counter.ErrScopeMismatch)

	err = store.Commit(ctx, counter.LocalScope(1), counter.Snapshot{})
	assert.ErrorIs(t, err, counter.ErrScopeMismatch)
}

func TestStore_NameValidation(t *testing.T) {
	ctx := context.Background()
	store := NewStore(t.TempDir())

	for _, name := range []string{"", ".", ".hidden", "a/b", `a\b`, ".."} {
		t.Run("name "+name, func(t *testing.T) {
			err := store.Create(ctx, name)
			assert.ErrorIs(t, err, ErrInvalidName)
		})
	}
}

func TestStore_Management(t *testing.T) {
	ctx := context.Background()
	store := NewStore(t.TempDir())

	t.Run("create is exclusive", func(t *testing.T) {
		require.NoError(t, store.Create(ctx, "a"))
		err := store.Create(ctx, "a")
		assert.ErrorIs(t, err, ErrStoreExists)
	})

	t.Run("list is sorted and skips non-stores", func(t *testing.T) {
		require.NoError(t, store.Create(ctx, "c"))
		require.NoError(t, store.Create(ctx, "b"))
		require.NoError(t, os.WriteFile(filepath.Join(store.Dir(), "notes.txt"), []byte("x"), 0o644))

		names, err := store.List()
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, names)
	})

	t.Run("exists", func(t *testing.T) {
		ok, err := store.Exists("a")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = store.Exists("zzz")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("reset clears counters but keeps identity", func(t *testing.T) {
		scope := counter.NamedScope("a")
		require.NoError(t, store.Commit(ctx, scope, counter.Snapshot{}.WithMain(7)))

		before, err := store.Load(ctx, "a")
		require.NoError(t, err)
		require.NotEmpty(t, before.ID)

		require.NoError(t, store.Reset(ctx, "a"))

		after, err := store.Load(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, before.ID, after.ID)
		assert.Empty(t, after.Counters)

		snap, err := store.Fetch(ctx, scope)
		require.NoError(t, err)
		assert.True(t, snap.IsZero())
	})

	t.Run("delete missing store fails", func(t *testing.T) {
		err := store.Delete(ctx, "zzz")
		assert.ErrorIs(t, err, counter.ErrScopeNotFound)
	})

	t.Run("list of missing directory is empty", func(t *testing.T) {
		empty := NewStore(filepath.Join(t.TempDir(), "nope"))
		names, err := empty.List()
		require.NoError(t, err)
		assert.Empty(t, names)
	})
}

func TestStore_Validate(t *testing.T) {
	ctx := context.Background()
	store := NewStore(t.TempDir())

	require.NoError(t, store.Create(ctx, "good"))
	require.NoError(t, store.Commit(ctx, counter.NamedScope("good"), counter.Snapshot{}.WithMain(2)))
	require.NoError(t, store.Validate(ctx, "good"))

	// Hand-write a drifted document.
	bad := "id: \"\"\ncounters:\n  main: -1\n  bogus: 2\n"
	require.NoError(t, os.WriteFile(filepath.Join(store.Dir(), "bad.yaml"), []byte(bad), 0o644))

	err := store.Validate(ctx, "bad")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDocument)
	assert.Contains(t, err.Error(), "negative counter")
	assert.Contains(t, err.Error(), "bogus")

	err = store.ValidateAll(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDocument)
}

// TestStore_RendersThroughSequencer exercises the full bracket: fetch from
// the durable document, render, commit back.
func TestStore_RendersThroughSequencer(t *testing.T) {
	ctx := context.Background()
	store := NewStore(t.TempDir())
	require.NoError(t, store.Create(ctx, "uploads"))

	seq := caption.NewSequencer(store)
	scope := counter.NamedScope("uploads")

	out, _, err := seq.Render(ctx, scope, "Ep [01] [re(HD, SD)]")
	require.NoError(t, err)
	assert.Equal(t, "Ep 01 HD", out)

	out, _, err = seq.Render(ctx, scope, "Ep [01] [re(HD, SD)]")
	require.NoError(t, err)
	assert.Equal(t, "Ep 02 SD", out)

	// State is on disk, not in the sequencer.
	seq2 := caption.NewSequencer(NewStore(store.Dir()))
	out, _, err = seq2.Render(ctx, scope, "Ep [01] [re(HD, SD)]")
	require.NoError(t, err)
	assert.Equal(t, "Ep 03 HD", out)
}
