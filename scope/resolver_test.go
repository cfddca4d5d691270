package scope

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/captionkit/counter"
)

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver()

	t.Run("defaults to local scope", func(t *testing.T) {
		assert.Equal(t, counter.LocalScope(1), r.Resolve(1))
	})

	t.Run("active store wins", func(t *testing.T) {
		r.Use(1, "season-2")
		assert.Equal(t, counter.NamedScope("season-2"), r.Resolve(1))

		name, ok := r.Active(1)
		require.True(t, ok)
		assert.Equal(t, "season-2", name)
	})

	t.Run("other users unaffected", func(t *testing.T) {
		assert.Equal(t, counter.LocalScope(2), r.Resolve(2))
	})

	t.Run("clear returns to local", func(t *testing.T) {
		r.Clear(1)
		assert.Equal(t, counter.LocalScope(1), r.Resolve(1))
		_, ok := r.Active(1)
		assert.False(t, ok)
	})
}

func TestResolver_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "scopes.yaml")

	t.Run("missing file loads empty", func(t *testing.T) {
		r, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, counter.LocalScope(1), r.Resolve(1))
	})

	t.Run("save and load round-trips", func(t *testing.T) {
		r := NewResolver()
		r.Use(1, "season-2")
		r.Use(7, "archive")
		require.NoError(t, r.Save(path))

		loaded, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, counter.NamedScope("season-2"), loaded.Resolve(1))
		assert.Equal(t, counter.NamedScope("archive"), loaded.Resolve(7))
		assert.Equal(t, counter.LocalScope(3), loaded.Resolve(3))
	})

	t.Run("corrupt file fails", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "scopes.yaml")
		require.NoError(t, os.WriteFile(bad, []byte("[:not yaml"), 0o644))
		_, err := Load(bad)
		assert.Error(t, err)
	})
}
