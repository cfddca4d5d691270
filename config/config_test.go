package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom(t *testing.T) {
	t.Run("reads toml values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		content := `
data_dir = "/srv/captionkit/stores"
default_template = "Ep [01]"
lock_timeout = "5s"
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cfg, err := LoadFrom(path)
		require.NoError(t, err)
		assert.Equal(t, "/srv/captionkit/stores", cfg.DataDir)
		assert.Equal(t, "Ep [01]", cfg.DefaultTemplate)
		assert.Equal(t, 5*time.Second, cfg.LockTimeout.Duration)
	})

	t.Run("environment fills gaps", func(t *testing.T) {
		t.Setenv("CAPTIONKIT_DATA_DIR", "/env/stores")
		t.Setenv("CAPTIONKIT_DEFAULT_TEMPLATE", "[re(A, B)]")
		t.Setenv("CAPTIONKIT_LOCK_TIMEOUT", "2s")

		cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
		require.NoError(t, err)
		assert.Equal(t, "/env/stores", cfg.DataDir)
		assert.Equal(t, "[re(A, B)]", cfg.DefaultTemplate)
		assert.Equal(t, 2*time.Second, cfg.LockTimeout.Duration)
	})

	t.Run("file wins over environment", func(t *testing.T) {
		t.Setenv("CAPTIONKIT_DATA_DIR", "/env/stores")

		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte(`data_dir = "/file/stores"`), 0o644))

		cfg, err := LoadFrom(path)
		require.NoError(t, err)
		assert.Equal(t, "/file/stores", cfg.DataDir)
	})

	t.Run("missing file falls back to defaults", func(t *testing.T) {
		t.Setenv("CAPTIONKIT_DATA_DIR", "")
		t.Setenv("XDG_DATA_HOME", t.TempDir())

		cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
		require.NoError(t, err)
		assert.NotEmpty(t, cfg.DataDir)
		assert.Contains(t, cfg.DataDir, filepath.Join("captionkit", "stores"))
	})

	t.Run("invalid lock timeout env fails", func(t *testing.T) {
		t.Setenv("CAPTIONKIT_LOCK_TIMEOUT", "soon")
		_, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
		assert.Error(t, err)
	})

	t.Run("invalid toml fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte("data_dir = ["), 0o644))
		_, err := LoadFrom(path)
		assert.Error(t, err)
	})
}

func TestConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	dir, err := ConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "captionkit"), dir)
}
