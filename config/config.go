package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Environment variable fallbacks.
const (
	envDataDir         = "CAPTIONKIT_DATA_DIR"
	envDefaultTemplate = "CAPTIONKIT_DEFAULT_TEMPLATE"
	envLockTimeout     = "CAPTIONKIT_LOCK_TIMEOUT"
)

// Duration wraps time.Duration so TOML values can be written as "3s".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = parsed
	return nil
}

// Config holds user configuration.
type Config struct {
	// DataDir is where named store documents live.
	DataDir string `toml:"data_dir"`

	// DefaultTemplate is rendered when a render call supplies no
	// template.
	DefaultTemplate string `toml:"default_template"`

	// LockTimeout bounds store lock acquisition (zero means the store
	// default).
	LockTimeout Duration `toml:"lock_timeout"`
}

// ConfigDir returns the configuration directory path. Uses
// XDG_CONFIG_HOME if set, otherwise ~/.config/captionkit.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "captionkit"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "captionkit"), nil
}

// DefaultDataDir returns where store documents live when unconfigured.
// Uses XDG_DATA_HOME if set, otherwise ~/.local/share/captionkit/stores.
func DefaultDataDir() (string, error) {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "captionkit", "stores"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "captionkit", "stores"), nil
}

// Load reads the default config file and applies environment fallbacks.
// A missing config file is not an error.
func Load() (Config, error) {
	dir, err := ConfigDir()
	if err != nil {
		return Config{}, err
	}
	return LoadFrom(filepath.Join(dir, "config.toml"))
}

// LoadFrom reads a specific config file and applies environment
// fallbacks, then defaults. A missing file is not an error.
func LoadFrom(path string) (Config, error) {
	var cfg Config

	if _, err := toml.DecodeFile(path, &cfg); err != nil && !os.IsNotExist(err) {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	// Environment fallbacks, only for values the file did not set.
	if cfg.DataDir == "" {
		cfg.DataDir = os.Getenv(envDataDir)
	}
	if cfg.DefaultTemplate == "" {
		cfg.DefaultTemplate = os.Getenv(envDefaultTemplate)
	}
	if cfg.LockTimeout.Duration == 0 {
		if raw := os.Getenv(envLockTimeout); raw != "" {
			parsed, err := time.ParseDuration(raw)
			if err != nil {
				return cfg, fmt.Errorf("invalid %s %q: %w", envLockTimeout, raw, err)
			}
			cfg.LockTimeout.Duration = parsed
		}
	}

	// Defaults.
	if cfg.DataDir == "" {
		dataDir, err := DefaultDataDir()
		if err != nil {
			return cfg, err
		}
		cfg.DataDir = dataDir
	}

	return cfg, nil
}
