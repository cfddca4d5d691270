package scope

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads a resolver's state from a YAML file mapping user IDs to
// active store names. A missing file yields an empty resolver.
func Load(path string) (*Resolver, error) {
	r := NewResolver()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return r, nil
		}
		return nil, fmt.Errorf("read scope state: %w", err)
	}

	active := make(map[int64]string)
	if err := yaml.Unmarshal(data, &active); err != nil {
		return nil, fmt.Errorf("parse scope state %s: %w", path, err)
	}
	for user, name := range active {
		if name != "" {
			r.active[user] = name
		}
	}
	return r, nil
}

// Save writes the resolver's state to a YAML file, creating parent
// directories as needed.
func (r *Resolver) Save(path string) error {
	r.mu.RLock()
	data, err := yaml.Marshal(r.active)
	r.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("encode scope state: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write scope state: %w", err)
	}
	return nil
}
