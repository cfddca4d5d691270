package counterfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/randalmurphal/captionkit/counter"
)

// Create makes a new named store with no counters. Fails with
// ErrStoreExists if the store already has a document.
func (s *Store) Create(ctx context.Context, name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	return s.withLock(ctx, name, func() error {
		if _, err := os.Stat(s.path(name)); err == nil {
			return fmt.Errorf("store %q: %w", name, ErrStoreExists)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("stat store document: %w", err)
		}
		return writeDocument(s.path(name), newDocument(time.Now().UTC()))
	})
}

// Delete removes a named store and its lock file. Fails with
// counter.ErrScopeNotFound if the store does not exist.
func (s *Store) Delete(ctx context.Context, name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	err := s.withLock(ctx, name, func() error {
		if err := os.Remove(s.path(name)); err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("store %q: %w", name, counter.ErrScopeNotFound)
			}
			return fmt.Errorf("delete store document: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	_ = os.Remove(s.lockPath(name))
	return nil
}

// Reset clears a store's counters so the next render seeds them afresh
// from the template literal. The document identity is preserved.
func (s *Store) Reset(ctx context.Context, name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	return s.update(ctx, name, func(doc *Document) {
		doc.setSnapshot(counter.Snapshot{}, time.Now().UTC())
	})
}

// List returns the names of all stores under the data directory, sorted.
// A missing data directory yields an empty list.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read data directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), storeExt) {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), storeExt)
		if validateName(name) != nil {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Exists reports whether a named store has a document.
func (s *Store) Exists(name string) (bool, error) {
	if err := validateName(name); err != nil {
		return false, err
	}
	if _, err := os.Stat(s.path(name)); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("stat store document: %w", err)
	}
	return true, nil
}

// Load returns a store's full document, for inspection and tooling.
func (s *Store) Load(ctx context.Context, name string) (Document, error) {
	if err := validateName(name); err != nil {
		return Document{}, err
	}
	return s.load(ctx, name)
}

// Validate checks a store document for drift: missing identity, negative
// counters, or unknown counter keys. Problems are reported wrapped in
// ErrInvalidDocument.
func (s *Store) Validate(ctx context.Context, name string) error {
	doc, err := s.Load(ctx, name)
	if err != nil {
		return err
	}

	var problems []string
	if doc.ID == "" {
		problems = append(problems, "missing id")
	}
	for key, value := range doc.Counters {
		if key != KeyMain && key != KeyCycle {
			problems = append(problems, fmt.Sprintf("unknown counter key %q", key))
		}
		if value < 0 {
			problems = append(problems, fmt.Sprintf("negative counter %s=%d", key, value))
		}
	}
	if len(problems) == 0 {
		return nil
	}
	sort.Strings(problems)
	return fmt.Errorf("store %q: %s: %w", name, strings.Join(problems, "; "), ErrInvalidDocument)
}

// ValidateAll validates every store under the data directory and returns
// the problems joined, or nil when all documents are clean.
func (s *Store) ValidateAll(ctx context.Context) error {
	names, err := s.List()
	if err != nil {
		return err
	}
	var errs []error
	for _, name := range names {
		if err := s.Validate(ctx, name); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// pathInDir reports whether path names a store document directly under the
// data directory, returning the store name.
func (s *Store) pathInDir(path string) (string, bool) {
	if filepath.Dir(path) != filepath.Clean(s.dir) {
		return "", false
	}
	base := filepath.Base(path)
	if !strings.HasSuffix(base, storeExt) {
		return "", false
	}
	name := strings.TrimSuffix(base, storeExt)
	if validateName(name) != nil {
		return "", false
	}
	return name, true
}
