package counterfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/captionkit/counter"
)

// DefaultLockTimeout bounds how long a read or write waits for the file
// lock before giving up.
const DefaultLockTimeout = 3 * time.Second

// DefaultRetryInterval is how often lock acquisition is retried.
const DefaultRetryInterval = 100 * time.Millisecond

const storeExt = ".yaml"

// Store persists named counter stores as YAML documents under a data
// directory. It implements counter.Store for named scopes; local scopes
// belong to the in-memory store and are rejected with
// counter.ErrScopeMismatch.
type Store struct {
	dir           string
	lockTimeout   time.Duration
	retryInterval time.Duration
}

// NewStore creates a Store over the given data directory with default lock
// settings. The directory is created on first write.
func NewStore(dir string) *Store {
	return &Store{
		dir:           dir,
		lockTimeout:   DefaultLockTimeout,
		retryInterval: DefaultRetryInterval,
	}
}

// NewStoreWithTimeout creates a Store with a custom lock timeout. If
// timeout is <= 0, the default is used.
func NewStoreWithTimeout(dir string, timeout time.Duration) *Store {
	s := NewStore(dir)
	if timeout > 0 {
		s.lockTimeout = timeout
	}
	return s
}

// Dir returns the data directory backing the store.
func (s *Store) Dir() string {
	return s.dir
}

// Fetch implements counter.Store. A named scope without a document fails
// with counter.ErrScopeNotFound.
func (s *Store) Fetch(ctx context.Context, scope counter.Scope) (counter.Snapshot, error) {
	name, err := s.scopeName(scope)
	if err != nil {
		return counter.Snapshot{}, err
	}
	doc, err := s.load(ctx, name)
	if err != nil {
		return counter.Snapshot{}, err
	}
	return doc.snapshot(), nil
}

// Commit implements counter.Store. Committing to a store deleted since the
// fetch fails with counter.ErrScopeNotFound rather than resurrecting it.
func (s *Store) Commit(ctx context.Context, scope counter.Scope, snap counter.Snapshot) error {
	name, err := s.scopeName(scope)
	if err != nil {
		return err
	}
	return s.update(ctx, name, func(doc *Document) {
		doc.setSnapshot(snap, time.Now().UTC())
	})
}

func (s *Store) scopeName(scope counter.Scope) (string, error) {
	if !scope.IsNamed() {
		return "", fmt.Errorf("file store cannot serve %s: %w", scope, counter.ErrScopeMismatch)
	}
	if err := validateName(scope.Name()); err != nil {
		return "", err
	}
	return scope.Name(), nil
}

// validateName rejects names that are empty, hidden, or would escape the
// data directory.
func validateName(name string) error {
	if name == "" || strings.HasPrefix(name, ".") {
		return fmt.Errorf("%q: %w", name, ErrInvalidName)
	}
	if strings.ContainsAny(name, `/\`) || name != filepath.Base(name) {
		return fmt.Errorf("%q: %w", name, ErrInvalidName)
	}
	return nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+storeExt)
}

func (s *Store) lockPath(name string) string {
	return filepath.Join(s.dir, name+".lock")
}

// withLock runs fn while holding the store's advisory file lock. The data
// directory must exist before locking, since the lock file lives inside it.
func (s *Store) withLock(ctx context.Context, name string, fn func() error) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	lock := flock.New(s.lockPath(name))
	lockCtx, cancel := context.WithTimeout(ctx, s.lockTimeout)
	defer cancel()

	locked, err := lock.TryLockContext(lockCtx, s.retryInterval)
	if err != nil {
		return fmt.Errorf("lock store %q: %w", name, err)
	}
	if !locked {
		return fmt.Errorf("store %q: %w", name, ErrLockTimeout)
	}
	defer func() { _ = lock.Unlock() }()

	return fn()
}

// load reads a store document under the file lock.
func (s *Store) load(ctx context.Context, name string) (Document, error) {
	var doc Document
	err := s.withLock(ctx, name, func() error {
		read, err := readDocument(s.path(name))
		if err != nil {
			return err
		}
		doc = read
		return nil
	})
	return doc, err
}

// update applies fn to the document under the file lock and writes it
// back atomically (write to temp file, then rename).
func (s *Store) update(ctx context.Context, name string, fn func(*Document)) error {
	return s.withLock(ctx, name, func() error {
		doc, err := readDocument(s.path(name))
		if err != nil {
			return err
		}
		fn(&doc)
		return writeDocument(s.path(name), doc)
	})
}

func readDocument(path string) (Document, error) {
	var doc Document
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			name := strings.TrimSuffix(filepath.Base(path), storeExt)
			return doc, fmt.Errorf("store %q: %w", name, counter.ErrScopeNotFound)
		}
		return doc, fmt.Errorf("read store document: %w", err)
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("parse store document %s: %w", path, err)
	}
	if doc.Counters == nil {
		doc.Counters = make(map[string]int)
	}
	return doc, nil
}

func writeDocument(path string, doc Document) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode store document: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write store document: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write store document: %w", err)
	}
	return nil
}
