// FILE: alin/src/internal/aggregate/store.go
package aggregate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Store loads and persists one pipeline's State. Callers own the store
// identity; nothing here is process-global.
type Store interface {
	// Load returns the stored state, or a fresh one when none exists.
	Load() (*State, error)
	// Persist replaces the stored state.
	Persist(s *State) error
}

// Locker is implemented by stores that can serialize a full
// load/update/persist cycle across processes.
type Locker interface {
	// Lock blocks until the store is exclusively held and returns the
	// function that releases it.
	Lock() (unlock func() error, err error)
}

// FileStore keeps state in a key=value text file.
type FileStore struct {
	path string
	now  func() time.Time
}

// NewFileStore returns a store backed by path. A nil clock means time.Now.
func NewFileStore(path string, now func() time.Time) *FileStore {
	if now == nil {
		now = time.Now
	}
	return &FileStore{path: path, now: now}
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}

// Load reads the state file. A missing file yields a fresh state and no
// error; malformed content yields a state with zeroed fields. Only I/O
// failures other than absence are reported, together with a fresh state.
func (f *FileStore) Load() (*State, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewState(f.now()), nil
		}
		return NewState(f.now()), fmt.Errorf("failed to read state file: %w", err)
	}
	return ParseState(data, f.now()), nil
}

// Persist writes the state to a temporary file in the same directory and
// renames it over the target, so readers see either the old or the new file.
func (f *FileStore) Persist(s *State) error {
	data, err := s.MarshalText()
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to ensure state dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp state file: %w", err)
	}
	tmpPath := tmp.Name()

	// CreateTemp opens with 0600; keep the existing file's mode
	mode := os.FileMode(0o644)
	if info, err := os.Stat(f.path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set state file mode: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write state: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to sync state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close state: %w", err)
	}

	if err := os.Rename(tmpPath, f.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to commit state: %w", err)
	}
	return nil
}

// Lock takes an exclusive advisory lock on a sibling "<path>.lock" file.
func (f *FileStore) Lock() (func() error, error) {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to ensure state dir: %w", err)
	}
	return lockFile(f.path + ".lock")
}

// MemoryStore keeps state for the lifetime of the value. It backs nodes
// that run without a configured state file.
type MemoryStore struct {
	mu    sync.Mutex
	cycle sync.Mutex
	state *State
	now   func() time.Time
}

// NewMemoryStore returns an empty in-memory store. A nil clock means time.Now.
func NewMemoryStore(now func() time.Time) *MemoryStore {
	if now == nil {
		now = time.Now
	}
	return &MemoryStore{now: now}
}

func (ms *MemoryStore) Load() (*State, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if ms.state == nil {
		return NewState(ms.now()), nil
	}
	return ms.state.Clone(), nil
}

func (ms *MemoryStore) Persist(s *State) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.state = s.Clone()
	return nil
}

// Lock serializes callers within the process.
func (ms *MemoryStore) Lock() (func() error, error) {
	ms.cycle.Lock()
	return func() error {
		ms.cycle.Unlock()
		return nil
	}, nil
}
