package filesystem

import (
	"fmt"
	"io/fs"
	"sync"
	"time"
)

// Store operation names used by MockStore for call recording and failure injection.
const (
	OpExists          = "Exists"
	OpTimes           = "Times"
	OpSetCreation     = "SetCreation"
	OpSetModification = "SetModification"
	OpSetAccess       = "SetAccess"
)

// MockStore is an in-memory TimeStore implementation for testing.
type MockStore struct {
	mu       sync.RWMutex
	files    map[string]*mockEntry
	failures map[string]error
	calls    []string

	// CreationWritable controls CanSetCreation and whether SetCreation succeeds.
	CreationWritable bool
}

type mockEntry struct {
	times Times
	isDir bool
}

// NewMockStore creates an empty MockStore that accepts creation writes.
func NewMockStore() *MockStore {
	return &MockStore{
		files:            make(map[string]*mockEntry),
		failures:         make(map[string]error),
		CreationWritable: true,
	}
}

// AddDir adds a directory, which Exists does not count as a file.
func (m *MockStore) AddDir(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.files[path] = &mockEntry{isDir: true}
}

// AddFile adds a file with the given times.
func (m *MockStore) AddFile(path string, times Times) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.files[path] = &mockEntry{times: times}
}

// Calls returns the recorded operations as "Op path" strings, in call order.
func (m *MockStore) Calls() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]string(nil), m.calls...)
}

// CanSetCreation reports CreationWritable.
func (m *MockStore) CanSetCreation() bool {
	return m.CreationWritable
}

// Exists reports whether path is a file in the store.
func (m *MockStore) Exists(path string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.record(OpExists, path); err != nil {
		return false, err
	}

	entry, ok := m.files[path]

	return ok && !entry.isDir, nil
}

// FailOn makes op on path return err.
func (m *MockStore) FailOn(op, path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.failures[op+" "+path] = err
}

// SetAccess records a new access time.
func (m *MockStore) SetAccess(path string, t time.Time) error {
	return m.update(OpSetAccess, path, func(times *Times) { times.Access = t })
}

// SetCreation records a new creation time, or fails when CreationWritable is false.
func (m *MockStore) SetCreation(path string, t time.Time) error {
	if !m.CreationWritable {
		m.mu.Lock()
		defer m.mu.Unlock()

		m.calls = append(m.calls, OpSetCreation+" "+path)

		return fmt.Errorf("%w in mock store", ErrCreationUnsupported)
	}

	return m.update(OpSetCreation, path, func(times *Times) { times.Creation = t })
}

// SetModification records a new modification time.
func (m *MockStore) SetModification(path string, t time.Time) error {
	return m.update(OpSetModification, path, func(times *Times) { times.Modification = t })
}

// Times returns the stored times of path.
func (m *MockStore) Times(path string) (Times, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.record(OpTimes, path); err != nil {
		return Times{}, err
	}

	entry, ok := m.files[path]
	if !ok {
		return Times{}, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
	}

	return entry.times, nil
}

// record appends the call and returns any injected failure. Callers hold mu.
func (m *MockStore) record(op, path string) error {
	key := op + " " + path
	m.calls = append(m.calls, key)

	return m.failures[key]
}

func (m *MockStore) update(op, path string, apply func(*Times)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.record(op, path); err != nil {
		return err
	}

	entry, ok := m.files[path]
	if !ok {
		return &fs.PathError{Op: "chtimes", Path: path, Err: fs.ErrNotExist}
	}

	apply(&entry.times)

	return nil
}

// Opener returns an Opener that serves every path from m.
func (m *MockStore) Opener() Opener {
	return func(pathStr string) (TimeStore, string, func(), error) {
		return m, pathStr, func() {}, nil
	}
}
