// Package filesystem provides an abstraction layer over the three file
// timestamps (creation, modification, access) so that local files, remote
// SFTP files and in-memory test doubles can be read and rewritten the same way.
package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
)

// ErrCreationUnsupported is returned when a backend cannot write creation times.
var ErrCreationUnsupported = errors.New("setting creation time is not supported")

// Attribute identifies one of the three file timestamps.
type Attribute int

// Attributes in the order they are written.
const (
	Creation Attribute = iota
	Modification
	Access
)

// Attributes lists every attribute in write order.
//
//nolint:gochecknoglobals // Fixed write order shared by set and sync
var Attributes = []Attribute{Creation, Modification, Access}

// String returns the attribute name as printed in status lines.
func (a Attribute) String() string {
	switch a {
	case Creation:
		return "Creation"
	case Modification:
		return "Modification"
	case Access:
		return "Access"
	default:
		return "Unknown"
	}
}

// Times holds the three timestamps of a file.
// A zero value means the backend could not report that timestamp.
type Times struct {
	Creation     time.Time
	Modification time.Time
	Access       time.Time
}

// Get returns the timestamp for attr.
func (t Times) Get(attr Attribute) time.Time {
	switch attr {
	case Creation:
		return t.Creation
	case Modification:
		return t.Modification
	case Access:
		return t.Access
	default:
		return time.Time{}
	}
}

// TimeStore reads and writes file timestamps on one backend.
type TimeStore interface {
	// Exists reports whether path names an existing regular file.
	// Directories do not count as files.
	Exists(path string) (bool, error)
	Times(path string) (Times, error)
	SetCreation(path string, t time.Time) error
	SetModification(path string, t time.Time) error
	SetAccess(path string, t time.Time) error
	// CanSetCreation reports whether SetCreation can succeed on this backend.
	CanSetCreation() bool
}

// Set writes a single attribute through store.
func Set(store TimeStore, attr Attribute, path string, t time.Time) error {
	switch attr {
	case Creation:
		return store.SetCreation(path, t)
	case Modification:
		return store.SetModification(path, t)
	case Access:
		return store.SetAccess(path, t)
	default:
		return fmt.Errorf("unknown time attribute %d", attr) //nolint:err113 // Programming error with actual value
	}
}

// LocalStore implements TimeStore using the host operating system.
type LocalStore struct{}

// NewLocalStore creates a new LocalStore instance.
func NewLocalStore() *LocalStore {
	return &LocalStore{}
}

// CanSetCreation reports whether this platform can write creation times.
func (s *LocalStore) CanSetCreation() bool {
	return canSetCreation
}

// Exists reports whether path is an existing regular file.
func (s *LocalStore) Exists(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	return !info.IsDir(), nil
}

// SetAccess changes the access time and leaves the modification time alone.
func (s *LocalStore) SetAccess(path string, t time.Time) error {
	// A zero time tells Chtimes to keep the current value.
	err := os.Chtimes(path, t, time.Time{})
	if err != nil {
		return fmt.Errorf("failed to set access time for %s: %w", path, err)
	}

	return nil
}

// SetCreation changes the creation (birth) time.
func (s *LocalStore) SetCreation(path string, t time.Time) error {
	if !canSetCreation {
		return fmt.Errorf("%w on %s", ErrCreationUnsupported, platformName)
	}

	err := setCreationTime(path, t)
	if err != nil {
		return fmt.Errorf("failed to set creation time for %s: %w", path, err)
	}

	return nil
}

// SetModification changes the modification time and leaves the access time alone.
func (s *LocalStore) SetModification(path string, t time.Time) error {
	err := os.Chtimes(path, time.Time{}, t)
	if err != nil {
		return fmt.Errorf("failed to set modification time for %s: %w", path, err)
	}

	return nil
}

// Times reads all three timestamps of path.
func (s *LocalStore) Times(path string) (Times, error) {
	times, err := readTimes(path)
	if err != nil {
		return Times{}, fmt.Errorf("failed to read times for %s: %w", path, err)
	}

	return times, nil
}
