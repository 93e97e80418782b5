package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/pkg/sftp"
)

// sftpClient is the subset of *sftp.Client used by SFTPStore.
type sftpClient interface {
	Stat(path string) (os.FileInfo, error)
	Chtimes(path string, atime, mtime time.Time) error
}

// SFTPStore implements TimeStore for files on an SFTP server.
// SFTP exposes only access and modification times, with one-second resolution.
type SFTPStore struct {
	client sftpClient
}

// NewSFTPStore creates a store on top of an established connection.
func NewSFTPStore(conn *SFTPConnection) *SFTPStore {
	return &SFTPStore{client: conn.Client()}
}

// CanSetCreation is always false; SFTP has no creation time attribute.
func (s *SFTPStore) CanSetCreation() bool {
	return false
}

// Exists reports whether path is an existing regular remote file.
func (s *SFTPStore) Exists(path string) (bool, error) {
	info, err := s.client.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("failed to stat remote file %s: %w", path, err)
	}

	return !info.IsDir(), nil
}

// SetAccess changes the remote access time, keeping the modification time.
func (s *SFTPStore) SetAccess(path string, t time.Time) error {
	current, err := s.Times(path)
	if err != nil {
		return err
	}

	err = s.client.Chtimes(path, t, current.Modification)
	if err != nil {
		return fmt.Errorf("failed to set access time for remote file %s: %w", path, err)
	}

	return nil
}

// SetCreation always fails with ErrCreationUnsupported.
func (s *SFTPStore) SetCreation(_ string, _ time.Time) error {
	return fmt.Errorf("%w over sftp", ErrCreationUnsupported)
}

// SetModification changes the remote modification time, keeping the access time.
func (s *SFTPStore) SetModification(path string, t time.Time) error {
	current, err := s.Times(path)
	if err != nil {
		return err
	}

	err = s.client.Chtimes(path, current.Access, t)
	if err != nil {
		return fmt.Errorf("failed to set modification time for remote file %s: %w", path, err)
	}

	return nil
}

// Times reads the remote access and modification times. Creation stays zero.
func (s *SFTPStore) Times(path string) (Times, error) {
	info, err := s.client.Stat(path)
	if err != nil {
		return Times{}, fmt.Errorf("failed to stat remote file %s: %w", path, err)
	}

	times := Times{
		Modification: info.ModTime(),
		Access:       info.ModTime(),
	}

	if stat, ok := info.Sys().(*sftp.FileStat); ok {
		times.Access = time.Unix(int64(stat.Atime), 0)
	}

	return times, nil
}
