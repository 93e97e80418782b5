package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"testing"
	"time"

	"github.com/pkg/sftp"
	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers
)

// fakeSFTPClient serves a single remote file.
type fakeSFTPClient struct {
	path    string
	isDir   bool
	mtime   time.Time
	atime   time.Time
	statErr error
	chErr   error
}

type fakeFileInfo struct {
	client *fakeSFTPClient
}

func (fi fakeFileInfo) Name() string       { return fi.client.path }
func (fi fakeFileInfo) Size() int64        { return 0 }
func (fi fakeFileInfo) Mode() os.FileMode  { return 0o644 }
func (fi fakeFileInfo) ModTime() time.Time { return fi.client.mtime }
func (fi fakeFileInfo) IsDir() bool        { return fi.client.isDir }
func (fi fakeFileInfo) Sys() interface{} {
	return &sftp.FileStat{
		Mtime: uint32(fi.client.mtime.Unix()), //nolint:gosec // Test timestamps fit in uint32
		Atime: uint32(fi.client.atime.Unix()), //nolint:gosec // Test timestamps fit in uint32
	}
}

func (c *fakeSFTPClient) Stat(path string) (os.FileInfo, error) {
	if c.statErr != nil {
		return nil, c.statErr
	}

	if path != c.path {
		return nil, os.ErrNotExist
	}

	return fakeFileInfo{client: c}, nil
}

func (c *fakeSFTPClient) Chtimes(_ string, atime, mtime time.Time) error {
	if c.chErr != nil {
		return c.chErr
	}

	c.atime = atime
	c.mtime = mtime

	return nil
}

func newFakeStore() (*SFTPStore, *fakeSFTPClient) {
	client := &fakeSFTPClient{
		path:  "data.bin",
		mtime: time.Unix(1_700_000_000, 0),
		atime: time.Unix(1_700_000_500, 0),
	}

	return &SFTPStore{client: client}, client
}

func TestSFTPStore_Exists(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	store, client := newFakeStore()

	exists, err := store.Exists("data.bin")
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(exists).To(BeTrue())

	exists, err = store.Exists("other.bin")
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(exists).To(BeFalse())

	client.isDir = true
	exists, err = store.Exists("data.bin")
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(exists).To(BeFalse())

	client.statErr = errors.New("connection lost")
	_, err = store.Exists("data.bin")
	g.Expect(err).To(MatchError(ContainSubstring("connection lost")))
}

func TestSFTPStore_Times(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	store, client := newFakeStore()

	times, err := store.Times("data.bin")
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(times.Creation.IsZero()).To(BeTrue())
	g.Expect(times.Modification.Equal(client.mtime)).To(BeTrue())
	g.Expect(times.Access.Equal(client.atime)).To(BeTrue())

	_, err = store.Times("missing.bin")
	g.Expect(errors.Is(err, fs.ErrNotExist)).To(BeTrue())
}

func TestSFTPStore_SetModificationKeepsAccess(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	store, client := newFakeStore()
	originalAccess := client.atime
	stamp := time.Unix(1_600_000_000, 0)

	g.Expect(store.SetModification("data.bin", stamp)).To(Succeed())
	g.Expect(client.mtime).To(Equal(stamp))
	g.Expect(client.atime.Equal(originalAccess)).To(BeTrue())
}

func TestSFTPStore_SetAccessKeepsModification(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	store, client := newFakeStore()
	originalModification := client.mtime
	stamp := time.Unix(1_650_000_000, 0)

	g.Expect(store.SetAccess("data.bin", stamp)).To(Succeed())
	g.Expect(client.atime).To(Equal(stamp))
	g.Expect(client.mtime.Equal(originalModification)).To(BeTrue())
}

func TestSFTPStore_SetErrors(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	store, client := newFakeStore()
	client.chErr = errors.New("permission denied")

	g.Expect(store.SetModification("data.bin", time.Now())).To(MatchError(ContainSubstring("permission denied")))
	g.Expect(store.SetAccess("data.bin", time.Now())).To(MatchError(ContainSubstring("permission denied")))
	g.Expect(store.SetAccess("gone.bin", time.Now())).ToNot(Succeed())

	g.Expect(store.CanSetCreation()).To(BeFalse())
	g.Expect(errors.Is(store.SetCreation("data.bin", time.Now()), ErrCreationUnsupported)).To(BeTrue())
}
