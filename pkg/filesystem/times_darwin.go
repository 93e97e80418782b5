//go:build darwin

package filesystem

import (
	"encoding/binary"
	"fmt"
	"os"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

const (
	canSetCreation = true
	platformName   = "darwin"
)

func readTimes(path string) (Times, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Times{}, err //nolint:wrapcheck // Wrapped by LocalStore.Times
	}

	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return Times{}, fmt.Errorf("unexpected stat type %T for %s", info.Sys(), path) //nolint:err113 // Includes actual type
	}

	return Times{
		Creation:     time.Unix(stat.Birthtimespec.Sec, stat.Birthtimespec.Nsec),
		Modification: info.ModTime(),
		Access:       time.Unix(stat.Atimespec.Sec, stat.Atimespec.Nsec),
	}, nil
}

// setCreationTime writes the birth time with setattrlist(ATTR_CMN_CRTIME).
// The attribute buffer holds a single struct timespec.
func setCreationTime(path string, t time.Time) error {
	attrs := unix.Attrlist{
		Bitmapcount: unix.ATTR_BIT_MAP_COUNT,
		Commonattr:  unix.ATTR_CMN_CRTIME,
	}

	ts := unix.NsecToTimespec(t.UnixNano())

	buf := make([]byte, 16) //nolint:mnd // sizeof(struct timespec) on 64-bit darwin
	binary.LittleEndian.PutUint64(buf[0:8], uint64(ts.Sec))   //nolint:gosec // Bit pattern copy
	binary.LittleEndian.PutUint64(buf[8:16], uint64(ts.Nsec)) //nolint:gosec // Bit pattern copy

	if err := unix.Setattrlist(path, &attrs, buf, 0); err != nil {
		return &os.PathError{Op: "setattrlist", Path: path, Err: err}
	}

	return nil
}
