//go:build linux

package filesystem

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

const (
	canSetCreation = false
	platformName   = "linux"
)

// readTimes uses statx so the birth time is available where the filesystem records it.
// Without birth time the creation time is left zero (unknown); ctime moves on
// every metadata change and is not a creation time.
func readTimes(path string) (Times, error) {
	var stx unix.Statx_t

	err := unix.Statx(unix.AT_FDCWD, path, unix.AT_STATX_SYNC_AS_STAT,
		unix.STATX_BASIC_STATS|unix.STATX_BTIME, &stx)
	if err != nil {
		return Times{}, &os.PathError{Op: "statx", Path: path, Err: err}
	}

	var creation time.Time
	if stx.Mask&unix.STATX_BTIME != 0 {
		creation = statxTime(stx.Btime)
	}

	return Times{
		Creation:     creation,
		Modification: statxTime(stx.Mtime),
		Access:       statxTime(stx.Atime),
	}, nil
}

func setCreationTime(_ string, _ time.Time) error {
	return ErrCreationUnsupported
}

func statxTime(ts unix.StatxTimestamp) time.Time {
	return time.Unix(ts.Sec, int64(ts.Nsec))
}
