//go:build !linux && !darwin && !windows

package filesystem

import (
	"os"
	"runtime"
	"time"
)

const canSetCreation = false

//nolint:gochecknoglobals // Platform label for error messages
var platformName = runtime.GOOS

// readTimes only knows the modification time here; creation and access stay zero.
func readTimes(path string) (Times, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Times{}, err //nolint:wrapcheck // Wrapped by LocalStore.Times
	}

	return Times{Modification: info.ModTime()}, nil
}

func setCreationTime(_ string, _ time.Time) error {
	return ErrCreationUnsupported
}
