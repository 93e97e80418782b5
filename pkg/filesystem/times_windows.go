//go:build windows

package filesystem

import (
	"fmt"
	"os"
	"syscall"
	"time"

	"golang.org/x/sys/windows"
)

const (
	canSetCreation = true
	platformName   = "windows"
)

func readTimes(path string) (Times, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Times{}, err //nolint:wrapcheck // Wrapped by LocalStore.Times
	}

	attrs, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return Times{}, fmt.Errorf("unexpected stat type %T for %s", info.Sys(), path) //nolint:err113 // Includes actual type
	}

	return Times{
		Creation:     time.Unix(0, attrs.CreationTime.Nanoseconds()),
		Modification: time.Unix(0, attrs.LastWriteTime.Nanoseconds()),
		Access:       time.Unix(0, attrs.LastAccessTime.Nanoseconds()),
	}, nil
}

// setCreationTime opens the file for attribute writes only and sets its creation time.
func setCreationTime(path string, t time.Time) error {
	pathp, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}

	handle, err := windows.CreateFile(pathp,
		windows.FILE_WRITE_ATTRIBUTES,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE|windows.FILE_SHARE_DELETE,
		nil,
		windows.OPEN_EXISTING,
		windows.FILE_FLAG_BACKUP_SEMANTICS,
		0)
	if err != nil {
		return fmt.Errorf("CreateFile: %w", err)
	}
	defer func() { _ = windows.CloseHandle(handle) }()

	ft := windows.NsecToFiletime(t.UnixNano())

	err = windows.SetFileTime(handle, &ft, nil, nil)
	if err != nil {
		return fmt.Errorf("SetFileTime: %w", err)
	}

	return nil
}
