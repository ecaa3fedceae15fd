//go:build unix

package spawntest

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

const executableMode = 0o666 | unix.S_IXUSR

func createExecutable(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_WRONLY|os.O_CREATE, executableMode)
}

// IsExecutable reports whether the file at path exists and carries the
// owner-execute permission bit.
func IsExecutable(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("failed to stat: '%s':\nerror: %w", path, err)
	}

	return info.Mode().IsRegular() && info.Mode().Perm()&unix.S_IXUSR != 0, nil
}
