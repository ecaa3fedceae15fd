//go:build !unix

package spawntest

import (
	"fmt"
	"os"
)

// Executability is not a filesystem permission here, so an executable is a
// plain file.
func createExecutable(path string) (*os.File, error) {
	return os.Create(path)
}

// IsExecutable reports whether a regular file exists at path.
func IsExecutable(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("failed to stat: '%s':\nerror: %w", path, err)
	}

	return info.Mode().IsRegular(), nil
}
