package spawntest

import (
	"fmt"
	"os"
	"path/filepath"
)

// FillFunc populates a freshly created file.
type FillFunc func(*os.File) error

// Empty is a FillFunc that writes nothing.
func Empty(*os.File) error { return nil }

// CreateFile creates a regular file at dir/path, hands it to fill and returns
// its canonical absolute path. Parent directories are not created.
func CreateFile(dir, path string, fill FillFunc) (string, error) {
	file, err := os.Create(filepath.Join(dir, path))
	if err != nil {
		return "", fmt.Errorf("failed to create file:\nerror: %w", err)
	}

	return fillAndResolve(file, fill)
}

// Touch creates an empty file at dir/path.
func Touch(dir, path string) (string, error) {
	return CreateFile(dir, path, Empty)
}

// MakeExecutable creates a file at dir/path that the platform will treat as
// executable, hands it to fill and returns its canonical absolute path.
func MakeExecutable(dir, path string, fill FillFunc) (string, error) {
	file, err := createExecutable(filepath.Join(dir, path))
	if err != nil {
		return "", fmt.Errorf("failed to create executable:\nerror: %w", err)
	}

	return fillAndResolve(file, fill)
}

// MakeExecutableEmpty creates an empty executable file at dir/path.
func MakeExecutableEmpty(dir, path string) (string, error) {
	return MakeExecutable(dir, path, Empty)
}

func fillAndResolve(file *os.File, fill FillFunc) (string, error) {
	err := fill(file)
	if err != nil {
		file.Close()
		return "", fmt.Errorf("failed to fill file: '%s':\nerror: %w", file.Name(), err)
	}

	err = file.Close()
	if err != nil {
		return "", fmt.Errorf("failed to close file: '%s':\nerror: %w", file.Name(), err)
	}

	return canonicalize(file.Name())
}

func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: '%s':\nerror: %w", path, err)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: '%s':\nerror: %w", path, err)
	}

	return resolved, nil
}
