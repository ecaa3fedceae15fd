package spawntest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Subdirs are the search path directories of a Fixture, in search order.
var Subdirs = []string{"a", "b", "c"}

// BinName is the executable created in each of the Subdirs.
const BinName = "bin"

// Fixture is a temporary directory laid out for path search tests.
type Fixture struct {
	// Dir is the canonical root of the temporary tree.
	Dir string
	// Paths is Dir/a, Dir/b and Dir/c joined with os.PathListSeparator.
	Paths string
	// Bins holds the BinName executable of each subdirectory, index aligned
	// with Subdirs.
	Bins []string
}

// NewFixture creates a temporary directory and lays it out. Callers own the
// result and must Close it.
func NewFixture() (Fixture, error) {
	dir, err := os.MkdirTemp("", "find-in-path")
	if err != nil {
		return Fixture{}, fmt.Errorf("failed to create temp dir:\nerror: %w", err)
	}

	fixture := Fixture{Dir: dir}

	fixture.Dir, err = canonicalize(dir)
	if err != nil {
		os.RemoveAll(dir)
		return Fixture{}, err
	}

	fixture.Paths, fixture.Bins, err = Layout(fixture.Dir)
	if err != nil {
		os.RemoveAll(dir)
		return Fixture{}, err
	}

	return fixture, nil
}

// Layout creates each of the Subdirs under root with a BinName executable
// inside. It returns the subdirectories as a search path and the created
// executables in the same order.
func Layout(root string) (string, []string, error) {
	var (
		paths []string
		bins  []string
	)

	for _, subdir := range Subdirs {
		path := filepath.Join(root, subdir)
		err := os.MkdirAll(path, os.ModePerm)
		if err != nil {
			return "", nil, fmt.Errorf("failed to create directory: '%s':\nerror: %w", path, err)
		}

		bin, err := MakeExecutableEmpty(path, BinName)
		if err != nil {
			return "", nil, err
		}

		paths = append(paths, path)
		bins = append(bins, bin)
	}

	return strings.Join(paths, string(os.PathListSeparator)), bins, nil
}

// Touch creates an empty file directly under the fixture root.
func (f Fixture) Touch(path string) (string, error) {
	return Touch(f.Dir, path)
}

// MakeExecutable creates an empty executable directly under the fixture root.
func (f Fixture) MakeExecutable(path string) (string, error) {
	return MakeExecutableEmpty(f.Dir, path)
}

// SearchPath splits Paths back into its directories.
func (f Fixture) SearchPath() []string {
	return filepath.SplitList(f.Paths)
}

// Close removes the fixture's directory tree.
func (f Fixture) Close() error {
	err := os.RemoveAll(f.Dir)
	if err != nil {
		return fmt.Errorf("failed to remove fixture: '%s':\nerror: %w", f.Dir, err)
	}

	return nil
}

// Cleaner is the part of testing.TB MustFixture needs.
type Cleaner interface {
	TestingT
	Cleanup(func())
}

// MustFixture returns a new Fixture that is removed when t and its subtests
// complete, whether they pass, fail or panic. Setup errors fail t.
func MustFixture(t Cleaner) Fixture {
	t.Helper()

	fixture, err := NewFixture()
	if err != nil {
		t.Fatalf("failed to build fixture: %s", err)
		return Fixture{}
	}

	t.Cleanup(func() {
		err := fixture.Close()
		if err != nil {
			t.Fatalf("%s", err)
		}
	})

	return fixture
}
