package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/paketo-buildpacks/packit/v2/fs"
	"github.com/paketo-buildpacks/packit/v2/scribe"
	"github.com/paketo-buildpacks/spawntest"
	"github.com/spf13/pflag"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

func execute(args []string, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet("spawntest-fixture", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	dir := flags.StringP("dir", "d", "", "directory to lay the fixture out in (default: a new temp dir)")
	level := flags.String("log-level", os.Getenv("BP_LOG_LEVEL"), "log level (INFO or DEBUG)")

	err := flags.Parse(args)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 2
	}

	logger := scribe.NewEmitter(stderr).WithLevel(*level)

	paths, err := run(*dir, logger)
	if err != nil {
		logger.Detail("%s", err)
		return 1
	}

	fmt.Fprintln(stdout, paths)
	return 0
}

func run(dir string, logger scribe.Emitter) (string, error) {
	logger.Title("Executable fixture")

	if dir == "" {
		fixture, err := spawntest.NewFixture()
		if err != nil {
			return "", err
		}

		logger.Process("Created %s", fixture.Dir)
		return fixture.Paths, nil
	}

	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for _, subdir := range spawntest.Subdirs {
		exists, err := fs.Exists(filepath.Join(dir, subdir))
		if err != nil {
			return "", err
		}

		if exists {
			return "", fmt.Errorf("refusing to overwrite existing directory: '%s'", filepath.Join(dir, subdir))
		}
	}

	err = os.MkdirAll(dir, os.ModePerm)
	if err != nil {
		return "", err
	}

	logger.Process("Laying out %s", dir)
	paths, bins, err := spawntest.Layout(dir)
	if err != nil {
		return "", err
	}

	for _, bin := range bins {
		logger.Action("%s", bin)
	}
	logger.Debug.Subprocess("PATH=%s", paths)

	return paths, nil
}
