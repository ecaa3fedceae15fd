package spawntest

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

// Script is the TOML form of a list of outcomes:
//
//	[[outcome]]
//	stdout = "cache miss"
//	exit-code = 1
//
//	[[outcome]]
//	spawn-error = "executable file not found in $PATH"
type Script struct {
	Outcomes []ScriptOutcome `toml:"outcome"`
}

type ScriptOutcome struct {
	Stdout     string `toml:"stdout"`
	Stderr     string `toml:"stderr"`
	ExitCode   int    `toml:"exit-code"`
	SpawnError string `toml:"spawn-error"`
}

// DecodeOutcomes parses a TOML outcome script.
func DecodeOutcomes(r io.Reader) ([]Outcome, error) {
	var script Script
	_, err := toml.NewDecoder(r).Decode(&script)
	if err != nil {
		return nil, fmt.Errorf("failed to decode outcome script:\nerror: %w", err)
	}

	outcomes := make([]Outcome, 0, len(script.Outcomes))
	for _, o := range script.Outcomes {
		outcome := Exit(o.ExitCode).WithStdout(o.Stdout).WithStderr(o.Stderr)
		if o.SpawnError != "" {
			outcome = FailToSpawn(errors.New(o.SpawnError))
		}
		outcomes = append(outcomes, outcome)
	}

	return outcomes, nil
}

// LoadOutcomes reads and parses the TOML outcome script at path.
func LoadOutcomes(path string) ([]Outcome, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open outcome script: '%s':\nerror: %w", path, err)
	}
	defer file.Close()

	return DecodeOutcomes(file)
}
