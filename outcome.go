package spawntest

import (
	"errors"
	"fmt"
)

// ErrUnderflow is the panic value (wrapped) raised when a spawn is requested
// and no outcome has been queued for it.
var ErrUnderflow = errors.New("no programmed outcome left for spawn")

// Outcome is one programmed result of a spawn request. A zero Outcome is a
// successful spawn that exits 0 and writes nothing.
type Outcome struct {
	Stdout   string
	Stderr   string
	ExitCode int

	// Err, when set, means the process never started. It is returned to the
	// caller wrapped in a SpawnError and no output is written.
	Err error
}

// Succeed returns an Outcome for a process that exits 0.
func Succeed() Outcome {
	return Outcome{}
}

// Exit returns an Outcome for a process that exits with the given code.
func Exit(code int) Outcome {
	return Outcome{ExitCode: code}
}

// FailToSpawn returns an Outcome for a process that could not be started.
func FailToSpawn(err error) Outcome {
	return Outcome{Err: err}
}

func (o Outcome) WithStdout(stdout string) Outcome {
	o.Stdout = stdout
	return o
}

func (o Outcome) WithStderr(stderr string) Outcome {
	o.Stderr = stderr
	return o
}

// Result returns the error a real spawn with this outcome would produce, or
// nil when the process started and exited 0.
func (o Outcome) Result() error {
	if o.Err != nil {
		return SpawnError{Err: o.Err}
	}

	if o.ExitCode != 0 {
		return ExitError{Code: o.ExitCode}
	}

	return nil
}

// ExitError reports a process that ran and exited non-zero. Like
// *exec.ExitError it exposes the code through ExitCode.
type ExitError struct {
	Code int
}

func (e ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e ExitError) ExitCode() int {
	return e.Code
}

// SpawnError reports a process that could not be started.
type SpawnError struct {
	Err error
}

func (e SpawnError) Error() string {
	return fmt.Sprintf("failed to spawn process: %s", e.Err)
}

func (e SpawnError) Unwrap() error {
	return e.Err
}
