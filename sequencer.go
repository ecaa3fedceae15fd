package spawntest

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/paketo-buildpacks/packit/v2/chronos"
	"github.com/paketo-buildpacks/packit/v2/pexec"
	"github.com/paketo-buildpacks/packit/v2/scribe"
)

// Executable defines the interface for invoking an executable. It is the
// contract satisfied by pexec.Executable and mocked by Sequencer.
type Executable interface {
	Execute(pexec.Execution) error
}

var (
	_ Executable = pexec.Executable{}
	_ Executable = (*Sequencer)(nil)
)

// Spawn is the record of one consumed outcome.
type Spawn struct {
	Index     int
	Execution pexec.Execution
	Outcome   Outcome
	At        time.Time
}

// Sequencer is an Executable that launches nothing. Each call consumes the
// next programmed Outcome in the order they were enqueued. A single Sequencer
// may be shared by the test and any goroutines the code under test starts.
// The zero value is ready to use; it stamps spawns with chronos.DefaultClock
// and logs nothing.
type Sequencer struct {
	mutex   sync.Mutex
	pending []Outcome
	spawns  []Spawn

	clock  *chronos.Clock
	logger *scribe.Emitter
}

// NewSequencer returns an empty Sequencer that logs nowhere.
func NewSequencer() *Sequencer {
	return &Sequencer{}
}

// WithLogger sets the emitter consumed spawns are reported to.
func (s *Sequencer) WithLogger(logger scribe.Emitter) *Sequencer {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.logger = &logger
	return s
}

// WithClock sets the clock used to stamp consumed spawns.
func (s *Sequencer) WithClock(clock chronos.Clock) *Sequencer {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.clock = &clock
	return s
}

// Enqueue appends outcomes to the tail of the pending queue.
func (s *Sequencer) Enqueue(outcomes ...Outcome) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.pending = append(s.pending, outcomes...)
}

// Next removes and returns the outcome at the head of the queue. It panics
// with an error wrapping ErrUnderflow when the queue is empty.
func (s *Sequencer) Next() Outcome {
	return s.consume(pexec.Execution{}).Outcome
}

// Execute consumes the next outcome on behalf of execution. Canned output is
// written to the execution's Stdout and Stderr after the lock is released.
func (s *Sequencer) Execute(execution pexec.Execution) error {
	spawn := s.consume(execution)
	outcome := spawn.Outcome

	if outcome.Err != nil {
		return outcome.Result()
	}

	err := replay(execution.Stdout, outcome.Stdout)
	if err != nil {
		return fmt.Errorf("failed to write stdout for spawn %d:\nerror: %w", spawn.Index, err)
	}

	err = replay(execution.Stderr, outcome.Stderr)
	if err != nil {
		return fmt.Errorf("failed to write stderr for spawn %d:\nerror: %w", spawn.Index, err)
	}

	return outcome.Result()
}

// Remaining returns the number of outcomes not yet consumed.
func (s *Sequencer) Remaining() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return len(s.pending)
}

// Spawns returns the consumed outcomes in consumption order.
func (s *Sequencer) Spawns() []Spawn {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return append([]Spawn(nil), s.spawns...)
}

// Reset drops every pending outcome and the spawn history.
func (s *Sequencer) Reset() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.pending = nil
	s.spawns = nil
}

// consume pops the head of the queue under the lock and logs it once the
// lock is released.
func (s *Sequencer) consume(execution pexec.Execution) Spawn {
	spawn, remaining, logger := s.pop(execution)

	if logger != nil {
		logger.Subprocess("Spawn %d: %s", spawn.Index, describe(execution))
		logger.Debug.Subprocess("%d outcome(s) remaining", remaining)
	}

	return spawn
}

func (s *Sequencer) pop(execution pexec.Execution) (Spawn, int, *scribe.Emitter) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	index := len(s.spawns) + 1
	if len(s.pending) == 0 {
		panic(fmt.Errorf("spawn %d (%s): %w", index, describe(execution), ErrUnderflow))
	}

	outcome := s.pending[0]
	s.pending[0] = Outcome{}
	s.pending = s.pending[1:]

	clock := chronos.DefaultClock
	if s.clock != nil {
		clock = *s.clock
	}

	spawn := Spawn{
		Index:     index,
		Execution: execution,
		Outcome:   outcome,
		At:        clock.Now(),
	}
	s.spawns = append(s.spawns, spawn)

	return spawn, len(s.pending), s.logger
}

func describe(execution pexec.Execution) string {
	if len(execution.Args) == 0 {
		return "<no args>"
	}
	return strings.Join(execution.Args, " ")
}

func replay(w io.Writer, content string) error {
	if w == nil || content == "" {
		return nil
	}

	_, err := io.WriteString(w, content)
	return err
}
