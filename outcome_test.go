package spawntest_test

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/paketo-buildpacks/spawntest"
	"github.com/sclevine/spec"

	. "github.com/onsi/gomega"
)

func testOutcome(t *testing.T, context spec.G, it spec.S) {
	var Expect = NewWithT(t).Expect

	context("Result", func() {
		it("returns nil for a zero exit", func() {
			Expect(spawntest.Succeed().WithStdout("ok").Result()).To(Succeed())
		})

		it("returns an ExitError for a non-zero exit", func() {
			err := spawntest.Exit(3).Result()
			Expect(err).To(MatchError("exit status 3"))

			var exitErr interface{ ExitCode() int }
			Expect(errors.As(err, &exitErr)).To(BeTrue())
			Expect(exitErr.ExitCode()).To(Equal(3))
		})

		it("wraps spawn failures", func() {
			err := spawntest.FailToSpawn(exec.ErrNotFound).Result()
			Expect(err).To(MatchError(exec.ErrNotFound))
			Expect(err).To(MatchError(ContainSubstring("failed to spawn process")))

			var spawnErr spawntest.SpawnError
			Expect(errors.As(err, &spawnErr)).To(BeTrue())
		})

		it("prefers the spawn failure over the exit code", func() {
			outcome := spawntest.FailToSpawn(exec.ErrNotFound)
			outcome.ExitCode = 1

			var exitErr spawntest.ExitError
			Expect(errors.As(outcome.Result(), &exitErr)).To(BeFalse())
		})
	})
}
