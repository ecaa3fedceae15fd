package spawntest_test

import (
	"testing"

	"github.com/paketo-buildpacks/spawntest"
	"github.com/paketo-buildpacks/spawntest/fakes"
	"github.com/sclevine/spec"

	. "github.com/onsi/gomega"
)

func testAssert(t *testing.T, context spec.G, it spec.S) {
	var (
		Expect = NewWithT(t).Expect

		fakeT *fakes.TestingT
	)

	it.Before(func() {
		fakeT = &fakes.TestingT{}
	})

	failure := func() string {
		return fakeT.FatalfCall.Receives.Args[0].(error).Error()
	}

	context("AssertMapContains", func() {
		it("passes when every pair is present", func() {
			m := spawntest.Map[string, int]{"a": 1, "b": 2}

			spawntest.AssertMapContains(fakeT, "m", m, spawntest.Pair("a", 1), spawntest.Pair("b", 2))
			Expect(fakeT.FatalfCall.CallCount).To(Equal(0))
			Expect(fakeT.HelperCall.CallCount).To(Equal(1))
		})

		it("passes against a real test", func() {
			spawntest.AssertMapContains(t, "m", spawntest.Map[string, int]{"a": 1}, spawntest.Pair("a", 1))
		})

		it("fails when a key is missing", func() {
			m := spawntest.Map[string, int]{"a": 1}

			spawntest.AssertMapContains(fakeT, "m", m, spawntest.Pair("a", 1), spawntest.Pair("b", 2))
			Expect(fakeT.FatalfCall.CallCount).To(Equal(1))
			Expect(failure()).To(Equal("m missing key `\"b\"`"))
		})

		it("fails when a value does not match", func() {
			m := spawntest.Map[string, int]{"a": 1, "b": 3}

			spawntest.AssertMapContains(fakeT, "m", m, spawntest.Pair("a", 1), spawntest.Pair("b", 2))
			Expect(fakeT.FatalfCall.CallCount).To(Equal(1))
			Expect(failure()).To(Equal("m key `\"b\"` doesn't match expected! (expected `2` != actual `3`)"))
		})
	})

	context("MapContains", func() {
		it("works with any Lookup", func() {
			env := lookupFunc(func(key string) (string, bool) {
				if key == "PATH" {
					return "/a:/b", true
				}
				return "", false
			})

			Expect(spawntest.MapContains[string, string]("env", env, spawntest.Pair("PATH", "/a:/b"))).To(Succeed())
			Expect(spawntest.MapContains[string, string]("env", env, spawntest.Pair("HOME", "/root"))).To(MatchError("env missing key `\"HOME\"`"))
		})
	})

	context("AssertNotEqual", func() {
		it("passes for different values", func() {
			spawntest.AssertNotEqual(fakeT, "a", "b")
			Expect(fakeT.FatalfCall.CallCount).To(Equal(0))
		})

		it("fails for equal values", func() {
			spawntest.AssertNotEqual(fakeT, 1, 1)
			Expect(fakeT.FatalfCall.CallCount).To(Equal(1))
			Expect(fakeT.FatalfCall.Receives.Format).To(ContainSubstring("(left != right)"))
			Expect(fakeT.FatalfCall.Receives.Args).To(Equal([]interface{}{1, 1}))
		})
	})

	context("Strings", func() {
		it("returns an owned copy", func() {
			values := []string{"a", "b"}
			copied := spawntest.Strings(values...)
			copied[0] = "z"

			Expect(values).To(Equal([]string{"a", "b"}))
			Expect(spawntest.Strings()).To(Equal([]string{}))
		})
	})
}

type lookupFunc func(string) (string, bool)

func (f lookupFunc) Get(key string) (string, bool) { return f(key) }
