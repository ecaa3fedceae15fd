package spawntest

import "fmt"

//go:generate faux --interface TestingT --output fakes/testing_t.go

// TestingT is the part of testing.TB the assertion helpers need.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...interface{})
}

// Lookup is anything that can be read by key.
type Lookup[K comparable, V comparable] interface {
	Get(key K) (V, bool)
}

// Map adapts a Go map to Lookup.
type Map[K comparable, V comparable] map[K]V

func (m Map[K, V]) Get(key K) (V, bool) {
	v, ok := m[key]
	return v, ok
}

// Entry is an expected key and value.
type Entry[K comparable, V comparable] struct {
	Key   K
	Value V
}

func Pair[K comparable, V comparable](key K, value V) Entry[K, V] {
	return Entry[K, V]{Key: key, Value: value}
}

// MapContains checks that lookup holds every entry. The returned error names
// the mapping, the first offending key and, for a mismatch, both values.
func MapContains[K comparable, V comparable](name string, lookup Lookup[K, V], entries ...Entry[K, V]) error {
	for _, entry := range entries {
		actual, ok := lookup.Get(entry.Key)
		if !ok {
			return fmt.Errorf("%s missing key `%#v`", name, entry.Key)
		}

		if actual != entry.Value {
			return fmt.Errorf("%s key `%#v` doesn't match expected! (expected `%#v` != actual `%#v`)", name, entry.Key, entry.Value, actual)
		}
	}

	return nil
}

// AssertMapContains fails t unless lookup holds every entry.
func AssertMapContains[K comparable, V comparable](t TestingT, name string, lookup Lookup[K, V], entries ...Entry[K, V]) {
	t.Helper()

	err := MapContains(name, lookup, entries...)
	if err != nil {
		t.Fatalf("%s", err)
	}
}

// AssertNotEqual fails t when left == right.
func AssertNotEqual[T comparable](t TestingT, left, right T) {
	t.Helper()

	if left == right {
		t.Fatalf("assertion failed: `(left != right)` (left: `%#v`, right: `%#v`)", left, right)
	}
}

// Strings returns a new slice holding values.
func Strings(values ...string) []string {
	return append([]string{}, values...)
}
