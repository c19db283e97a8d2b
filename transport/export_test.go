// SPDX-License-Identifier: MIT

package transport

// Test bridge exposing unexported helpers to transport_test.

// ForEachPermutationTestOnly exposes forEachPermutation.
func ForEachPermutationTestOnly(n int, fn func(Permutation) bool) { forEachPermutation(n, fn) }

// FactorialTestOnly exposes factorial.
func FactorialTestOnly(n, limit int) int { return factorial(n, limit) }

// OptionsSnapshot is a read-only view of resolved Options.
type OptionsSnapshot struct {
	Eps, MassTol          float64
	Exact, Validate       bool
	MaxPerms, Concurrency int
}

// GatherOptionsSnapshotTestOnly resolves opts and returns a snapshot.
func GatherOptionsSnapshotTestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)
	return OptionsSnapshot{
		Eps:         o.eps,
		MassTol:     o.massTol,
		Exact:       o.exact,
		Validate:    o.validate,
		MaxPerms:    o.maxPerms,
		Concurrency: o.concurrency,
	}
}
