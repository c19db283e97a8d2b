// SPDX-License-Identifier: MIT

package transport

import (
	"fmt"
	"math/rand"
)

// Permutation is a reindexing of {0..n-1}: perm[k] is the original index
// that feeds new position k.
type Permutation []int

// Identity returns the identity permutation of length n.
func Identity(n int) Permutation {
	p := make(Permutation, n)
	for k := range p {
		p[k] = k
	}

	return p
}

// Validate reports whether p is a bijection of {0..n-1}.
func (p Permutation) Validate(n int) error {
	if len(p) != n {
		return fmt.Errorf("len=%d want %d: %w", len(p), n, ErrPermutationLength)
	}
	seen := make([]bool, n)
	for k, v := range p {
		if v < 0 || v >= n {
			return fmt.Errorf("perm[%d]=%d outside [0,%d): %w", k, v, n, ErrNotPermutation)
		}
		if seen[v] {
			return fmt.Errorf("perm[%d]=%d repeated: %w", k, v, ErrNotPermutation)
		}
		seen[v] = true
	}

	return nil
}

// Inverse returns the permutation undoing p: inv[p[k]] = k.
// p must be valid.
func (p Permutation) Inverse() Permutation {
	inv := make(Permutation, len(p))
	for k, v := range p {
		inv[v] = k
	}

	return inv
}

// Gather reorders h by p: out[k] = h[p[k]]. p must be valid for len(h).
func (p Permutation) Gather(h Histogram) Histogram {
	out := make(Histogram, len(p))
	for k, v := range p {
		out[k] = h[v]
	}

	return out
}

// IsIdentity reports whether p maps every index to itself.
func (p Permutation) IsIdentity() bool {
	for k, v := range p {
		if k != v {
			return false
		}
	}

	return true
}

// Equal reports whether p and q are the same permutation.
func (p Permutation) Equal(q Permutation) bool {
	if len(p) != len(q) {
		return false
	}
	for k := range p {
		if p[k] != q[k] {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of p.
func (p Permutation) Clone() Permutation {
	out := make(Permutation, len(p))
	copy(out, p)

	return out
}

// RandomPermutation draws a uniform permutation of length n from rng.
func RandomPermutation(rng *rand.Rand, n int) Permutation {
	p := Identity(n)
	rng.Shuffle(n, func(a, b int) { p[a], p[b] = p[b], p[a] })

	return p
}

// forEachPermutation visits every permutation of {0..n-1} with Heap's
// algorithm (iterative form). The slice passed to fn is reused; fn must
// copy it to retain it. Returning false stops the walk.
func forEachPermutation(n int, fn func(Permutation) bool) {
	p := Identity(n)
	if !fn(p) {
		return
	}
	c := make([]int, n)
	for i := 1; i < n; {
		if c[i] < i {
			if i%2 == 0 {
				p[0], p[i] = p[i], p[0]
			} else {
				p[c[i]], p[i] = p[i], p[c[i]]
			}
			if !fn(p) {
				return
			}
			c[i]++
			i = 1
		} else {
			c[i] = 0
			i++
		}
	}
}

// factorial returns n! or limit+1 once the product exceeds limit.
func factorial(n, limit int) int {
	f := 1
	for k := 2; k <= n; k++ {
		f *= k
		if f > limit {
			return limit + 1
		}
	}

	return f
}
