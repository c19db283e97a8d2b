// SPDX-License-Identifier: MIT

package transport_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/nwcorner/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPermutation_InverseAndGather checks inv[p[k]] = k and gather order.
func TestPermutation_InverseAndGather(t *testing.T) {
	p := transport.Permutation{2, 0, 1}
	inv := p.Inverse()
	assert.Equal(t, transport.Permutation{1, 2, 0}, inv)
	for k, v := range p {
		assert.Equal(t, k, inv[v])
	}

	h := transport.Histogram{0.2, 0.5, 0.3}
	assert.Equal(t, transport.Histogram{0.3, 0.2, 0.5}, p.Gather(h))
	assert.Equal(t, h, inv.Gather(p.Gather(h)), "gather by inverse undoes gather")
}

// TestPermutation_Validate covers the accepted and rejected shapes.
func TestPermutation_Validate(t *testing.T) {
	assert.NoError(t, transport.Identity(4).Validate(4))
	assert.NoError(t, transport.Permutation{}.Validate(0))
	assert.ErrorIs(t, transport.Permutation{0, 1}.Validate(3), transport.ErrPermutationLength)
	assert.ErrorIs(t, transport.Permutation{1, 1}.Validate(2), transport.ErrNotPermutation)
	assert.ErrorIs(t, transport.Permutation{0, 2}.Validate(2), transport.ErrNotPermutation)
}

// TestPermutation_Helpers covers Identity, IsIdentity, Equal and Clone.
func TestPermutation_Helpers(t *testing.T) {
	id := transport.Identity(3)
	assert.True(t, id.IsIdentity())
	assert.False(t, transport.Permutation{1, 0, 2}.IsIdentity())

	c := id.Clone()
	c[0], c[1] = c[1], c[0]
	assert.True(t, id.IsIdentity(), "clone must not alias")
	assert.False(t, id.Equal(c))
	assert.False(t, id.Equal(transport.Identity(2)))
	assert.True(t, id.Equal(transport.Identity(3)))
}

// TestRandomPermutation_IsValid draws many permutations and validates them.
func TestRandomPermutation_IsValid(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for n := 0; n < 10; n++ {
		p := transport.RandomPermutation(r, n)
		require.NoError(t, p.Validate(n))
	}
}

// TestForEachPermutation_VisitsAllOnce checks Heap's walk yields n! distinct
// valid permutations and honors early stop.
func TestForEachPermutation_VisitsAllOnce(t *testing.T) {
	for n := 0; n <= 5; n++ {
		seen := map[string]bool{}
		transport.ForEachPermutationTestOnly(n, func(p transport.Permutation) bool {
			require.NoError(t, p.Validate(n))
			key := ""
			for _, v := range p {
				key += string(rune('a' + v))
			}
			assert.False(t, seen[key], "duplicate %v", p)
			seen[key] = true
			return true
		})
		assert.Len(t, seen, transport.FactorialTestOnly(n, 1<<20), "n=%d", n)
	}

	calls := 0
	transport.ForEachPermutationTestOnly(4, func(transport.Permutation) bool {
		calls++
		return calls < 3
	})
	assert.Equal(t, 3, calls)
}

// TestFactorial_Saturates verifies the overflow guard.
func TestFactorial_Saturates(t *testing.T) {
	assert.Equal(t, 1, transport.FactorialTestOnly(0, 100))
	assert.Equal(t, 24, transport.FactorialTestOnly(4, 100))
	assert.Equal(t, 101, transport.FactorialTestOnly(5, 100))
}
