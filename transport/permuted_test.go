// SPDX-License-Identifier: MIT

package transport_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/nwcorner/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAllocatePermuted_ReferenceCase checks the relabeled textbook example.
func TestAllocatePermuted_ReferenceCase(t *testing.T) {
	plan, err := transport.AllocatePermuted(refSource, refTarget,
		transport.Permutation{2, 0, 1}, transport.Permutation{2, 1, 0})
	require.NoError(t, err)
	requirePlanInDelta(t, [][]float64{
		{0, 0.1, 0.1},
		{0.5, 0, 0},
		{0, 0, 0.3},
	}, plan)
}

// TestAllocatePermuted_ReferenceCaseExact repeats the case in decimal mode.
func TestAllocatePermuted_ReferenceCaseExact(t *testing.T) {
	plan, err := transport.AllocatePermuted(refSource, refTarget,
		transport.Permutation{2, 0, 1}, transport.Permutation{2, 1, 0},
		transport.WithExactArithmetic())
	require.NoError(t, err)
	assert.Equal(t, [][]float64{
		{0, 0.1, 0.1},
		{0.5, 0, 0},
		{0, 0, 0.3},
	}, plan.ToSlices())
}

// TestAllocatePermuted_IdentityMatchesAllocate verifies the identity
// relabeling is a no-op.
func TestAllocatePermuted_IdentityMatchesAllocate(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for iter := 0; iter < 50; iter++ {
		n, m := 1+r.Intn(6), 1+r.Intn(6)
		a, b := randomHistogram(r, n, 1), randomHistogram(r, m, 1)

		direct, err := transport.Allocate(a, b)
		require.NoError(t, err)
		permuted, err := transport.AllocatePermuted(a, b, transport.Identity(n), transport.Identity(m))
		require.NoError(t, err)
		assert.Equal(t, direct.ToSlices(), permuted.ToSlices())
	}
}

// TestAllocatePermuted_MarginalsInvariant checks that relabeling never
// changes row/column sums and keeps the vertex bound, at every mass scale.
func TestAllocatePermuted_MarginalsInvariant(t *testing.T) {
	r := rand.New(rand.NewSource(23))
	for _, scale := range massScales {
		for iter := 0; iter < 200; iter++ {
			n, m := 1+r.Intn(7), 1+r.Intn(7)
			a, b := randomHistogram(r, n, scale), randomHistogram(r, m, scale)
			rp, cp := transport.RandomPermutation(r, n), transport.RandomPermutation(r, m)

			plan, err := transport.AllocatePermuted(a, b, rp, cp)
			require.NoError(t, err)
			assert.NoError(t, plan.CheckMarginals(a, b, 1e-9*scale), "scale=%g", scale)
			assert.True(t, plan.IsVertex(0))

			direct, err := transport.Allocate(a, b)
			require.NoError(t, err)
			assert.InDeltaSlice(t, direct.RowSums(), plan.RowSums(), 1e-9*scale)
			assert.InDeltaSlice(t, direct.ColSums(), plan.ColSums(), 1e-9*scale)
		}
	}
}

// TestAllocatePermuted_OnPermutedHook receives the plan of the relabeled
// problem, which equals Allocate on the gathered histograms.
func TestAllocatePermuted_OnPermutedHook(t *testing.T) {
	rp, cp := transport.Permutation{2, 0, 1}, transport.Permutation{2, 1, 0}
	var seen *transport.Plan
	_, err := transport.AllocatePermuted(refSource, refTarget, rp, cp,
		transport.WithOnPermuted(func(p *transport.Plan, rowPerm, colPerm transport.Permutation) {
			seen = p.Clone()
			assert.Equal(t, rp, rowPerm)
			assert.Equal(t, cp, colPerm)
		}))
	require.NoError(t, err)

	want, err := transport.Allocate(rp.Gather(refSource), cp.Gather(refTarget))
	require.NoError(t, err)
	require.NotNil(t, seen)
	assert.True(t, want.Equal(seen, tol))
	requirePlanInDelta(t, [][]float64{
		{0.3, 0, 0},
		{0.1, 0.1, 0},
		{0, 0, 0.5},
	}, seen)
}

// TestAllocatePermuted_InvalidPermutations covers length and bijection errors.
func TestAllocatePermuted_InvalidPermutations(t *testing.T) {
	cases := []struct {
		name     string
		rp, cp   transport.Permutation
		wantKind error
	}{
		{"RowTooShort", transport.Permutation{0, 1}, transport.Identity(3), transport.ErrPermutationLength},
		{"ColTooLong", transport.Identity(3), transport.Permutation{0, 1, 2, 3}, transport.ErrPermutationLength},
		{"RowRepeated", transport.Permutation{0, 0, 1}, transport.Identity(3), transport.ErrNotPermutation},
		{"ColOutOfRange", transport.Identity(3), transport.Permutation{0, 1, 3}, transport.ErrNotPermutation},
		{"ColNegative", transport.Identity(3), transport.Permutation{-1, 1, 2}, transport.ErrNotPermutation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			plan, err := transport.AllocatePermuted(refSource, refTarget, tc.rp, tc.cp)
			assert.Nil(t, plan)
			assert.ErrorIs(t, err, tc.wantKind)
			assert.ErrorIs(t, err, transport.ErrInvalidInput)
		})
	}
}

// TestAllocatePermuted_HistogramValidationFirst ensures histogram errors
// take priority over permutation errors.
func TestAllocatePermuted_HistogramValidationFirst(t *testing.T) {
	_, err := transport.AllocatePermuted(transport.Histogram{1}, transport.Histogram{2},
		transport.Permutation{5}, transport.Permutation{5})
	assert.ErrorIs(t, err, transport.ErrMassMismatch)
}
