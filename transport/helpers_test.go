// SPDX-License-Identifier: MIT
// Package transport_test contains shared fixtures and assertions.

package transport_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/nwcorner/transport"
	"github.com/stretchr/testify/require"
)

// tol is the entrywise tolerance used when comparing float plans.
const tol = 1e-12

// Reference histograms used across tests.
var (
	refSource = transport.Histogram{0.2, 0.5, 0.3}
	refTarget = transport.Histogram{0.5, 0.1, 0.4}
)

// requirePlanInDelta compares a plan against literal rows entrywise.
func requirePlanInDelta(t *testing.T, want [][]float64, got *transport.Plan) {
	t.Helper()
	require.NotNil(t, got)
	require.Equal(t, len(want), got.Rows(), "row count")
	for i, row := range want {
		require.Equal(t, len(row), got.Cols(), "col count")
		for j, w := range row {
			v, err := got.At(i, j)
			require.NoError(t, err)
			require.InDeltaf(t, w, v, tol, "entry (%d,%d)", i, j)
		}
	}
}

// massScales are the totals the property tests run at.
var massScales = []float64{1e-10, 1, 1e6}

// randomHistogram draws n positive masses normalized to total scale.
func randomHistogram(r *rand.Rand, n int, scale float64) transport.Histogram {
	h := make(transport.Histogram, n)
	var sum float64
	for k := range h {
		h[k] = r.Float64() + 0.01
		sum += h[k]
	}
	for k := range h {
		h[k] = h[k] / sum * scale
	}

	return h
}
