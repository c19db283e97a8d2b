// SPDX-License-Identifier: MIT

// Package transport: sentinel error set.
// Every validation failure wraps ErrInvalidInput, so callers can match the
// whole error kind with errors.Is(err, ErrInvalidInput) or a precise cause
// with the specific sentinel. Detection sites add context via fmt.Errorf
// ("...: %w") and never panic on user input.

package transport

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the umbrella kind for every rejected input.
var ErrInvalidInput = errors.New("transport: invalid input")

var (
	// ErrEmptyHistogram is returned when source or target has no entries.
	ErrEmptyHistogram = fmt.Errorf("%w: empty histogram", ErrInvalidInput)

	// ErrNegativeMass is returned when a histogram holds a negative entry.
	ErrNegativeMass = fmt.Errorf("%w: negative mass", ErrInvalidInput)

	// ErrNaNInf is returned when a histogram or cost entry is NaN or ±Inf.
	ErrNaNInf = fmt.Errorf("%w: NaN or Inf encountered", ErrInvalidInput)

	// ErrMassMismatch is returned when sum(source) and sum(target) differ
	// by more than the configured mass tolerance.
	ErrMassMismatch = fmt.Errorf("%w: total mass mismatch", ErrInvalidInput)

	// ErrPermutationLength is returned when a permutation does not match
	// the length of the histogram it reorders.
	ErrPermutationLength = fmt.Errorf("%w: permutation length mismatch", ErrInvalidInput)

	// ErrNotPermutation is returned when an index array is not a bijection
	// of {0..n-1} (out-of-range or repeated index).
	ErrNotPermutation = fmt.Errorf("%w: not a permutation", ErrInvalidInput)

	// ErrDimensionMismatch is returned when a cost matrix or marginal vector
	// does not match the plan shape.
	ErrDimensionMismatch = fmt.Errorf("%w: dimension mismatch", ErrInvalidInput)

	// ErrOutOfRange is returned by Plan.At/Set for indices outside the plan.
	ErrOutOfRange = fmt.Errorf("%w: index out of range", ErrInvalidInput)

	// ErrMarginalViolation is returned by Plan.CheckMarginals when a row or
	// column sum differs from the expected histogram value.
	ErrMarginalViolation = errors.New("transport: marginal constraint violated")

	// ErrTooManyPermutations is returned by Vertices when n!·m! exceeds the
	// configured enumeration limit.
	ErrTooManyPermutations = errors.New("transport: too many permutations to enumerate")
)
