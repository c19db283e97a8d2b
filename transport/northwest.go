// SPDX-License-Identifier: MIT

package transport

// Allocate — North-West Corner rule
//
// Description:
//
//	Finds a vertex of the transport polytope U(source, target): a plan
//	whose row sums are source, column sums are target, and which has at
//	most n+m−1 non-zero entries. The plan is not cost-optimal; it is the
//	usual starting point for solvers that are.
//
// Algorithm Outline:
//  1. i = j = 0, r = source[0], c = target[0].
//  2. While i < n and j < m:
//     P[i][j] = min(r, c); r -= P[i][j]; c -= P[i][j]
//     if r exhausted: i++, r = source[i]
//     if c exhausted: j++, c = target[j]
//     Both checks run every step; a tie advances both pointers, which is
//     what keeps the support at n+m−1 instead of n+m.
//
// Numeric policy (see options.go):
//   - default: exhausted ⇔ remaining ≤ eps·bin, where bin is the original
//     mass of the row (or column) being filled and eps is DefaultEpsilon.
//   - WithEpsilon(0): exhausted ⇔ remaining == 0.
//   - WithExactArithmetic(): decimal bookkeeping, exhausted ⇔ IsZero().
//
// Complexity:
//
//	Time   = O(n·m) (zeroed plan) + O(n+m) steps
//	Memory = O(n·m)
//
// Errors (unless WithoutValidation):
//   - ErrEmptyHistogram, ErrNaNInf, ErrNegativeMass, ErrMassMismatch.
//   - exact mode reports ErrNaNInf even without validation.
func Allocate(source, target Histogram, opts ...Option) (*Plan, error) {
	o := gatherOptions(opts...)
	if err := checkInputs(source, target, &o); err != nil {
		return nil, err
	}

	return allocate(source, target, &o), nil
}

// allocate dispatches on the arithmetic mode. Inputs are trusted.
func allocate(source, target Histogram, o *Options) *Plan {
	if o.exact {
		return allocateExact(source, target, o.onAllocate)
	}

	return allocateFloat(source, target, o.eps, o.onAllocate)
}

func allocateFloat(source, target Histogram, eps float64, hook AllocateHook) *Plan {
	n, m := len(source), len(target)
	plan := newPlan(n, m)
	if n == 0 || m == 0 {
		return plan
	}

	var (
		i, j int
		r    = source[0]
		c    = target[0]
	)
	// Every iteration advances at least one pointer, so n+m bounds it
	// even when eps=0 lets round-off residue through.
	for steps := 0; i < n && j < m && steps < n+m; steps++ {
		amount := min(r, c)
		plan.data[i*m+j] = amount
		if hook != nil {
			hook(i, j, amount)
		}
		r -= amount
		c -= amount

		rowDone := exhausted(r, source[i], eps)
		colDone := exhausted(c, target[j], eps)
		if rowDone {
			i++
			if i < n {
				r = source[i]
			}
		}
		if colDone {
			j++
			if j < m {
				c = target[j]
			}
		}
	}

	return plan
}

// exhausted reports whether the remaining part v of a bin with original
// mass capacity counts as zero. The threshold scales with the bin, so
// round-off is absorbed while real mass survives at any magnitude.
func exhausted(v, capacity, eps float64) bool {
	if eps == 0 {
		return v == 0
	}

	return v <= eps*capacity
}
