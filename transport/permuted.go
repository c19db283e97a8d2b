// SPDX-License-Identifier: MIT

package transport

import "fmt"

// AllocatePermuted — North-West Corner under relabeling
//
// Description:
//
//	Different orderings of the bins make the North-West Corner rule stop at
//	different vertices of U(source, target). AllocatePermuted relabels the
//	bins, runs Allocate, and maps the result back so that row i and column j
//	always refer to source[i] and target[j]. Marginals are unchanged; only
//	the vertex differs.
//
// Algorithm Outline:
//  1. source' = source[rowPerm], target' = target[colPerm].
//  2. P' = Allocate(source', target').
//  3. rowInv[rowPerm[k]] = k, colInv[colPerm[k]] = k.
//  4. P = P'[:, colInv][rowInv, :].
//
// The intermediate P' is handed to the WithOnPermuted hook, if any.
//
// Errors (unless WithoutValidation):
//   - histogram sentinels as in Allocate.
//   - ErrPermutationLength, ErrNotPermutation for rowPerm/colPerm.
func AllocatePermuted(source, target Histogram, rowPerm, colPerm Permutation, opts ...Option) (*Plan, error) {
	o := gatherOptions(opts...)
	if err := checkInputs(source, target, &o); err != nil {
		return nil, err
	}
	if o.validate {
		if err := rowPerm.Validate(len(source)); err != nil {
			return nil, fmt.Errorf("row permutation: %w", err)
		}
		if err := colPerm.Validate(len(target)); err != nil {
			return nil, fmt.Errorf("column permutation: %w", err)
		}
	}

	return allocatePermuted(source, target, rowPerm, colPerm, &o), nil
}

// allocatePermuted is the trusted-input body shared with Vertices/Sample.
func allocatePermuted(source, target Histogram, rowPerm, colPerm Permutation, o *Options) *Plan {
	permuted := allocate(rowPerm.Gather(source), colPerm.Gather(target), o)
	if o.onPermuted != nil {
		o.onPermuted(permuted, rowPerm, colPerm)
	}

	return permuted.PermuteCols(colPerm.Inverse()).PermuteRows(rowPerm.Inverse())
}
