// SPDX-License-Identifier: MIT

// Package transport - vertex enumeration by relabeling.
//
// Every North-West Corner solution of a permuted problem is a vertex of
// U(source, target). Walking permutation pairs therefore walks vertices,
// with many pairs landing on the same one. Vertices walks all pairs of
// small problems; Sample draws a reproducible random subset.
//
// Concurrency:
//   - Work fans out over an errgroup; each task writes only its own slot.
//   - Hooks installed with WithOnAllocate/WithOnPermuted are called from
//     several goroutines and must be safe for concurrent use.
//   - Results are merged in a fixed order, so output is deterministic.

package transport

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Vertex is a distinct plan together with the first permutation pair
// (in enumeration order) that produced it.
type Vertex struct {
	Plan    *Plan
	RowPerm Permutation
	ColPerm Permutation
}

// Vertices runs AllocatePermuted for every pair of row and column
// permutations and returns the distinct plans in discovery order.
//
// Errors:
//   - histogram sentinels as in Allocate.
//   - ErrTooManyPermutations when n!·m! exceeds WithMaxPermutations.
//   - ctx.Err() when ctx is cancelled first.
func Vertices(ctx context.Context, source, target Histogram, opts ...Option) ([]Vertex, error) {
	o := gatherOptions(opts...)
	if err := checkInputs(source, target, &o); err != nil {
		return nil, err
	}
	n, m := len(source), len(target)
	fn, fm := factorial(n, o.maxPerms), factorial(m, o.maxPerms)
	if fn > o.maxPerms || fm > o.maxPerms || fn > o.maxPerms/fm {
		return nil, fmt.Errorf("%d!·%d! > %d: %w", n, m, o.maxPerms, ErrTooManyPermutations)
	}

	rowPerms := collectPermutations(n)
	colPerms := collectPermutations(m)

	// Each row permutation is one task; results[k] holds its column sweep.
	results := make([][]Vertex, len(rowPerms))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for k := range rowPerms {
		k := k
		g.Go(func() error {
			local := make([]Vertex, 0, len(colPerms))
			for _, cp := range colPerms {
				if err := gctx.Err(); err != nil {
					return err
				}
				local = append(local, Vertex{
					Plan:    allocatePermuted(source, target, rowPerms[k], cp, &o),
					RowPerm: rowPerms[k],
					ColPerm: cp,
				})
			}
			results[k] = local
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []Vertex
	for _, r := range results {
		all = append(all, r...)
	}

	return dedupe(all), nil
}

// Sample draws k random permutation pairs from a seeded stream and returns
// the distinct plans they produce. The same seed yields the same output.
// k is bounded by WithMaxPermutations like the pair count of Vertices.
func Sample(ctx context.Context, source, target Histogram, k int, seed int64, opts ...Option) ([]Vertex, error) {
	o := gatherOptions(opts...)
	if k <= 0 {
		return nil, fmt.Errorf("sample count %d: %w", k, ErrInvalidInput)
	}
	if k > o.maxPerms {
		return nil, fmt.Errorf("sample count %d > %d: %w", k, o.maxPerms, ErrTooManyPermutations)
	}
	if err := checkInputs(source, target, &o); err != nil {
		return nil, err
	}

	// Draw all permutations up front from one stream to keep the output
	// independent of scheduling.
	rng := rngFromSeed(seed)
	draws := make([]Vertex, k)
	for s := range draws {
		draws[s].RowPerm = RandomPermutation(rng, len(source))
		draws[s].ColPerm = RandomPermutation(rng, len(target))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for s := range draws {
		s := s
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			draws[s].Plan = allocatePermuted(source, target, draws[s].RowPerm, draws[s].ColPerm, &o)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return dedupe(draws), nil
}

func collectPermutations(n int) []Permutation {
	var out []Permutation
	forEachPermutation(n, func(p Permutation) bool {
		out = append(out, p.Clone())
		return true
	})

	return out
}

// dedupe keeps the first occurrence of every distinct plan.
func dedupe(in []Vertex) []Vertex {
	seen := make(map[string]struct{}, len(in))
	out := make([]Vertex, 0, len(in))
	for _, v := range in {
		key := v.Plan.key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}

	return out
}
