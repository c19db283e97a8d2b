// SPDX-License-Identifier: MIT

// Package transport: functional configuration and numeric policy.
//
// Numeric policy is explicit and has three modes:
//   - tolerance (default): a remaining capacity is exhausted once it is
//     ≤ eps times the original mass of its bin. The test is relative, so it
//     behaves the same for masses of order 1e-10 and 1e12.
//   - strict: WithEpsilon(0) compares remaining capacity to zero exactly.
//   - exact: WithExactArithmetic() runs the bookkeeping in decimal arithmetic
//     and compares to zero exactly.
//
// Constructors panic only on nonsensical parameters (programmer error).
// User input errors are always returned as sentinels from errors.go.

package transport

import (
	"math"
	"runtime"
)

// Numeric policy defaults.
const (
	// DefaultEpsilon is the relative exhaustion threshold for remaining
	// capacities: remaining ≤ eps·bin counts as used up.
	DefaultEpsilon = 1e-9

	// DefaultMassTolerance is the relative tolerance used to compare total
	// source and target mass: |Σa−Σb| ≤ tol·max(Σa, Σb).
	DefaultMassTolerance = 1e-9
)

// Enumeration defaults.
const (
	// DefaultMaxPermutations bounds n!·m! for Vertices (8! = 40320).
	DefaultMaxPermutations = 40320

	// DefaultConcurrency is the worker count for Vertices and Sample.
	DefaultConcurrency = 4
)

const (
	panicEpsilonInvalid     = "transport: WithEpsilon: eps must be finite, non-negative"
	panicToleranceInvalid   = "transport: WithMassTolerance: tol must be finite, non-negative"
	panicMaxPermsInvalid    = "transport: WithMaxPermutations: limit must be > 0"
	panicConcurrencyInvalid = "transport: WithConcurrency: workers must be > 0"
)

// AllocateHook observes every allocation step (i, j, amount).
type AllocateHook func(i, j int, amount float64)

// PermutedHook observes the intermediate plan computed on the permuted
// histograms, before it is mapped back to the original index order.
type PermutedHook func(permuted *Plan, rowPerm, colPerm Permutation)

// Option mutates Options. Applying the same Option twice is harmless.
type Option func(*Options)

// Options is the resolved configuration. Fields are unexported; callers
// use the WithX constructors.
type Options struct {
	eps      float64 // relative exhaustion threshold; 0 ⇒ strict equality
	massTol  float64 // relative tolerance for Σsource vs Σtarget
	exact    bool    // decimal bookkeeping
	validate bool    // run input validation

	onAllocate AllocateHook
	onPermuted PermutedHook

	maxPerms    int // Vertices guard on n!·m!
	concurrency int // Vertices/Sample workers
}

func defaultOptions() Options {
	return Options{
		eps:         DefaultEpsilon,
		massTol:     DefaultMassTolerance,
		validate:    true,
		maxPerms:    DefaultMaxPermutations,
		concurrency: min(DefaultConcurrency, runtime.GOMAXPROCS(0)),
	}
}

// gatherOptions resolves opts over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithEpsilon sets the relative exhaustion threshold. eps=0 selects strict equality,
// reproducing the textbook rule exactly (round-off may then leave tiny
// residual capacities that open extra cells).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithMassTolerance sets the relative tolerance of the total mass check.
func WithMassTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.massTol = tol }
}

// WithExactArithmetic runs the allocator in decimal arithmetic. Inputs are
// taken at their shortest decimal representation (0.1 is exactly 1/10).
func WithExactArithmetic() Option {
	return func(o *Options) { o.exact = true }
}

// WithoutValidation disables input validation. With unequal masses the loop
// stops when either pointer runs out and the residual mass stays unallocated.
// Combined with WithExactArithmetic, NaN and ±Inf are still rejected with
// ErrNaNInf since they cannot be converted to decimals.
func WithoutValidation() Option {
	return func(o *Options) { o.validate = false }
}

// WithOnAllocate installs a hook called for every allocation step.
func WithOnAllocate(fn AllocateHook) Option {
	return func(o *Options) { o.onAllocate = fn }
}

// WithOnPermuted installs a hook receiving the intermediate permuted plan.
func WithOnPermuted(fn PermutedHook) Option {
	return func(o *Options) { o.onPermuted = fn }
}

// WithMaxPermutations bounds the number of permutation pairs Vertices may visit.
func WithMaxPermutations(limit int) Option {
	if limit <= 0 {
		panic(panicMaxPermsInvalid)
	}

	return func(o *Options) { o.maxPerms = limit }
}

// WithConcurrency sets the number of workers used by Vertices and Sample.
func WithConcurrency(workers int) Option {
	if workers <= 0 {
		panic(panicConcurrencyInvalid)
	}

	return func(o *Options) { o.concurrency = workers }
}
