// Package nwcorner is an in-memory toolkit for building feasible discrete
// optimal-transport plans with the North-West Corner rule.
//
// 🚀 What is in here?
//
//	A small, pure-Go library and a demonstration driver:
//		• transport: the North-West Corner rule, its relabeled variant,
//		  plan inspection (marginals, support, vertex bound, cost evaluation)
//		  and vertex enumeration over permutations
//		• cmd/nwcorner: CLI running the reference cases, single problems,
//		  YAML batches and vertex listings
//		• examples: runnable scenario programs
//
// ✨ Why the North-West Corner rule?
//
//   - It always returns a vertex of the transport polytope U(a, b)
//   - It runs in O(n+m) allocation steps
//   - Relabeling rows and columns reaches other vertices
//
// Non-goal: no cost is minimized. The rule is the starting point that
// simplex-style transport solvers improve on.
//
// Layout:
//
//	transport/     — Allocate, AllocatePermuted, Plan, Vertices, Sample
//	cmd/nwcorner/  — demonstration driver
//	examples/      — scenario programs
//
//	go get github.com/katalvlaran/nwcorner/transport
package nwcorner
