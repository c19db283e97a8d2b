// Package transport finds vertices of the discrete optimal-transport
// polytope with the North-West Corner rule.
//
// 🚀 What is the North-West Corner rule?
//
//	Given a source histogram a (n bins) and a target histogram b (m bins)
//	with equal total mass, the rule fills an n×m plan starting at the
//	top-left ("north-west") cell. Each step moves as much mass as the
//	tighter of the remaining row/column capacity allows, then steps down,
//	right, or both. The result satisfies every marginal constraint and has
//	at most n+m−1 non-zero cells: a vertex of U(a, b).
//
//	It is used as:
//	  • an initial basic feasible solution for network simplex
//	  • a cheap feasible coupling for sanity checks
//	  • a vertex generator (under relabeling) for exploring U(a, b)
//
// ✨ Key features:
//   - Allocate: the rule itself, O(n+m) steps
//   - AllocatePermuted: the rule under row/column relabeling, mapped back
//   - Vertices / Sample: distinct vertices over many relabelings
//   - three numeric policies: tolerance (default), strict, exact decimal
//   - validation with sentinel errors, all matching ErrInvalidInput
//   - hooks for every allocation step and every permuted plan
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/nwcorner/transport"
//
//	a := transport.Histogram{0.2, 0.5, 0.3}
//	b := transport.Histogram{0.5, 0.1, 0.4}
//
//	plan, err := transport.Allocate(a, b)
//	// [0.2, 0, 0]
//	// [0.3, 0.1, 0.1]
//	// [0, 0, 0.3]
//
//	plan, err = transport.AllocatePermuted(a, b,
//	  transport.Permutation{2, 0, 1}, transport.Permutation{2, 1, 0})
//	// [0, 0.1, 0.1]
//	// [0.5, 0, 0]
//	// [0, 0, 0.3]
//
// Non-goal: nothing here minimizes a transport cost. Plan.Cost evaluates a
// given plan; choosing the cheapest one is left to a real solver.
//
// Performance:
//
//   - Allocate:  O(n·m) memory for the plan, O(n+m) allocation steps
//   - Vertices:  O(n!·m!·n·m), bounded by WithMaxPermutations
package transport
