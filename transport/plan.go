// SPDX-License-Identifier: MIT

// Package transport - Plan storage (row-major) & inspection.
//
// Purpose:
//   - Hold an n×m transport plan in a flat row-major buffer (offset i*cols+j).
//   - Keep the public surface panic-free: At/Set return ErrOutOfRange.
//   - Provide the checks a caller needs to trust a plan: marginals,
//     support size, vertex bound, cost evaluation.
//
// Complexity quicksheet:
//   - newPlan: O(n*m); At/Set: O(1); RowSums/ColSums/Support/Cost: O(n*m).

package transport

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// ---------- formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

func planErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Plan.%s(%d,%d): %w", method, row, col, err)
}

// Plan is an n×m transport plan: entry (i, j) is the mass moved from
// source bin i to target bin j.
type Plan struct {
	r, c int
	data []float64
}

var _ fmt.Stringer = (*Plan)(nil)

// newPlan allocates a zero r×c plan. Callers guarantee r, c ≥ 0.
func newPlan(rows, cols int) *Plan {
	return &Plan{r: rows, c: cols, data: make([]float64, rows*cols)}
}

// NewPlanFromSlices copies a rectangular [][]float64 into a Plan.
// Ragged input returns ErrDimensionMismatch.
func NewPlanFromSlices(rows [][]float64) (*Plan, error) {
	if len(rows) == 0 {
		return newPlan(0, 0), nil
	}
	cols := len(rows[0])
	p := newPlan(len(rows), cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d cols, want %d: %w", i, len(row), cols, ErrDimensionMismatch)
		}
		copy(p.data[i*cols:(i+1)*cols], row)
	}

	return p, nil
}

// Rows returns the number of source bins.
func (p *Plan) Rows() int { return p.r }

// Cols returns the number of target bins.
func (p *Plan) Cols() int { return p.c }

// Shape returns (rows, cols).
func (p *Plan) Shape() (rows, cols int) { return p.r, p.c }

func (p *Plan) indexOf(row, col int) (int, error) {
	if row < 0 || row >= p.r || col < 0 || col >= p.c {
		return 0, ErrOutOfRange
	}

	return row*p.c + col, nil
}

// At returns entry (row, col).
func (p *Plan) At(row, col int) (float64, error) {
	idx, err := p.indexOf(row, col)
	if err != nil {
		return 0, planErrorf(ctxAt, row, col, err)
	}

	return p.data[idx], nil
}

// Set writes entry (row, col). NaN and ±Inf are rejected.
func (p *Plan) Set(row, col int, v float64) error {
	idx, err := p.indexOf(row, col)
	if err != nil {
		return planErrorf(ctxSet, row, col, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return planErrorf(ctxSet, row, col, ErrNaNInf)
	}
	p.data[idx] = v

	return nil
}

// at is the unchecked accessor used by in-package loops.
func (p *Plan) at(i, j int) float64 { return p.data[i*p.c+j] }

// Clone returns a deep copy.
func (p *Plan) Clone() *Plan {
	out := newPlan(p.r, p.c)
	copy(out.data, p.data)

	return out
}

// ToSlices returns the plan as a freshly allocated [][]float64.
func (p *Plan) ToSlices() [][]float64 {
	out := make([][]float64, p.r)
	for i := range out {
		out[i] = make([]float64, p.c)
		copy(out[i], p.data[i*p.c:(i+1)*p.c])
	}

	return out
}

// RowSums returns Σ_j P[i][j] for every row.
func (p *Plan) RowSums() Histogram {
	out := make(Histogram, p.r)
	for i := 0; i < p.r; i++ {
		base := i * p.c
		for j := 0; j < p.c; j++ {
			out[i] += p.data[base+j]
		}
	}

	return out
}

// ColSums returns Σ_i P[i][j] for every column.
func (p *Plan) ColSums() Histogram {
	out := make(Histogram, p.c)
	for i := 0; i < p.r; i++ {
		base := i * p.c
		for j := 0; j < p.c; j++ {
			out[j] += p.data[base+j]
		}
	}

	return out
}

// Support counts entries strictly greater than eps.
func (p *Plan) Support(eps float64) int {
	n := 0
	for _, v := range p.data {
		if v > eps {
			n++
		}
	}

	return n
}

// IsVertex reports whether the support fits the vertex bound n+m−1.
func (p *Plan) IsVertex(eps float64) bool {
	if p.r == 0 || p.c == 0 {
		return true
	}

	return p.Support(eps) <= p.r+p.c-1
}

// CheckMarginals verifies non-negativity and that row sums match source and
// column sums match target within eps.
func (p *Plan) CheckMarginals(source, target Histogram, eps float64) error {
	if len(source) != p.r || len(target) != p.c {
		return fmt.Errorf("plan %dx%d vs marginals %d,%d: %w", p.r, p.c, len(source), len(target), ErrDimensionMismatch)
	}
	for k, v := range p.data {
		if v < -eps {
			return fmt.Errorf("entry (%d,%d)=%g: %w", k/p.c, k%p.c, v, ErrMarginalViolation)
		}
	}
	for i, s := range p.RowSums() {
		if math.Abs(s-source[i]) > eps {
			return fmt.Errorf("row %d sums to %g, want %g: %w", i, s, source[i], ErrMarginalViolation)
		}
	}
	for j, s := range p.ColSums() {
		if math.Abs(s-target[j]) > eps {
			return fmt.Errorf("col %d sums to %g, want %g: %w", j, s, target[j], ErrMarginalViolation)
		}
	}

	return nil
}

// Cost evaluates ⟨C, P⟩ = Σ C[i][j]·P[i][j]. It does not optimize anything.
func (p *Plan) Cost(cost [][]float64) (float64, error) {
	if len(cost) != p.r {
		return 0, fmt.Errorf("cost has %d rows, plan %d: %w", len(cost), p.r, ErrDimensionMismatch)
	}
	var total float64
	for i, row := range cost {
		if len(row) != p.c {
			return 0, fmt.Errorf("cost row %d has %d cols, plan %d: %w", i, len(row), p.c, ErrDimensionMismatch)
		}
		for j, cij := range row {
			if math.IsNaN(cij) || math.IsInf(cij, 0) {
				return 0, fmt.Errorf("cost[%d][%d]=%g: %w", i, j, cij, ErrNaNInf)
			}
			total += cij * p.at(i, j)
		}
	}

	return total, nil
}

// Equal reports whether p and q share a shape and agree entrywise within eps.
func (p *Plan) Equal(q *Plan, eps float64) bool {
	if q == nil || p.r != q.r || p.c != q.c {
		return false
	}
	for k := range p.data {
		if math.Abs(p.data[k]-q.data[k]) > eps {
			return false
		}
	}

	return true
}

// PermuteRows returns a plan whose row k is row perm[k] of p.
func (p *Plan) PermuteRows(perm Permutation) *Plan {
	out := newPlan(p.r, p.c)
	for k, src := range perm {
		copy(out.data[k*p.c:(k+1)*p.c], p.data[src*p.c:(src+1)*p.c])
	}

	return out
}

// PermuteCols returns a plan whose column k is column perm[k] of p.
func (p *Plan) PermuteCols(perm Permutation) *Plan {
	out := newPlan(p.r, p.c)
	for i := 0; i < p.r; i++ {
		base := i * p.c
		for k, src := range perm {
			out.data[base+k] = p.data[base+src]
		}
	}

	return out
}

// String renders one bracketed row per line.
func (p *Plan) String() string {
	var b strings.Builder
	for i := 0; i < p.r; i++ {
		b.WriteString(_fmtRowOpen)
		base := i * p.c
		for j := 0; j < p.c; j++ {
			fmt.Fprintf(&b, "%g", p.data[base+j])
			if j+1 < p.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// key is a stable identity for deduplication: entries rounded to 12
// significant digits so round-off noise does not split equal vertices.
func (p *Plan) key() string {
	var b strings.Builder
	for _, v := range p.data {
		fmt.Fprintf(&b, "%.12g;", v)
	}

	return b.String()
}
