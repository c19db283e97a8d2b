// SPDX-License-Identifier: MIT

package transport

import "github.com/shopspring/decimal"

// allocateExact runs the North-West Corner loop in decimal arithmetic.
// Each input enters at its shortest decimal representation, so histograms
// written as decimal literals (0.2, 0.5, 0.3) balance exactly and the
// exhaustion test is a true zero check.
func allocateExact(source, target Histogram, hook AllocateHook) *Plan {
	n, m := len(source), len(target)
	plan := newPlan(n, m)
	if n == 0 || m == 0 {
		return plan
	}

	a := toDecimals(source)
	b := toDecimals(target)

	var (
		i, j int
		r    = a[0]
		c    = b[0]
	)
	for i < n && j < m {
		amount := decimal.Min(r, c)
		v := amount.InexactFloat64()
		plan.data[i*m+j] = v
		if hook != nil {
			hook(i, j, v)
		}
		r = r.Sub(amount)
		c = c.Sub(amount)

		rowDone := r.IsZero()
		colDone := c.IsZero()
		if rowDone {
			i++
			if i < n {
				r = a[i]
			}
		}
		if colDone {
			j++
			if j < m {
				c = b[j]
			}
		}
	}

	return plan
}

func toDecimals(h Histogram) []decimal.Decimal {
	out := make([]decimal.Decimal, len(h))
	for k, v := range h {
		out[k] = decimal.NewFromFloat(v)
	}

	return out
}

// ExactSum returns the total mass of h computed in decimal arithmetic.
func ExactSum(h Histogram) decimal.Decimal {
	sum := decimal.Zero
	for _, v := range toDecimals(h) {
		sum = sum.Add(v)
	}

	return sum
}
