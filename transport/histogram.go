// SPDX-License-Identifier: MIT

package transport

import (
	"fmt"
	"math"
)

// Histogram is an ordered sequence of non-negative masses.
type Histogram []float64

// Sum returns the total mass using Kahan compensated summation.
func (h Histogram) Sum() float64 {
	var sum, comp float64
	for _, v := range h {
		y := v - comp
		t := sum + y
		comp = (t - sum) - y
		sum = t
	}

	return sum
}

// Clone returns an independent copy of h.
func (h Histogram) Clone() Histogram {
	if h == nil {
		return nil
	}
	out := make(Histogram, len(h))
	copy(out, h)

	return out
}

// Validate checks that h is non-empty, finite and non-negative.
// name labels the histogram in the returned error ("source", "target").
func (h Histogram) Validate(name string) error {
	if len(h) == 0 {
		return fmt.Errorf("%s: %w", name, ErrEmptyHistogram)
	}
	if err := h.checkFinite(name); err != nil {
		return err
	}
	for k, v := range h {
		if v < 0 {
			return fmt.Errorf("%s[%d]=%g: %w", name, k, v, ErrNegativeMass)
		}
	}

	return nil
}

func (h Histogram) checkFinite(name string) error {
	for k, v := range h {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s[%d]=%g: %w", name, k, v, ErrNaNInf)
		}
	}

	return nil
}

// validatePair runs the histogram checks for both sides and the total
// mass comparison. Priority: source shape/values → target → mass.
// The mass check is relative to the larger total, at every scale.
func validatePair(source, target Histogram, massTol float64) error {
	if err := source.Validate("source"); err != nil {
		return err
	}
	if err := target.Validate("target"); err != nil {
		return err
	}
	sa, sb := source.Sum(), target.Sum()
	if math.Abs(sa-sb) > massTol*math.Max(sa, sb) {
		return fmt.Errorf("Σsource=%g Σtarget=%g: %w", sa, sb, ErrMassMismatch)
	}

	return nil
}

// checkInputs applies the validation policy of o. Without validation, exact
// mode still rejects NaN and ±Inf: they have no decimal representation.
func checkInputs(source, target Histogram, o *Options) error {
	if o.validate {
		return validatePair(source, target, o.massTol)
	}
	if o.exact {
		if err := source.checkFinite("source"); err != nil {
			return err
		}
		return target.checkFinite("target")
	}

	return nil
}
