package solver

import "math"

// gap computes the optimality gap. Bounds already met (including the
// doubly-zero n == 0 boundary, where both bounds are 0) report a flat 0
// rather than falling into the general formula's 0/0. Short of that, the
// lowerBound == 0 edge case with upperBound > 0 falls through to the
// final branch and yields (upperBound-0)/upperBound == 1, matching the
// documented source behavior rather than a hand-tuned special case.
func gap(lowerBound, upperBound float64) float64 {
	if lowerBound == upperBound {
		return 0
	}
	if math.IsInf(upperBound, 1) {
		return 1
	}
	if upperBound < 0 {
		return math.Abs(upperBound-lowerBound) / math.Abs(lowerBound)
	}

	return (upperBound - lowerBound) / upperBound
}
