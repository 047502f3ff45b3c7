package spatial

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Curve computes left and right gain tables for a sweep of relative
// angles, applying the given rear attenuation per entry. The returned
// slices have the same length as angles.
func Curve(angles []float64, behindAttenuation float64) (left, right []float64) {
	left = make([]float64, len(angles))
	right = make([]float64, len(angles))

	for i, a := range angles {
		gain := Pan(a, behindAttenuation)
		left[i] = gain.Left
		right[i] = gain.Right
	}

	return left, right
}

// PowerCurve fills dst with the per-entry power sum left[i]² + right[i]².
// All slices must have equal length. For curves computed with attenuation
// 1 every entry is 1 within floating-point tolerance.
func PowerCurve(dst, left, right []float64) error {
	if len(dst) != len(left) || len(left) != len(right) {
		return fmt.Errorf("power curve: slice lengths must match: dst=%d left=%d right=%d",
			len(dst), len(left), len(right))
	}

	vecmath.Power(dst, left, right)

	return nil
}

// ScaleCurve applies a uniform master gain to both gain tables in place,
// e.g. to bake headroom into a precomputed curve. Both tables must have
// the same length.
func ScaleCurve(left, right []float64, gain float64) error {
	if len(left) != len(right) {
		return fmt.Errorf("scale curve: left and right tables must have equal length: %d != %d",
			len(left), len(right))
	}

	vecmath.ScaleBlockInPlace(left, gain)
	vecmath.ScaleBlockInPlace(right, gain)

	return nil
}
