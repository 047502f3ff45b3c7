// Package angle provides bearing and relative-angle math in degrees.
//
// Bearings are absolute orientations in a shared reference frame chosen by
// the caller (e.g. compass-style, clockwise-positive). Relative angles are
// normalized to (-180, 180]: 0 is directly ahead, +90 directly right,
// -90 directly left, 180 directly behind.
package angle

import "math"

const degPerRad = 180 / math.Pi

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg / degPerRad
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * degPerRad
}

// Normalize wraps an angle in degrees into (-180, 180].
// Non-finite input yields NaN.
func Normalize(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d <= -180 {
		d += 360
	} else if d > 180 {
		d -= 360
	}

	return d
}

// Resolve returns the bearing of a source relative to a listener, in
// degrees normalized to (-180, 180]. Both bearings may be any finite real
// value in a shared reference frame; the delta is wrapped through
// atan2(sin, cos) so arbitrarily large or negative bearings resolve
// correctly without modulo special cases.
//
// The mapping is continuous except at the ±180° seam, where a ULP-level
// difference in input can flip the sign of the result. Non-finite inputs
// yield NaN.
func Resolve(listenerBearing, sourceBearing float64) float64 {
	delta := Radians(sourceBearing - listenerBearing)
	return Degrees(math.Atan2(math.Sin(delta), math.Cos(delta)))
}

// FoldLateral reflects an angle into the lateral range [-90, 90],
// collapsing the front/back distinction: an angle and its front/back
// mirror (180 - angle) fold to the same value. The input is normalized
// first, so FoldLateral(d) == FoldLateral(d+360k) for any integer k.
// Non-finite input yields NaN.
func FoldLateral(deg float64) float64 {
	d := Normalize(deg)
	if d > 90 {
		return 180 - d
	}

	if d < -90 {
		return -180 - d
	}

	return d
}

// Behind reports whether an angle places a source in the rear hemisphere,
// evaluated on the normalized angle. Exactly ±90 counts as lateral, not
// behind. Non-finite input reports false.
func Behind(deg float64) bool {
	return math.Abs(Normalize(deg)) > 90
}
