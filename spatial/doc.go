// Package spatial provides constant-power stereo panning from relative
// source angles.
//
// Included:
//   - Pan: Pure constant-power gain computation with rear attenuation.
//   - Panner: Configured panner with bearing resolution built in.
//   - Curve, PowerCurve, ScaleCurve: Gain tables over angle sweeps.
//   - Table: Precomputed pan lookup table for real-time callers.
package spatial
