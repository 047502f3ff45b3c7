package testutil

// AngleSweep generates n evenly spaced angles in degrees from first to
// last inclusive. n must be at least 2; n == 1 yields just first.
func AngleSweep(first, last float64, n int) []float64 {
	if n <= 0 {
		return nil
	}

	out := make([]float64, n)
	if n == 1 {
		out[0] = first
		return out
	}

	step := (last - first) / float64(n-1)
	for i := range out {
		out[i] = first + step*float64(i)
	}

	// Avoid accumulated rounding on the final endpoint.
	out[n-1] = last

	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}

	return out
}
