package math3d

import "math"

// Epsilon is the shared degeneracy threshold for single-precision work.
// Every near-zero decision in the pipeline (degenerate triangles, collapsed
// scales) must use this constant so the whole renderer agrees on what
// "zero area" means.
const Epsilon float32 = 1e-5

// Abs returns the absolute value of x.
func Abs(x float32) float32 {
	return float32(math.Abs(float64(x)))
}

// Clamp limits x to the range [lo, hi].
func Clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Lerp returns the linear interpolation between a and b by t.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// ApproxEqual reports whether a and b differ by at most Epsilon.
func ApproxEqual(a, b float32) bool {
	return Abs(a-b) <= Epsilon
}

// Min3 returns the smallest of three values.
func Min3(a, b, c float32) float32 {
	return min(a, min(b, c))
}

// Max3 returns the largest of three values.
func Max3(a, b, c float32) float32 {
	return max(a, max(b, c))
}
