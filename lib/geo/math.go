package geo

import "math"

// PRECISION is the tolerance for comparing computed coordinates.
const PRECISION = 0.0001

// PrecisionCompare orders a and b, treating them as equal within e.
func PrecisionCompare(a, b, e float64) int {
	if math.Abs(a-b) < e {
		return 0
	}
	if a < b {
		return -1
	}
	return 1
}

// Pin clamps v into [lo, hi]. When lo > hi, lo wins.
func Pin(lo, v, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// Deg converts degrees to radians.
func Deg(d float64) float64 {
	return d * math.Pi / 180
}
