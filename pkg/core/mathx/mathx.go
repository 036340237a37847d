// Package mathx provides the small numeric helpers shared by the simulation
// engines: clamping, sample statistics, rounding, and a seedable
// standard-normal source.
package mathx

import "math"

// Clamp restricts v to the closed interval [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SampleStdDev returns the sample standard deviation (n-1 denominator).
// Fewer than two observations yield 0.
func SampleStdDev(xs []float64) float64 {
	n := len(xs)
	if n < 2 {
		return 0
	}

	var sum float64
	for _, x := range xs {
		sum += x
	}
	mean := sum / float64(n)

	var ss float64
	for _, x := range xs {
		d := x - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(n-1))
}

// RoundTo rounds v to the given number of decimal places.
func RoundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
