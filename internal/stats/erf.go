package stats

import "math"

// SeriesTerms is the number of Maclaurin terms summed by Erf.
const SeriesTerms = 50

// saturation bounds the series argument. Cancellation error in the 50-term
// partial sum breaks monotonicity near |x| = 3.8; erf(3.5) is within 1e-6 of 1.
const saturation = 3.5

// MaxZ bounds z-scores before they are scaled and fed to CDF.
const MaxZ = 8.0

// Erf approximates the Gauss error function with a truncated Maclaurin series:
//
//	erf(x) = 2/√π · Σ (-1)^n x^(2n+1) / (n! (2n+1))
//
// The result is always finite and within [-1, 1].
func Erf(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	if x >= saturation {
		return 1
	}
	if x <= -saturation {
		return -1
	}

	sum := x
	fact := 1.0
	sign := 1.0
	pow := x
	x2 := x * x
	for n := 1; n < SeriesTerms; n++ {
		fact *= float64(n)
		sign = -sign
		pow *= x2
		sum += sign * pow / (fact * float64(2*n+1))
	}
	return Clamp(2/math.Sqrt(math.Pi)*sum, -1, 1)
}

// CDF returns Φ for an argument that has already been divided by √2,
// i.e. CDF(z/√2) = P(Z ≤ z) for a standard normal Z.
func CDF(scaled float64) float64 {
	return Clamp(0.5*(1+Erf(scaled)), 0, 1)
}

// Percentile maps a z-score to P(Z ≤ z). Non-finite z is clamped to ±MaxZ.
func Percentile(z float64) float64 {
	if math.IsNaN(z) {
		z = 0
	}
	return CDF(Clamp(z, -MaxZ, MaxZ) / math.Sqrt2)
}

// Clamp bounds v to [lo, hi]. NaN is returned as lo.
func Clamp(v, lo, hi float64) float64 {
	switch {
	case math.IsNaN(v):
		return lo
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}

// ClampInt bounds v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
