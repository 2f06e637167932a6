package domain

import "math"

// NormalizeDegrees maps any longitude onto [0, 360).
// Negative intermediates normalize upward, so -40 becomes 320.
func NormalizeDegrees(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// CircularDistance returns the shortest angular separation between two
// ecliptic longitudes. The result is symmetric and never exceeds 180,
// so 359 and 1 are 2 degrees apart, not 358.
func CircularDistance(a, b float64) float64 {
	d := math.Abs(NormalizeDegrees(a) - NormalizeDegrees(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}
