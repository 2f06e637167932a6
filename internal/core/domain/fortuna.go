package domain

// FortunaLongitude computes the Part of Fortune for one moment.
//
// On a day chart (Sun above the horizon) the formula is
// Ascendant + Moon - Sun; on a night chart the Sun and Moon swap roles.
// The result is always normalized into [0, 360).
func FortunaLongitude(ascendant, sun, moon float64, day bool) float64 {
	if day {
		return NormalizeDegrees(ascendant + moon - sun)
	}
	return NormalizeDegrees(ascendant + sun - moon)
}
