package domain

import "time"

const minutesPerDay = 24 * 60

// Location is a geographic observer position, constant for a whole run.
type Location struct {
	// Latitude in signed degrees, north positive.
	Latitude float64

	// Longitude in signed degrees, east positive.
	Longitude float64
}

// Window is a half-open scan window [Start, Start+Days*24h) walked at a
// fixed one-minute step. The driver iterates indexes 0..Minutes()-1, so
// moments never repeat and are strictly increasing.
type Window struct {
	// Start is the first moment of the window, UTC.
	Start time.Time

	// Days is the duration in whole days.
	Days int
}

// Minutes returns the number of moments in the window.
// A non-positive duration is a degenerate scan of zero moments, not an error.
func (w Window) Minutes() int {
	if w.Days <= 0 {
		return 0
	}
	return w.Days * minutesPerDay
}

// MomentAt returns the i-th moment of the window. MomentAt(0) is Start.
func (w Window) MomentAt(i int) time.Time {
	return w.Start.Add(time.Duration(i) * time.Minute)
}

// ScanRequest configures one conjunction scan.
type ScanRequest struct {
	// Location is the observer position for houses and day/night.
	Location Location

	// Window is the time span to walk.
	Window Window

	// Orb selects the conjunction threshold preset.
	Orb OrbMode

	// System selects the house system. Defaults to Whole Sign.
	System HouseSystem
}

// Normalized returns the request with zero-value fields replaced by the
// documented defaults.
func (r ScanRequest) Normalized() ScanRequest {
	if r.Orb == "" {
		r.Orb = OrbWide
	}
	if r.System == "" {
		r.System = WholeSign
	}
	return r
}
