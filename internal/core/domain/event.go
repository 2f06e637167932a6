package domain

import "time"

// Placement locates an ecliptic longitude within the zodiac.
type Placement struct {
	// Longitude is the full ecliptic longitude in [0, 360).
	Longitude float64

	// Sign is the containing zodiac sign.
	Sign Sign

	// Degree is the position within the sign, in [0, 30).
	Degree float64
}

// PlacementOf breaks a longitude into sign and degree-in-sign.
func PlacementOf(longitude float64) Placement {
	lon := NormalizeDegrees(longitude)
	return Placement{
		Longitude: lon,
		Sign:      SignOf(lon),
		Degree:    DegreeInSign(lon),
	}
}

// ConjunctionEvent records one minute at which a reference body lay within
// orb of the Part of Fortune. Events are created by the comparator,
// consumed by the output adapter and never mutated afterwards.
type ConjunctionEvent struct {
	// Moment is the minute of the conjunction, UTC.
	Moment time.Time

	// SunSign and MoonSign are the luminary signs at the moment.
	SunSign  Sign
	MoonSign Sign

	// Fortuna is the Part of Fortune placement.
	Fortuna Placement

	// House is the Fortuna house, 1..12.
	House int

	// Body is the matched reference body.
	Body Body

	// BodyPlacement is the matched body's placement.
	BodyPlacement Placement
}
