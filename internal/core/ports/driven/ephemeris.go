package driven

import (
	"context"
	"time"

	"github.com/Nubicola/fortuna/internal/core/domain"
)

// EphemerisProvider answers positional astronomy queries for the scanner.
//
// Every method is a stateless query for an exact moment; implementations
// must not extrapolate between moments. Any required data files are loaded
// once at construction, so a misconfigured provider fails before the first
// query rather than mid-scan.
type EphemerisProvider interface {
	// BodyLongitude returns the ecliptic longitude, in [0, 360), of a
	// reference body at a moment.
	BodyLongitude(ctx context.Context, moment time.Time, body domain.Body) (float64, error)

	// Houses returns the twelve cusp longitudes and the Ascendant for a
	// moment, location and house system.
	Houses(ctx context.Context, moment time.Time, loc domain.Location, system domain.HouseSystem) (domain.Houses, error)

	// SunAboveHorizon reports whether the Sun is above the local horizon
	// at a moment, deciding the day/night Fortuna formula.
	SunAboveHorizon(ctx context.Context, moment time.Time, loc domain.Location) (bool, error)
}
