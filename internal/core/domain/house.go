package domain

// HouseSystem selects how the ecliptic is divided into twelve houses.
type HouseSystem string

// Supported house-system codes. The single-letter values match the
// conventional Swiss Ephemeris codes.
const (
	// WholeSign assigns one house per sign, cusp 1 at the start of the
	// Ascendant's sign. This is the default.
	WholeSign HouseSystem = "W"

	// EqualHouse places cusp 1 exactly on the Ascendant, cusps every 30
	// degrees from there.
	EqualHouse HouseSystem = "E"

	// Porphyry trisects the quadrants between the Ascendant and the
	// Midheaven.
	Porphyry HouseSystem = "O"
)

// IsValid returns true if the code is a supported house system.
func (h HouseSystem) IsValid() bool {
	switch h {
	case WholeSign, EqualHouse, Porphyry:
		return true
	default:
		return false
	}
}

// String returns the house-system code.
func (h HouseSystem) String() string {
	return string(h)
}

// Description returns a human-readable name for the system.
func (h HouseSystem) Description() string {
	switch h {
	case WholeSign:
		return "Whole Sign"
	case EqualHouse:
		return "Equal"
	case Porphyry:
		return "Porphyry"
	default:
		return "Unknown"
	}
}

// Houses holds the twelve cusp longitudes and the Ascendant computed for
// one moment and location. Cusps[0] is the first-house cusp. All values
// are ecliptic longitudes in [0, 360).
type Houses struct {
	Cusps     [12]float64
	Ascendant float64
}

// ResolveHouse maps an ecliptic longitude to a house number 1..12.
//
// House i+1 spans the circular interval [Cusps[i], Cusps[i+1 mod 12]):
// half-open on the lower bound, so a point exactly on a cusp belongs to
// that cusp's house. Returns ErrHouseUnresolved when no interval contains
// the point, which indicates corrupted cusp data.
func (h Houses) ResolveHouse(longitude float64) (int, error) {
	lon := NormalizeDegrees(longitude)
	for i := 0; i < 12; i++ {
		lo := h.Cusps[i]
		hi := h.Cusps[(i+1)%12]
		if lo < hi {
			if lo <= lon && lon < hi {
				return i + 1, nil
			}
		} else if lon >= lo || lon < hi {
			// Interval wraps through 0 Aries.
			return i + 1, nil
		}
	}
	return 0, ErrHouseUnresolved
}
