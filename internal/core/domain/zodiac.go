package domain

import "fmt"

// Sign is a zodiac sign, one of twelve fixed 30-degree segments of the
// ecliptic counted from the vernal equinox point.
type Sign int

// The twelve signs in ecliptic order.
const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

var signNames = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// SignOf returns the sign containing an ecliptic longitude.
func SignOf(longitude float64) Sign {
	return Sign(int(NormalizeDegrees(longitude)/30) % 12)
}

// DegreeInSign returns the position within a sign, in [0, 30).
func DegreeInSign(longitude float64) float64 {
	lon := NormalizeDegrees(longitude)
	return lon - 30*float64(int(lon/30))
}

// String returns the canonical sign name.
func (s Sign) String() string {
	if s < Aries || s > Pisces {
		return fmt.Sprintf("Sign(%d)", int(s))
	}
	return signNames[s]
}

// IsValid returns true if the sign is one of the twelve.
func (s Sign) IsValid() bool {
	return s >= Aries && s <= Pisces
}
