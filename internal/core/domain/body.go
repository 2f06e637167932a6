package domain

// Body is one of the seven reference bodies tested for conjunction with
// the Part of Fortune.
type Body string

// The reference bodies.
const (
	Sun     Body = "Sun"
	Moon    Body = "Moon"
	Mercury Body = "Mercury"
	Venus   Body = "Venus"
	Mars    Body = "Mars"
	Jupiter Body = "Jupiter"
	Saturn  Body = "Saturn"
)

// Bodies lists the reference bodies in comparison order. The comparator
// walks this slice, so it fixes event ordering within a moment.
var Bodies = []Body{Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn}

// String returns the body name.
func (b Body) String() string {
	return string(b)
}

// IsValid returns true if the body is one of the seven references.
func (b Body) IsValid() bool {
	switch b {
	case Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn:
		return true
	default:
		return false
	}
}
