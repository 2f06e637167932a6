package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignOf(t *testing.T) {
	tests := []struct {
		name      string
		longitude float64
		want      Sign
	}{
		{"start of Aries", 0, Aries},
		{"end of Aries", 29.999, Aries},
		{"start of Taurus", 30, Taurus},
		{"middle of Leo", 135, Leo},
		{"end of Pisces", 359.999, Pisces},
		{"wraps above 360", 365, Aries},
		{"negative wraps", -10, Pisces},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SignOf(tt.longitude))
		})
	}
}

func TestDegreeInSign(t *testing.T) {
	assert.InDelta(t, 0.0, DegreeInSign(30), 1e-9)
	assert.InDelta(t, 29.9, DegreeInSign(59.9), 1e-9)
	assert.InDelta(t, 15.25, DegreeInSign(195.25), 1e-9)
	assert.InDelta(t, 20.0, DegreeInSign(-10), 1e-9)
}

func TestSign_String(t *testing.T) {
	assert.Equal(t, "Aries", Aries.String())
	assert.Equal(t, "Pisces", Pisces.String())
	assert.Equal(t, "Sign(12)", Sign(12).String())
}

func TestSign_IsValid(t *testing.T) {
	for s := Aries; s <= Pisces; s++ {
		assert.True(t, s.IsValid())
	}
	assert.False(t, Sign(-1).IsValid())
	assert.False(t, Sign(12).IsValid())
}

func TestPlacementOf(t *testing.T) {
	p := PlacementOf(195.25)
	assert.Equal(t, Libra, p.Sign)
	assert.InDelta(t, 15.25, p.Degree, 1e-9)
	assert.InDelta(t, 195.25, p.Longitude, 1e-9)

	// Negative input normalizes before splitting.
	p = PlacementOf(-40)
	assert.Equal(t, Aquarius, p.Sign)
	assert.InDelta(t, 20.0, p.Degree, 1e-9)
}
