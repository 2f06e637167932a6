// Package memory provides a deterministic in-memory ephemeris.
//
// Bodies advance linearly from epoch longitudes at fixed daily rates and
// the Ascendant completes one revolution per day, so every query is an
// exact function of the moment. The provider backs service tests and the
// --demo flag, where real data files are unavailable.
package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/Nubicola/fortuna/internal/core/domain"
	"github.com/Nubicola/fortuna/internal/core/ports/driven"
)

// Ensure Provider implements the interface.
var _ driven.EphemerisProvider = (*Provider)(nil)

// Mean daily motions in degrees, rounded; good enough for a synthetic sky.
var defaultRates = map[domain.Body]float64{
	domain.Sun:     0.9856,
	domain.Moon:    13.1764,
	domain.Mercury: 1.3833,
	domain.Venus:   1.2,
	domain.Mars:    0.5240,
	domain.Jupiter: 0.0831,
	domain.Saturn:  0.0334,
}

var defaultLongitudes = map[domain.Body]float64{
	domain.Sun:     280,
	domain.Moon:    120,
	domain.Mercury: 275,
	domain.Venus:   310,
	domain.Mars:    40,
	domain.Jupiter: 95,
	domain.Saturn:  330,
}

// Provider is a deterministic ephemeris with linear body motion.
type Provider struct {
	// Epoch is the reference instant all motion is measured from.
	Epoch time.Time

	// Longitudes are the body longitudes at the epoch.
	Longitudes map[domain.Body]float64

	// Rates are body motions in degrees per day.
	Rates map[domain.Body]float64

	// AscendantEpoch is the Ascendant longitude at the epoch. It rotates
	// through the full zodiac once per day.
	AscendantEpoch float64

	// DayStartHour and DayEndHour bound the synthetic daytime, UTC.
	// The Sun counts as above the horizon in [DayStartHour, DayEndHour).
	DayStartHour int
	DayEndHour   int
}

// NewProvider creates a provider with the default synthetic sky.
func NewProvider(epoch time.Time) *Provider {
	return &Provider{
		Epoch:          epoch,
		Longitudes:     defaultLongitudes,
		Rates:          defaultRates,
		AscendantEpoch: 0,
		DayStartHour:   6,
		DayEndHour:     18,
	}
}

// BodyLongitude returns the linearly advanced longitude of a body.
func (p *Provider) BodyLongitude(_ context.Context, moment time.Time, body domain.Body) (float64, error) {
	base, ok := p.Longitudes[body]
	if !ok {
		return 0, fmt.Errorf("%w: %s", domain.ErrUnknownBody, body)
	}
	days := moment.Sub(p.Epoch).Hours() / 24
	return domain.NormalizeDegrees(base + p.Rates[body]*days), nil
}

// Houses returns cusps for the synthetic Ascendant, which makes one full
// revolution per day. The Midheaven is held 90 degrees behind it.
func (p *Provider) Houses(_ context.Context, moment time.Time, _ domain.Location, system domain.HouseSystem) (domain.Houses, error) {
	days := moment.Sub(p.Epoch).Hours() / 24
	asc := domain.NormalizeDegrees(p.AscendantEpoch + 360*days)
	mc := domain.NormalizeDegrees(asc - 90)
	return domain.ComputeCusps(system, asc, mc)
}

// SunAboveHorizon reports daytime by UTC hour of day.
func (p *Provider) SunAboveHorizon(_ context.Context, moment time.Time, _ domain.Location) (bool, error) {
	h := moment.UTC().Hour()
	return h >= p.DayStartHour && h < p.DayEndHour, nil
}
