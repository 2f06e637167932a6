// Package meeus provides the real ephemeris, computed with the soniakeys
// implementation of Meeus' Astronomical Algorithms.
//
// Sun and Moon longitudes come from the built-in analytic series. Mercury
// through Saturn need VSOP87 data files, loaded once from a configured
// directory at construction; a missing or unreadable directory fails there,
// before any scanning starts. Every query afterwards is pure computation.
package meeus

import (
	"context"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/coord"
	"github.com/soniakeys/meeus/v3/elliptic"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/moonposition"
	"github.com/soniakeys/meeus/v3/nutation"
	"github.com/soniakeys/meeus/v3/planetposition"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/meeus/v3/solar"
	"github.com/soniakeys/unit"

	"github.com/Nubicola/fortuna/internal/core/domain"
	"github.com/Nubicola/fortuna/internal/core/ports/driven"
)

// Ensure Provider implements the interface.
var _ driven.EphemerisProvider = (*Provider)(nil)

// VSOP87 body indexes for the five reference planets.
var vsopIndex = map[domain.Body]int{
	domain.Mercury: planetposition.Mercury,
	domain.Venus:   planetposition.Venus,
	domain.Mars:    planetposition.Mars,
	domain.Jupiter: planetposition.Jupiter,
	domain.Saturn:  planetposition.Saturn,
}

// Provider computes positions from VSOP87 theory and Meeus' series.
type Provider struct {
	earth   *planetposition.V87Planet
	planets map[domain.Body]*planetposition.V87Planet
}

// NewProvider loads the VSOP87 data files from dataDir.
// All files load up front: a bad path is a fatal configuration error,
// never a per-moment one.
func NewProvider(dataDir string) (*Provider, error) {
	if dataDir == "" {
		return nil, fmt.Errorf("no data directory configured: %w", domain.ErrEphemerisPath)
	}
	if info, err := os.Stat(dataDir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", dataDir, domain.ErrEphemerisPath)
	}

	earth, err := planetposition.LoadPlanetPath(planetposition.Earth, dataDir)
	if err != nil {
		return nil, fmt.Errorf("loading VSOP87 Earth from %s: %w", dataDir, domain.ErrEphemerisPath)
	}

	p := &Provider{
		earth:   earth,
		planets: make(map[domain.Body]*planetposition.V87Planet, len(vsopIndex)),
	}
	for body, idx := range vsopIndex {
		v, err := planetposition.LoadPlanetPath(idx, dataDir)
		if err != nil {
			return nil, fmt.Errorf("loading VSOP87 %s from %s: %w", body, dataDir, domain.ErrEphemerisPath)
		}
		p.planets[body] = v
	}
	return p, nil
}

// BodyLongitude returns the apparent geocentric ecliptic longitude of a
// reference body, in degrees [0, 360).
func (p *Provider) BodyLongitude(_ context.Context, moment time.Time, body domain.Body) (float64, error) {
	jd := julian.TimeToJD(moment.UTC())

	switch body {
	case domain.Sun:
		return domain.NormalizeDegrees(solar.ApparentLongitude(base.J2000Century(jd)).Deg()), nil

	case domain.Moon:
		lon, _, _ := moonposition.Position(jd)
		return domain.NormalizeDegrees(lon.Deg()), nil
	}

	planet, ok := p.planets[body]
	if !ok {
		return 0, fmt.Errorf("%w: %s", domain.ErrUnknownBody, body)
	}

	// elliptic.Position yields apparent equatorial coordinates; rotate
	// them back onto the ecliptic of date.
	ra, dec := elliptic.Position(planet, p.earth, jd)
	sε, cε := math.Sincos(trueObliquity(jd).Rad())
	lon, _ := coord.EqToEcl(ra, dec, sε, cε)
	return domain.NormalizeDegrees(lon.Deg()), nil
}

// Houses returns the cusps and Ascendant for a moment and location.
func (p *Provider) Houses(_ context.Context, moment time.Time, loc domain.Location, system domain.HouseSystem) (domain.Houses, error) {
	jd := julian.TimeToJD(moment.UTC())
	asc, mc := angles(jd, loc)
	return domain.ComputeCusps(system, asc, mc)
}

// SunAboveHorizon reports whether the apparent Sun altitude is positive.
// Refraction is ignored: the geometric horizon decides day and night.
func (p *Provider) SunAboveHorizon(_ context.Context, moment time.Time, loc domain.Location) (bool, error) {
	jd := julian.TimeToJD(moment.UTC())

	ε := trueObliquity(jd)
	sε, cε := math.Sincos(ε.Rad())

	sunLon := solar.ApparentLongitude(base.J2000Century(jd))
	ra, dec := coord.EclToEq(sunLon, 0, sε, cε)

	θ := localSidereal(jd, loc)
	φ := loc.Latitude * math.Pi / 180
	h := θ - ra.Rad() // hour angle

	sinAlt := math.Sin(φ)*math.Sin(dec.Rad()) + math.Cos(φ)*math.Cos(dec.Rad())*math.Cos(h)
	return sinAlt > 0, nil
}

// trueObliquity is the mean obliquity corrected for nutation.
func trueObliquity(jd float64) unit.Angle {
	_, Δε := nutation.Nutation(jd)
	return nutation.MeanObliquity(jd) + Δε
}

// localSidereal returns the local apparent sidereal time as an angle in
// radians. Location longitude is east-positive, so it adds.
func localSidereal(jd float64, loc domain.Location) float64 {
	θ0 := sidereal.Apparent(jd).Rad()
	return θ0 + loc.Longitude*math.Pi/180
}

// angles computes the Ascendant and Midheaven longitudes in degrees from
// the local sidereal time, latitude and true obliquity.
func angles(jd float64, loc domain.Location) (asc, mc float64) {
	ε := trueObliquity(jd).Rad()
	θ := localSidereal(jd, loc)
	φ := loc.Latitude * math.Pi / 180

	ascRad := math.Atan2(math.Cos(θ), -(math.Sin(θ)*math.Cos(ε) + math.Tan(φ)*math.Sin(ε)))
	mcRad := math.Atan2(math.Sin(θ), math.Cos(θ)*math.Cos(ε))

	asc = domain.NormalizeDegrees(ascRad * 180 / math.Pi)
	mc = domain.NormalizeDegrees(mcRad * 180 / math.Pi)
	return asc, mc
}
