package services

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nubicola/fortuna/internal/adapters/driven/ephemeris/memory"
	"github.com/Nubicola/fortuna/internal/core/domain"
)

// --- Mock implementations ---

// staticProvider serves a frozen sky: fixed longitudes, Ascendant and
// day/night flag for every moment.
type staticProvider struct {
	longitudes map[domain.Body]float64
	ascendant  float64
	day        bool

	cuspsOverride *domain.Houses
	bodyErr       error
}

func (p *staticProvider) BodyLongitude(_ context.Context, _ time.Time, body domain.Body) (float64, error) {
	if p.bodyErr != nil {
		return 0, p.bodyErr
	}
	return p.longitudes[body], nil
}

func (p *staticProvider) Houses(_ context.Context, _ time.Time, _ domain.Location, system domain.HouseSystem) (domain.Houses, error) {
	if p.cuspsOverride != nil {
		return *p.cuspsOverride, nil
	}
	return domain.ComputeCusps(system, p.ascendant, domain.NormalizeDegrees(p.ascendant-90))
}

func (p *staticProvider) SunAboveHorizon(_ context.Context, _ time.Time, _ domain.Location) (bool, error) {
	return p.day, nil
}

// recordingProvider wraps another provider and records the moment of every
// Houses query, one per scanned minute.
type recordingProvider struct {
	*memory.Provider
	moments []time.Time
}

func (p *recordingProvider) Houses(ctx context.Context, moment time.Time, loc domain.Location, system domain.HouseSystem) (domain.Houses, error) {
	p.moments = append(p.moments, moment)
	return p.Provider.Houses(ctx, moment, loc, system)
}

// clusteredSky puts Mercury, Venus and Mars inside the wide orb of the
// Part of Fortune (Asc 0, Moon 120, Sun 100, day => Fortuna 20).
func clusteredSky() *staticProvider {
	return &staticProvider{
		longitudes: map[domain.Body]float64{
			domain.Sun:     100,
			domain.Moon:    120,
			domain.Mercury: 22,
			domain.Venus:   18,
			domain.Mars:    25,
			domain.Jupiter: 200,
			domain.Saturn:  300,
		},
		ascendant: 0,
		day:       true,
	}
}

func testRequest(days int) domain.ScanRequest {
	return domain.ScanRequest{
		Location: domain.Location{Latitude: 51.5072, Longitude: -0.1276},
		Window: domain.Window{
			Start: time.Date(2025, 11, 23, 0, 0, 0, 0, time.UTC),
			Days:  days,
		},
	}
}

// --- Tests ---

func TestScan_EmitsMatchesInBodyOrder(t *testing.T) {
	svc := NewScanService(clusteredSky())

	events, err := svc.Collect(context.Background(), testRequest(1))
	require.NoError(t, err)

	// Three bodies in orb, every minute of the day.
	require.Len(t, events, 3*1440)

	// Within a moment, events follow the fixed body order.
	assert.Equal(t, domain.Mercury, events[0].Body)
	assert.Equal(t, domain.Venus, events[1].Body)
	assert.Equal(t, domain.Mars, events[2].Body)
	assert.Equal(t, events[0].Moment, events[2].Moment)

	ev := events[0]
	assert.Equal(t, domain.Cancer, ev.SunSign)
	assert.Equal(t, domain.Leo, ev.MoonSign)
	assert.Equal(t, domain.Aries, ev.Fortuna.Sign)
	assert.InDelta(t, 20.0, ev.Fortuna.Longitude, 1e-9)
	assert.Equal(t, 1, ev.House)
	assert.InDelta(t, 22.0, ev.BodyPlacement.Longitude, 1e-9)
}

func TestScan_NightChartSwapsFormula(t *testing.T) {
	sky := clusteredSky()
	sky.day = false
	svc := NewScanService(sky)

	events, err := svc.Collect(context.Background(), testRequest(1))
	require.NoError(t, err)

	// Night Fortuna = Asc + Sun - Moon = 340; only Saturn at 300 is far,
	// nothing sits within 6 degrees of 340.
	assert.Empty(t, events)
}

func TestScan_Idempotent(t *testing.T) {
	epoch := time.Date(2025, 11, 23, 0, 0, 0, 0, time.UTC)
	req := testRequest(1)

	first, err := NewScanService(memory.NewProvider(epoch)).Collect(context.Background(), req)
	require.NoError(t, err)
	second, err := NewScanService(memory.NewProvider(epoch)).Collect(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestScan_DriverEnumeratesEveryMinuteOnce(t *testing.T) {
	start := time.Date(2025, 11, 23, 0, 0, 0, 0, time.UTC)
	rec := &recordingProvider{Provider: memory.NewProvider(start)}
	svc := NewScanService(rec)

	_, err := svc.Scan(context.Background(), testRequest(1), func(domain.ConjunctionEvent) error {
		return nil
	})
	require.NoError(t, err)

	require.Len(t, rec.moments, 1440)
	assert.Equal(t, start, rec.moments[0])
	for i := 1; i < len(rec.moments); i++ {
		assert.Equal(t, time.Minute, rec.moments[i].Sub(rec.moments[i-1]))
	}
}

func TestScan_DegenerateDuration(t *testing.T) {
	start := time.Date(2025, 11, 23, 0, 0, 0, 0, time.UTC)
	rec := &recordingProvider{Provider: memory.NewProvider(start)}
	svc := NewScanService(rec)

	for _, days := range []int{0, -3} {
		count, err := svc.Scan(context.Background(), testRequest(days), func(domain.ConjunctionEvent) error {
			return nil
		})
		require.NoError(t, err)
		assert.Zero(t, count)
	}
	assert.Empty(t, rec.moments, "degenerate scans must not query the provider")
}

func TestScan_UnsupportedHouseSystem(t *testing.T) {
	svc := NewScanService(clusteredSky())

	req := testRequest(1)
	req.System = domain.HouseSystem("P")

	_, err := svc.Scan(context.Background(), req, func(domain.ConjunctionEvent) error { return nil })
	assert.ErrorIs(t, err, domain.ErrUnsupportedHouseSystem)
}

func TestScan_CorruptedCuspsAbort(t *testing.T) {
	sky := clusteredSky()
	var corrupt domain.Houses
	for i := range corrupt.Cusps {
		corrupt.Cusps[i] = math.NaN()
	}
	sky.cuspsOverride = &corrupt
	svc := NewScanService(sky)

	count, err := svc.Scan(context.Background(), testRequest(1), func(domain.ConjunctionEvent) error {
		return nil
	})
	assert.ErrorIs(t, err, domain.ErrHouseUnresolved)
	assert.Zero(t, count, "no partial results after an internal-consistency error")
}

func TestScan_ProviderErrorAborts(t *testing.T) {
	sky := clusteredSky()
	sky.bodyErr = errors.New("ephemeris exploded")
	svc := NewScanService(sky)

	_, err := svc.Scan(context.Background(), testRequest(1), func(domain.ConjunctionEvent) error { return nil })
	assert.ErrorContains(t, err, "ephemeris exploded")
}

func TestScan_EmitErrorStops(t *testing.T) {
	svc := NewScanService(clusteredSky())

	stop := errors.New("stop")
	count, err := svc.Scan(context.Background(), testRequest(1), func(domain.ConjunctionEvent) error {
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Zero(t, count)
}

func TestScan_ContextCancelled(t *testing.T) {
	svc := NewScanService(clusteredSky())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Scan(ctx, testRequest(1), func(domain.ConjunctionEvent) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScan_AllEventsWithinOrb(t *testing.T) {
	epoch := time.Date(2025, 11, 23, 0, 0, 0, 0, time.UTC)
	svc := NewScanService(memory.NewProvider(epoch))

	req := testRequest(2)
	req.Orb = domain.OrbExact

	events, err := svc.Collect(context.Background(), req)
	require.NoError(t, err)

	for _, ev := range events {
		d := domain.CircularDistance(ev.Fortuna.Longitude, ev.BodyPlacement.Longitude)
		assert.LessOrEqual(t, d, domain.OrbExact.Threshold())
		assert.GreaterOrEqual(t, ev.House, 1)
		assert.LessOrEqual(t, ev.House, 12)
	}
}
