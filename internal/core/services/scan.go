package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Nubicola/fortuna/internal/core/domain"
	"github.com/Nubicola/fortuna/internal/core/ports/driven"
	"github.com/Nubicola/fortuna/internal/core/ports/driving"
	"github.com/Nubicola/fortuna/internal/logger"
)

// Ensure ScanService implements the interface.
var _ driving.ScanService = (*ScanService)(nil)

// snapshot holds everything the per-moment pipeline reads: the seven body
// longitudes, the house cusps with Ascendant, and the day/night flag. It is
// rebuilt from the provider every minute and never reused.
type snapshot struct {
	longitudes map[domain.Body]float64
	houses     domain.Houses
	day        bool
}

// ScanService walks a time window minute by minute and reports every
// conjunction between the Part of Fortune and a reference body.
type ScanService struct {
	ephemeris driven.EphemerisProvider
}

// NewScanService creates a new scan service on top of an ephemeris provider.
func NewScanService(ephemeris driven.EphemerisProvider) *ScanService {
	return &ScanService{ephemeris: ephemeris}
}

// Scan enumerates every moment in the request window, strictly in order,
// and calls emit once per conjunction event. Each moment is fully processed
// before the next begins; there is no caching across moments and no
// per-moment recovery: the first error aborts the run.
func (s *ScanService) Scan(ctx context.Context, req domain.ScanRequest, emit driving.EmitFunc) (int, error) {
	req = req.Normalized()
	if !req.System.IsValid() {
		return 0, fmt.Errorf("house system %q: %w", req.System, domain.ErrUnsupportedHouseSystem)
	}

	logger.Section("Conjunction Scan")
	logger.Debug("Window: %s + %d day(s) = %d moment(s)",
		req.Window.Start.UTC().Format(time.RFC3339), req.Window.Days, req.Window.Minutes())
	logger.Debug("Location: %.4f, %.4f", req.Location.Latitude, req.Location.Longitude)
	logger.Debug("Orb: %s (%.1f deg), houses: %s", req.Orb, req.Orb.Threshold(), req.System.Description())

	total := 0
	for i, n := 0, req.Window.Minutes(); i < n; i++ {
		if err := ctx.Err(); err != nil {
			return total, err
		}

		moment := req.Window.MomentAt(i)
		snap, err := s.snapshotAt(ctx, moment, req.Location, req.System)
		if err != nil {
			return total, fmt.Errorf("ephemeris at %s: %w", moment.UTC().Format(time.RFC3339), err)
		}

		events, err := eventsAt(moment, snap, req.Orb)
		if err != nil {
			return total, fmt.Errorf("moment %s: %w", moment.UTC().Format(time.RFC3339), err)
		}

		for _, ev := range events {
			if err := emit(ev); err != nil {
				return total, err
			}
			total++
		}
	}

	logger.Debug("Scan complete: %d event(s)", total)
	return total, nil
}

// Collect runs Scan and gathers the events into a slice.
func (s *ScanService) Collect(ctx context.Context, req domain.ScanRequest) ([]domain.ConjunctionEvent, error) {
	events := []domain.ConjunctionEvent{}
	_, err := s.Scan(ctx, req, func(ev domain.ConjunctionEvent) error {
		events = append(events, ev)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return events, nil
}

// snapshotAt queries the provider for everything one moment needs.
func (s *ScanService) snapshotAt(ctx context.Context, moment time.Time, loc domain.Location, system domain.HouseSystem) (snapshot, error) {
	snap := snapshot{longitudes: make(map[domain.Body]float64, len(domain.Bodies))}

	for _, body := range domain.Bodies {
		lon, err := s.ephemeris.BodyLongitude(ctx, moment, body)
		if err != nil {
			return snapshot{}, fmt.Errorf("longitude of %s: %w", body, err)
		}
		snap.longitudes[body] = lon
	}

	houses, err := s.ephemeris.Houses(ctx, moment, loc, system)
	if err != nil {
		return snapshot{}, fmt.Errorf("houses: %w", err)
	}
	snap.houses = houses

	day, err := s.ephemeris.SunAboveHorizon(ctx, moment, loc)
	if err != nil {
		return snapshot{}, fmt.Errorf("day/night: %w", err)
	}
	snap.day = day

	return snap, nil
}

// eventsAt is the pure per-moment pipeline: Fortuna formula, house
// resolution, then one orb comparison per reference body in fixed order.
// A Fortuna longitude outside every house interval aborts the run via
// domain.ErrHouseUnresolved.
func eventsAt(moment time.Time, snap snapshot, orb domain.OrbMode) ([]domain.ConjunctionEvent, error) {
	sunLon := snap.longitudes[domain.Sun]
	moonLon := snap.longitudes[domain.Moon]

	fortuna := domain.FortunaLongitude(snap.houses.Ascendant, sunLon, moonLon, snap.day)

	house, err := snap.houses.ResolveHouse(fortuna)
	if err != nil {
		return nil, err
	}

	var events []domain.ConjunctionEvent
	for _, body := range domain.Bodies {
		lon := snap.longitudes[body]
		if !orb.InOrb(fortuna, lon) {
			continue
		}
		events = append(events, domain.ConjunctionEvent{
			Moment:        moment,
			SunSign:       domain.SignOf(sunLon),
			MoonSign:      domain.SignOf(moonLon),
			Fortuna:       domain.PlacementOf(fortuna),
			House:         house,
			Body:          body,
			BodyPlacement: domain.PlacementOf(lon),
		})
	}
	return events, nil
}
