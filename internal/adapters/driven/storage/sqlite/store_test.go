package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nubicola/fortuna/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleRun() (domain.Run, []domain.ConjunctionEvent) {
	run := domain.Run{
		ID:        "run-1",
		CreatedAt: time.Date(2025, 11, 23, 12, 0, 0, 0, time.UTC),
		Request: domain.ScanRequest{
			Location: domain.Location{Latitude: 51.5072, Longitude: -0.1276},
			Window: domain.Window{
				Start: time.Date(2025, 11, 23, 0, 0, 0, 0, time.UTC),
				Days:  1,
			},
			Orb:    domain.OrbExact,
			System: domain.WholeSign,
		},
		EventCount: 2,
	}
	events := []domain.ConjunctionEvent{
		{
			Moment:        time.Date(2025, 11, 23, 3, 17, 0, 0, time.UTC),
			SunSign:       domain.Sagittarius,
			MoonSign:      domain.Gemini,
			Fortuna:       domain.PlacementOf(195.25),
			House:         7,
			Body:          domain.Venus,
			BodyPlacement: domain.PlacementOf(195.9),
		},
		{
			Moment:        time.Date(2025, 11, 23, 9, 41, 0, 0, time.UTC),
			SunSign:       domain.Sagittarius,
			MoonSign:      domain.Gemini,
			Fortuna:       domain.PlacementOf(201.0),
			House:         7,
			Body:          domain.Mars,
			BodyPlacement: domain.PlacementOf(200.5),
		},
	}
	return run, events
}

func TestStore_SaveAndGetRun(t *testing.T) {
	store := newTestStore(t)
	run, events := sampleRun()

	require.NoError(t, store.SaveRun(context.Background(), run, events))

	got, err := store.GetRun(context.Background(), run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.ID, got.ID)
	assert.True(t, run.CreatedAt.Equal(got.CreatedAt))
	assert.Equal(t, run.Request.Location, got.Request.Location)
	assert.True(t, run.Request.Window.Start.Equal(got.Request.Window.Start))
	assert.Equal(t, run.Request.Window.Days, got.Request.Window.Days)
	assert.Equal(t, domain.OrbExact, got.Request.Orb)
	assert.Equal(t, domain.WholeSign, got.Request.System)
	assert.Equal(t, 2, got.EventCount)
}

func TestStore_GetRun_NotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetRun(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrRunNotFound)
}

func TestStore_RunEvents_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	run, events := sampleRun()
	require.NoError(t, store.SaveRun(context.Background(), run, events))

	got, err := store.RunEvents(context.Background(), run.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Emission order survives.
	assert.Equal(t, domain.Venus, got[0].Body)
	assert.Equal(t, domain.Mars, got[1].Body)

	assert.True(t, events[0].Moment.Equal(got[0].Moment))
	assert.Equal(t, events[0].SunSign, got[0].SunSign)
	assert.Equal(t, events[0].MoonSign, got[0].MoonSign)
	assert.InDelta(t, events[0].Fortuna.Longitude, got[0].Fortuna.Longitude, 1e-9)
	assert.Equal(t, events[0].Fortuna.Sign, got[0].Fortuna.Sign)
	assert.Equal(t, events[0].House, got[0].House)
	assert.InDelta(t, events[0].BodyPlacement.Degree, got[0].BodyPlacement.Degree, 1e-9)
}

func TestStore_ListRuns_NewestFirst(t *testing.T) {
	store := newTestStore(t)

	older, _ := sampleRun()
	older.ID = "run-old"
	older.CreatedAt = time.Date(2025, 11, 22, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.SaveRun(context.Background(), older, nil))

	newer, _ := sampleRun()
	newer.ID = "run-new"
	newer.CreatedAt = time.Date(2025, 11, 24, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.SaveRun(context.Background(), newer, nil))

	runs, err := store.ListRuns(context.Background())
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "run-new", runs[0].ID)
	assert.Equal(t, "run-old", runs[1].ID)
}

func TestStore_ReopenKeepsData(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	run, events := sampleRun()
	require.NoError(t, store.SaveRun(context.Background(), run, events))
	require.NoError(t, store.Close())

	// Migrations are idempotent across reopens.
	reopened, err := NewStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.GetRun(context.Background(), run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.ID, got.ID)
}
