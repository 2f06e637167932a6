package driven

import (
	"context"

	"github.com/Nubicola/fortuna/internal/core/domain"
)

// RunStore persists completed scans and their events.
// Runs are write-once: a saved run is never updated.
type RunStore interface {
	// SaveRun stores a run together with its events, in emission order.
	SaveRun(ctx context.Context, run domain.Run, events []domain.ConjunctionEvent) error

	// ListRuns returns all saved runs, newest first.
	ListRuns(ctx context.Context) ([]domain.Run, error)

	// GetRun returns one saved run by ID.
	// Returns domain.ErrRunNotFound if the ID is unknown.
	GetRun(ctx context.Context, id string) (domain.Run, error)

	// RunEvents returns a run's events in emission order.
	RunEvents(ctx context.Context, id string) ([]domain.ConjunctionEvent, error)

	// Close releases resources.
	Close() error
}
