package driving

import (
	"context"

	"github.com/Nubicola/fortuna/internal/core/domain"
)

// HistoryService stores and replays completed scans.
type HistoryService interface {
	// Save persists a finished scan and returns the stored run.
	Save(ctx context.Context, req domain.ScanRequest, events []domain.ConjunctionEvent) (domain.Run, error)

	// List returns all saved runs, newest first.
	List(ctx context.Context) ([]domain.Run, error)

	// Show returns a saved run and its events in emission order.
	Show(ctx context.Context, id string) (domain.Run, []domain.ConjunctionEvent, error)
}
