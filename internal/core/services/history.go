package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Nubicola/fortuna/internal/core/domain"
	"github.com/Nubicola/fortuna/internal/core/ports/driven"
	"github.com/Nubicola/fortuna/internal/core/ports/driving"
	"github.com/Nubicola/fortuna/internal/logger"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService persists completed scans through a RunStore.
type HistoryService struct {
	store driven.RunStore
	now   func() time.Time
}

// NewHistoryService creates a new history service.
func NewHistoryService(store driven.RunStore) *HistoryService {
	return &HistoryService{store: store, now: time.Now}
}

// Save persists a finished scan and returns the stored run.
func (h *HistoryService) Save(ctx context.Context, req domain.ScanRequest, events []domain.ConjunctionEvent) (domain.Run, error) {
	run := domain.Run{
		ID:         uuid.NewString(),
		CreatedAt:  h.now().UTC(),
		Request:    req.Normalized(),
		EventCount: len(events),
	}

	if err := h.store.SaveRun(ctx, run, events); err != nil {
		return domain.Run{}, fmt.Errorf("saving run: %w", err)
	}

	logger.Info("Saved run %s (%d events)", run.ID, run.EventCount)
	return run, nil
}

// List returns all saved runs, newest first.
func (h *HistoryService) List(ctx context.Context) ([]domain.Run, error) {
	runs, err := h.store.ListRuns(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	return runs, nil
}

// Show returns a saved run and its events in emission order.
func (h *HistoryService) Show(ctx context.Context, id string) (domain.Run, []domain.ConjunctionEvent, error) {
	run, err := h.store.GetRun(ctx, id)
	if err != nil {
		return domain.Run{}, nil, fmt.Errorf("run %s: %w", id, err)
	}

	events, err := h.store.RunEvents(ctx, id)
	if err != nil {
		return domain.Run{}, nil, fmt.Errorf("events of run %s: %w", id, err)
	}
	return run, events, nil
}
