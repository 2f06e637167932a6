package driving

import (
	"context"

	"github.com/Nubicola/fortuna/internal/core/domain"
)

// EmitFunc consumes conjunction events as the scanner produces them.
// Returning an error stops the scan.
type EmitFunc func(domain.ConjunctionEvent) error

// ScanService runs minute-resolution conjunction scans.
type ScanService interface {
	// Scan walks the request window and calls emit once per conjunction
	// event, in deterministic order. It returns the number of events
	// emitted. Identical requests against a deterministic provider yield
	// identical, identically-ordered events.
	Scan(ctx context.Context, req domain.ScanRequest, emit EmitFunc) (int, error)

	// Collect runs Scan and gathers the events into a slice.
	Collect(ctx context.Context, req domain.ScanRequest) ([]domain.ConjunctionEvent, error)
}
