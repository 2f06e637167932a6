package domain

import "time"

// Run is a persisted scan: the request that produced it plus bookkeeping.
// Events are stored alongside in the run store, in emission order.
type Run struct {
	// ID is the unique run identifier.
	ID string

	// CreatedAt is when the scan was saved.
	CreatedAt time.Time

	// Request is the scan configuration that produced the run.
	Request ScanRequest

	// EventCount is the number of conjunction events emitted.
	EventCount int
}
