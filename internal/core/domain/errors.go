package domain

import "errors"

// Domain errors represent scan failures.
// These are distinct from infrastructure errors.
var (
	// ErrHouseUnresolved indicates a longitude matched no house interval.
	// Twelve contiguous wrapping intervals cover the whole circle, so this
	// can only happen when the provider returned corrupted cusp data. It is
	// fatal: the run aborts with no further results.
	ErrHouseUnresolved = errors.New("longitude matched no house interval")

	// ErrUnsupportedHouseSystem indicates an unknown house-system code.
	ErrUnsupportedHouseSystem = errors.New("unsupported house system")

	// ErrUnknownBody indicates a body the ephemeris cannot compute.
	ErrUnknownBody = errors.New("unknown body")

	// ErrEphemerisPath indicates missing or unreadable ephemeris data files.
	// Raised at provider construction, before any scanning starts.
	ErrEphemerisPath = errors.New("ephemeris data path unusable")

	// ErrRunNotFound indicates a requested saved run does not exist.
	ErrRunNotFound = errors.New("run not found")
)
