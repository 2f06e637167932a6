// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - EphemerisProvider: Body longitudes, house cusps and day/night status.
//     Required; the scanner cannot run without one.
//   - RunStore: Scan-history persistence. Optional; without it the --save
//     flag and the history command are unavailable.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
