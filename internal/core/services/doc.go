// Package services implements the driving port interfaces.
// Services contain the scanning logic and orchestrate calls to
// driven ports (adapters).
//
// Services are pure Go with no external dependencies beyond the
// run-ID generator.
package services
