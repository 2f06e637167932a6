// Package domain defines the core entities of the Fortuna scanner.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Body: One of the seven reference bodies (Sun through Saturn)
//   - Sign: A zodiac sign, a fixed 30-degree segment of the ecliptic
//   - Houses: The twelve cusp longitudes plus the Ascendant for a moment
//   - ScanRequest / Window: A minute-resolution scan over a time window
//   - ConjunctionEvent: A moment at which a body conjuncts the Part of Fortune
//
// The Part of Fortune arithmetic, house resolution and orb comparison live
// here as pure functions so they can be exercised without an ephemeris.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
