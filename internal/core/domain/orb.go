package domain

// OrbMode selects the maximum angular separation counted as a conjunction.
// Only the two presets exist; there is no continuous orb input.
type OrbMode string

// Available orb modes.
const (
	// OrbWide accepts separations up to 6 degrees. This is the default.
	OrbWide OrbMode = "wide"

	// OrbExact accepts separations up to 1 degree.
	OrbExact OrbMode = "exact"
)

// Preset thresholds in degrees.
const (
	wideOrbDegrees  = 6.0
	exactOrbDegrees = 1.0
)

// IsValid returns true if the mode is a known preset.
func (m OrbMode) IsValid() bool {
	return m == OrbWide || m == OrbExact
}

// String returns the mode name.
func (m OrbMode) String() string {
	return string(m)
}

// Threshold returns the orb in degrees for this mode.
// Unknown modes fall back to the wide preset.
func (m OrbMode) Threshold() float64 {
	if m == OrbExact {
		return exactOrbDegrees
	}
	return wideOrbDegrees
}

// InOrb reports whether two longitudes are conjunct under this mode.
func (m OrbMode) InOrb(a, b float64) bool {
	return CircularDistance(a, b) <= m.Threshold()
}
