package game

// Target is the fixed outline geometry a match is played against.
// It never changes while a match is running.
type Target struct {
	Radius    float64 // Distance from center to the outline
	Tolerance float64 // Half-width of the acceptance band
}

// DefaultTarget returns the standard target geometry.
func DefaultTarget() Target {
	return Target{Radius: TargetRadius, Tolerance: TargetTolerance}
}
