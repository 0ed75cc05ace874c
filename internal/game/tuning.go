package game

// Target geometry - the fixed outline the pulse is matched against.
// Values are logical units shared with the renderer's coordinate space.
const (
	TargetRadius    = 120.0 // Distance from center to the target outline
	TargetTolerance = 20.0  // Half-width of the acceptance band around it
)

// Judgement
const (
	PerfectThreshold = 8.0 // Inside this distance a hit counts as perfect
)

// Growth
const (
	BaseGrowthRate  = 120.0 // Pulse speed at match start, units per second
	GrowthAccel     = 8.0   // Speed gained per successful hit, units/second²
	OvershootMargin = 40.0  // Units past the band before the match auto-fails
)

// Scoring
const (
	ScoreHit     = 1
	ScorePerfect = 2
)

// Countdown
const (
	CountdownSeconds = 3 // Whole seconds counted down before play starts
)
