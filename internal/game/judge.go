package game

import "math"

// Outcome classifies a single activation against the pulse radius at the
// instant of input.
type Outcome int

const (
	Miss    Outcome = iota // Outside the tolerance band; ends the match
	Hit                    // Inside the band
	Perfect                // Inside the perfect threshold; bonus points
)

// String returns the outcome name for HUD and log output.
func (o Outcome) String() string {
	switch o {
	case Miss:
		return "miss"
	case Hit:
		return "hit"
	case Perfect:
		return "perfect"
	default:
		return "unknown"
	}
}

// Points returns the score awarded for the outcome.
func (o Outcome) Points() int {
	switch o {
	case Hit:
		return ScoreHit
	case Perfect:
		return ScorePerfect
	default:
		return 0
	}
}

// Judge classifies a radius sampled at the moment of input against the
// target. Pure function: the same (radius, target) pair always yields the
// same outcome. Callers must sample the radius synchronously with the input
// event, before any later pulse tick, or the judgement would read a radius
// the player never saw.
func Judge(radius float64, t Target) Outcome {
	diff := math.Abs(radius - t.Radius)
	if diff > t.Tolerance {
		return Miss
	}
	if diff < PerfectThreshold {
		return Perfect
	}
	return Hit
}
