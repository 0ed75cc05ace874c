package game

// Pulse is the ring growing outward from the center. Radius integrates
// forward at Rate; both are mutated only through the methods below, and
// only while a match is in the playing phase.
type Pulse struct {
	Radius float64 // Current distance from center, logical units
	Rate   float64 // Growth speed, units per second
}

// Tick advances the radius by exactly Rate * deltaSeconds.
func (p *Pulse) Tick(deltaSeconds float64) {
	p.Radius += p.Rate * deltaSeconds
}

// Overshot reports whether the pulse has grown past the point where a hit
// is still conceivable. Once true the match must end without input.
func (p *Pulse) Overshot(t Target) bool {
	return p.Radius > t.Radius+t.Tolerance+OvershootMargin
}

// ResetForHit restarts the pulse after a successful hit. The radius drops
// to zero and the growth rate ratchets up; the rate never decreases over
// the lifetime of a match.
func (p *Pulse) ResetForHit() {
	p.Radius = 0
	p.Rate += GrowthAccel
}

// ResetForMatch restarts the pulse for a fresh match at the given base rate.
func (p *Pulse) ResetForMatch(baseRate float64) {
	p.Radius = 0
	p.Rate = baseRate
}
