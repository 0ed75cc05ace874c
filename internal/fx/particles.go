// Package fx provides the short-lived visual effects: the particle burst
// celebrating a perfect hit. Effects are purely cosmetic and never touch
// match state; they expire by lifetime and are cleared forcibly on phase
// changes and teardown.
package fx

import (
	"math"
	"math/rand"

	"github.com/x444dyx/pulse/internal/draw"
)

// particle is a single drifting spark.
type particle struct {
	x, y        float64
	vx, vy      float64
	lifetime    float64 // Seconds remaining
	maxLifetime float64 // Initial lifetime (for fade calculation)
	drag        float64 // Velocity decay per normalized frame (1.0 = no drag)
}

// System holds the live particles of one session. Not safe for concurrent
// use; each session owns its own instance, updated from the frame loop.
type System struct {
	particles []particle
}

// BurstRing spawns count particles on the circle of the given radius
// around (cx, cy), flying outward with some spread.
func (s *System) BurstRing(cx, cy, radius float64, count int) {
	for i := 0; i < count; i++ {
		angle := rand.Float64() * 2 * math.Pi
		speed := 40.0 * (0.5 + rand.Float64())
		life := 0.6 * (0.5 + rand.Float64()*0.5)

		s.particles = append(s.particles, particle{
			x:           cx + radius*math.Cos(angle),
			y:           cy + radius*math.Sin(angle),
			vx:          math.Cos(angle) * speed,
			vy:          math.Sin(angle) * speed,
			lifetime:    life,
			maxLifetime: life,
			drag:        0.92,
		})
	}
}

// Update advances all particles by the frame delta and drops expired ones.
func (s *System) Update(deltaSeconds float64) {
	kept := s.particles[:0]
	for _, p := range s.particles {
		p.lifetime -= deltaSeconds
		if p.lifetime <= 0 {
			continue
		}

		dragFactor := math.Pow(p.drag, deltaSeconds*60) // Normalize drag to ~60fps
		p.vx *= dragFactor
		p.vy *= dragFactor
		p.x += p.vx * deltaSeconds
		p.y += p.vy * deltaSeconds

		kept = append(kept, p)
	}
	s.particles = kept
}

// Draw renders the particles as pixels. Particles in the last quarter of
// their lifetime are skipped, which reads as a fade-out in half blocks.
func (s *System) Draw(c *draw.Canvas) {
	for _, p := range s.particles {
		if p.lifetime/p.maxLifetime < 0.25 {
			continue
		}
		c.SetFloat(p.x, p.y)
	}
}

// Active reports whether any particles are still alive.
func (s *System) Active() bool {
	return len(s.particles) > 0
}

// Clear drops all particles immediately.
func (s *System) Clear() {
	s.particles = s.particles[:0]
}
