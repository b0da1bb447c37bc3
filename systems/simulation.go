package systems

import (
	"math"
	"math/rand"
)

// Render constants for the primitives handed to the RenderTarget.
const (
	pointRadius = 1.5
	pointAlpha  = 0.8
	lineAlpha   = 0.3

	// maxTrailSegment suppresses lines between frames whose displacement is
	// large enough to be a clamp artifact rather than motion.
	maxTrailSegment = 50.0
)

// RenderTarget receives per-frame draw primitives. Trail persistence is the
// target's job: it composites the Fade rectangle over its canvas before the
// frame's points and lines land on top.
type RenderTarget interface {
	// Fade composites a full-surface background rectangle at the given
	// opacity (0 = keep everything, 1 = clear instantly).
	Fade(alpha float32)
	// DrawPoint draws a filled dot. Hue is in degrees, [0, 360).
	DrawPoint(x, y, radius, hue, alpha float32)
	// DrawLine draws a 1-unit-wide segment.
	DrawLine(x1, y1, x2, y2, hue, alpha float32)
	// Clear wipes the canvas completely.
	Clear()
}

// StepStats summarizes a single frame for telemetry.
type StepStats struct {
	Particles int
	Bounces   int
}

// Simulation owns the particle population and its flow field and runs the
// per-frame loop. All mutation happens on the frame thread; Step either
// completes fully or not at all.
type Simulation struct {
	Width  float64
	Height float64

	// Speed is the global multiplier on integrated displacement.
	Speed float64

	// TrailAlpha is the trail persistence factor: 0 clears instantly,
	// 1 keeps trails forever.
	TrailAlpha float64

	Field     *FlowField
	Particles []Particle

	rng *rand.Rand
}

// NewSimulation creates a simulation with count particles over the given
// bounds. seed drives both particle placement and the field's noise table.
func NewSimulation(width, height float64, count int, scale float64, seed int64) *Simulation {
	s := &Simulation{
		Width:      width,
		Height:     height,
		Speed:      1.0,
		TrailAlpha: 0.95,
		Field:      NewFlowField(width, height, scale, seed),
		rng:        rand.New(rand.NewSource(seed)),
	}
	s.SetParticleCount(count)
	return s
}

// Step advances the field clock and every particle by one frame, emitting
// draw primitives to target. A nil target runs the simulation headless.
func (s *Simulation) Step(target RenderTarget) StepStats {
	s.Field.Update()

	if target != nil {
		target.Fade(float32(1 - s.TrailAlpha))
	}

	stats := StepStats{Particles: len(s.Particles)}
	for i := range s.Particles {
		p := &s.Particles[i]
		prevX, prevY := p.X, p.Y

		fx, fy := s.Field.VectorAt(p.X, p.Y)
		if p.Advance(fx, fy, s.Speed) {
			stats.Bounces++
		}

		if target == nil {
			continue
		}

		hue := float32(p.Hue)
		target.DrawPoint(float32(p.X), float32(p.Y), pointRadius, hue, pointAlpha)

		dx := p.X - prevX
		dy := p.Y - prevY
		if math.Sqrt(dx*dx+dy*dy) < maxTrailSegment {
			target.DrawLine(float32(prevX), float32(prevY), float32(p.X), float32(p.Y), hue, lineAlpha)
		}
	}

	return stats
}

// SetParticleCount grows the population by appending new random particles
// or shrinks it by truncation. Existing particles are never reinitialized.
func (s *Simulation) SetParticleCount(count int) {
	if count < 0 {
		count = 0
	}
	if count <= len(s.Particles) {
		s.Particles = s.Particles[:count]
		return
	}
	for len(s.Particles) < count {
		s.Particles = append(s.Particles, NewParticle(s.rng, s.Width, s.Height))
	}
}

// Count returns the live particle count.
func (s *Simulation) Count() int {
	return len(s.Particles)
}

// Reset clears the target canvas and respawns every particle, preserving
// the population size.
func (s *Simulation) Reset(target RenderTarget) {
	if target != nil {
		target.Clear()
	}
	for i := range s.Particles {
		s.Particles[i].Reset(s.rng, s.Width, s.Height)
	}
}

// SetMode switches the field topology.
func (s *Simulation) SetMode(mode FieldMode) {
	s.Field.SetMode(mode)
}

// SetPointerPosition forwards raw surface coordinates to the field.
func (s *Simulation) SetPointerPosition(x, y float64) {
	s.Field.SetPointer(x, y)
}

// SetPointerActive toggles pointer perturbation.
func (s *Simulation) SetPointerActive(active bool) {
	s.Field.SetPointerActive(active)
}

// Resize updates the simulation, field, and particle bounds. Particles are
// not repositioned; any now outside the new bounds re-enter on their next
// bounce.
func (s *Simulation) Resize(width, height float64) {
	s.Width = width
	s.Height = height
	s.Field.Resize(width, height)
	for i := range s.Particles {
		s.Particles[i].SetBounds(width, height)
	}
}

// AppendSpeeds appends every particle's current speed to buf and returns
// the extended slice. Used by the telemetry collector.
func (s *Simulation) AppendSpeeds(buf []float64) []float64 {
	for i := range s.Particles {
		buf = append(buf, s.Particles[i].Speed())
	}
	return buf
}
