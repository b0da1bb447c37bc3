package systems

import (
	"math"
	"math/rand"
)

// Particle physics constants.
const (
	// ParticleMaxSpeed caps velocity magnitude in distance units per frame.
	ParticleMaxSpeed = 2.0

	// TrailCapacity is the number of recent positions kept per particle.
	TrailCapacity = 20

	// boundsMargin keeps particles inset from the field edges.
	boundsMargin = 2.0

	// spawnInset pads random spawn positions away from the edges.
	spawnInset = 50.0

	// forceScale converts a unit field vector into a velocity impulse.
	forceScale = 0.3

	// bounceDamping scales reflected velocity on a boundary hit.
	bounceDamping = 0.7
)

// Particle is an independent point-mass advected by the flow field.
// Particles never interact with each other.
type Particle struct {
	X, Y       float64
	VelX, VelY float64

	// Hue is the display hue in [0, 120], derived from speed each frame.
	Hue float64

	boundsW float64
	boundsH float64

	// Trail ring buffer, oldest evicted first.
	trailX    [TrailCapacity]float64
	trailY    [TrailCapacity]float64
	trailHead int
	trailLen  int
}

// NewParticle creates a particle at a random inset position within bounds.
func NewParticle(rng *rand.Rand, width, height float64) Particle {
	p := Particle{}
	p.Reset(rng, width, height)
	return p
}

// Reset respawns the particle at a random inset position, zeroes velocity,
// and clears the trail.
func (p *Particle) Reset(rng *rand.Rand, width, height float64) {
	p.X = spawnCoord(rng, width)
	p.Y = spawnCoord(rng, height)
	p.VelX = 0
	p.VelY = 0
	p.Hue = 0
	p.boundsW = width
	p.boundsH = height
	p.ClearTrail()
}

// spawnCoord draws a coordinate in [inset, extent-inset], degrading to the
// full extent when the bounds are too small for the inset.
func spawnCoord(rng *rand.Rand, extent float64) float64 {
	if extent > spawnInset*2 {
		return spawnInset + rng.Float64()*(extent-spawnInset*2)
	}
	return rng.Float64() * extent
}

// SetBounds updates the bounds the particle reflects against. The position
// is left alone; a particle beyond a shrunk edge re-enters on its next
// bounce.
func (p *Particle) SetBounds(width, height float64) {
	p.boundsW = width
	p.boundsH = height
}

// Advance integrates one frame against the given force vector. The force
// acts as a constant-mass acceleration impulse; speed is clamped, the
// previous position is recorded in the trail, and boundary hits reflect
// with damping. Returns whether a boundary bounce occurred.
func (p *Particle) Advance(forceX, forceY, speedScale float64) bool {
	p.VelX += forceX * forceScale
	p.VelY += forceY * forceScale

	speed := math.Sqrt(p.VelX*p.VelX + p.VelY*p.VelY)
	if speed > ParticleMaxSpeed {
		scale := ParticleMaxSpeed / speed
		p.VelX *= scale
		p.VelY *= scale
	}

	p.pushTrail(p.X, p.Y)

	p.X += p.VelX * speedScale
	p.Y += p.VelY * speedScale

	bounced := false
	if p.X < boundsMargin {
		p.X = boundsMargin
		p.VelX = math.Abs(p.VelX) * bounceDamping
		bounced = true
	} else if p.X > p.boundsW-boundsMargin {
		p.X = p.boundsW - boundsMargin
		p.VelX = -math.Abs(p.VelX) * bounceDamping
		bounced = true
	}
	if p.Y < boundsMargin {
		p.Y = boundsMargin
		p.VelY = math.Abs(p.VelY) * bounceDamping
		bounced = true
	} else if p.Y > p.boundsH-boundsMargin {
		p.Y = p.boundsH - boundsMargin
		p.VelY = -math.Abs(p.VelY) * bounceDamping
		bounced = true
	}

	// A trail must not bridge the clamp jump of a bounce.
	if bounced {
		p.ClearTrail()
	}

	speed = math.Sqrt(p.VelX*p.VelX + p.VelY*p.VelY)
	p.Hue = speed / ParticleMaxSpeed * 120

	return bounced
}

// Speed returns the current velocity magnitude.
func (p *Particle) Speed() float64 {
	return math.Sqrt(p.VelX*p.VelX + p.VelY*p.VelY)
}

// pushTrail appends a position, evicting the oldest at capacity.
func (p *Particle) pushTrail(x, y float64) {
	p.trailX[p.trailHead] = x
	p.trailY[p.trailHead] = y
	p.trailHead = (p.trailHead + 1) % TrailCapacity
	if p.trailLen < TrailCapacity {
		p.trailLen++
	}
}

// TrailLen returns the number of recorded trail positions.
func (p *Particle) TrailLen() int {
	return p.trailLen
}

// TrailAt returns the i-th trail position, oldest first.
func (p *Particle) TrailAt(i int) (float64, float64) {
	idx := (p.trailHead - p.trailLen + i + TrailCapacity) % TrailCapacity
	return p.trailX[idx], p.trailY[idx]
}

// ClearTrail discards all trail history.
func (p *Particle) ClearTrail() {
	p.trailHead = 0
	p.trailLen = 0
}
