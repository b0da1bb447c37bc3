package systems

import (
	"math"
	"testing"
)

// recordTarget counts primitives for assertions.
type recordTarget struct {
	fades  int
	points int
	lines  int
	clears int
}

func (r *recordTarget) Fade(alpha float32)                          { r.fades++ }
func (r *recordTarget) DrawPoint(x, y, radius, hue, alpha float32)  { r.points++ }
func (r *recordTarget) DrawLine(x1, y1, x2, y2, hue, alpha float32) { r.lines++ }
func (r *recordTarget) Clear()                                      { r.clears++ }

func newTestSim(count int) *Simulation {
	return NewSimulation(800, 600, count, 100, 42)
}

func TestNewSimulationPopulation(t *testing.T) {
	s := newTestSim(100)

	if s.Count() != 100 {
		t.Fatalf("count = %d, want 100", s.Count())
	}
	for i := range s.Particles {
		p := &s.Particles[i]
		if p.X < spawnInset || p.X > 800-spawnInset || p.Y < spawnInset || p.Y > 600-spawnInset {
			t.Fatalf("particle %d spawned at (%f, %f) outside inset bounds", i, p.X, p.Y)
		}
	}
}

func TestStepHeadless(t *testing.T) {
	s := newTestSim(50)

	for i := 0; i < 10; i++ {
		stats := s.Step(nil)
		if stats.Particles != 50 {
			t.Fatalf("stats.Particles = %d, want 50", stats.Particles)
		}
	}

	if s.Field.Time() == 0 {
		t.Error("field clock did not advance")
	}
}

func TestStepEmitsPrimitives(t *testing.T) {
	s := newTestSim(30)
	target := &recordTarget{}

	s.Step(target)

	if target.fades != 1 {
		t.Errorf("fades = %d, want exactly 1 per frame", target.fades)
	}
	if target.points != 30 {
		t.Errorf("points = %d, want one per particle", target.points)
	}
	if target.lines != 30 {
		t.Errorf("lines = %d, want one per particle for small displacements", target.lines)
	}
}

func TestStepSuppressesLongTrailSegments(t *testing.T) {
	s := newTestSim(1)
	s.Speed = 100 // displacement ≈ speed * 2 units, far past the 50-unit cutoff
	p := &s.Particles[0]
	p.X = 100
	p.Y = 300
	p.VelX = ParticleMaxSpeed

	target := &recordTarget{}
	s.Step(target)

	if target.points != 1 {
		t.Errorf("points = %d, want 1", target.points)
	}
	if target.lines != 0 {
		t.Errorf("lines = %d, want 0 for a %f-unit jump", target.lines, float64(100*ParticleMaxSpeed))
	}
}

func TestSetParticleCountGrowAppends(t *testing.T) {
	s := newTestSim(100)

	type pos struct{ x, y float64 }
	before := make([]pos, 100)
	for i := range s.Particles {
		before[i] = pos{s.Particles[i].X, s.Particles[i].Y}
	}

	s.SetParticleCount(150)

	if s.Count() != 150 {
		t.Fatalf("count = %d, want 150", s.Count())
	}
	for i := 0; i < 100; i++ {
		if s.Particles[i].X != before[i].x || s.Particles[i].Y != before[i].y {
			t.Fatalf("existing particle %d was reinitialized", i)
		}
	}
	for i := 100; i < 150; i++ {
		p := &s.Particles[i]
		if p.X < spawnInset || p.X > 800-spawnInset || p.Y < spawnInset || p.Y > 600-spawnInset {
			t.Fatalf("appended particle %d at (%f, %f) outside bounds", i, p.X, p.Y)
		}
	}
}

func TestSetParticleCountShrinkTruncates(t *testing.T) {
	s := newTestSim(100)

	first := s.Particles[0]
	s.SetParticleCount(10)

	if s.Count() != 10 {
		t.Fatalf("count = %d, want 10", s.Count())
	}
	if s.Particles[0].X != first.X || s.Particles[0].Y != first.Y {
		t.Error("surviving particle was reinitialized on shrink")
	}
}

func TestSetParticleCountIdempotent(t *testing.T) {
	s := newTestSim(100)

	s.SetParticleCount(80)
	snapshot := make([]Particle, len(s.Particles))
	copy(snapshot, s.Particles)

	s.SetParticleCount(80)

	if s.Count() != 80 {
		t.Fatalf("count = %d, want 80", s.Count())
	}
	for i := range snapshot {
		if s.Particles[i].X != snapshot[i].X || s.Particles[i].Y != snapshot[i].Y {
			t.Fatalf("particle %d changed on repeated SetParticleCount", i)
		}
	}
}

func TestSetParticleCountNegative(t *testing.T) {
	s := newTestSim(10)
	s.SetParticleCount(-5)
	if s.Count() != 0 {
		t.Errorf("count = %d, want 0 for negative request", s.Count())
	}
}

func TestResetPreservesCountAndClearsCanvas(t *testing.T) {
	s := newTestSim(40)
	target := &recordTarget{}

	for i := 0; i < 5; i++ {
		s.Step(target)
	}
	s.Reset(target)

	if target.clears != 1 {
		t.Errorf("clears = %d, want 1", target.clears)
	}
	if s.Count() != 40 {
		t.Errorf("count = %d, want 40 after reset", s.Count())
	}
	for i := range s.Particles {
		p := &s.Particles[i]
		if p.VelX != 0 || p.VelY != 0 || p.TrailLen() != 0 {
			t.Fatalf("particle %d not reset", i)
		}
	}
}

func TestResizePropagates(t *testing.T) {
	s := newTestSim(20)
	s.Resize(1024, 768)

	if s.Width != 1024 || s.Height != 768 {
		t.Errorf("sim bounds = (%f, %f), want (1024, 768)", s.Width, s.Height)
	}
	if s.Field.Width != 1024 || s.Field.Height != 768 {
		t.Errorf("field bounds = (%f, %f), want (1024, 768)", s.Field.Width, s.Field.Height)
	}

	// Particle bounds updated: advancing clamps against the new extents.
	p := &s.Particles[0]
	p.X = 1500
	p.Advance(0, 0, 1)
	if p.X > 1024-boundsMargin {
		t.Errorf("particle not clamped to new bounds: x = %f", p.X)
	}
}

func TestVelocityInvariantOverManyFrames(t *testing.T) {
	s := newTestSim(50)
	s.SetMode(ModeChaos)

	for i := 0; i < 200; i++ {
		s.Step(nil)
	}

	for i := range s.Particles {
		if sp := s.Particles[i].Speed(); sp > ParticleMaxSpeed+1e-9 {
			t.Fatalf("particle %d speed %f exceeds max", i, sp)
		}
	}
}

func TestAppendSpeeds(t *testing.T) {
	s := newTestSim(5)
	for i := range s.Particles {
		s.Particles[i].VelX = float64(i) * 0.25
		s.Particles[i].VelY = 0
	}

	speeds := s.AppendSpeeds(nil)
	if len(speeds) != 5 {
		t.Fatalf("len = %d, want 5", len(speeds))
	}
	for i, sp := range speeds {
		if math.Abs(sp-float64(i)*0.25) > 1e-12 {
			t.Errorf("speeds[%d] = %f, want %f", i, sp, float64(i)*0.25)
		}
	}
}
