package systems

import "math"

// FieldMode selects which angle topology drives the field.
type FieldMode uint8

const (
	ModeFlow FieldMode = iota
	ModeGalaxy
	ModeVortex
	ModeChaos
	ModeWave
	ModeMagnetic

	numFieldModes
)

// String returns the mode's config/UI name.
func (m FieldMode) String() string {
	switch m {
	case ModeFlow:
		return "flow"
	case ModeGalaxy:
		return "galaxy"
	case ModeVortex:
		return "vortex"
	case ModeChaos:
		return "chaos"
	case ModeWave:
		return "wave"
	case ModeMagnetic:
		return "magnetic"
	default:
		return "unknown"
	}
}

// FieldModeFromName maps a config name to a mode. Unknown names fall back
// to ModeFlow.
func FieldModeFromName(name string) FieldMode {
	switch name {
	case "galaxy":
		return ModeGalaxy
	case "vortex":
		return ModeVortex
	case "chaos":
		return ModeChaos
	case "wave":
		return ModeWave
	case "magnetic":
		return ModeMagnetic
	default:
		return ModeFlow
	}
}

// FieldModes lists all modes in display order.
func FieldModes() []FieldMode {
	return []FieldMode{ModeFlow, ModeGalaxy, ModeVortex, ModeChaos, ModeWave, ModeMagnetic}
}

// angleFunc computes the raw (unbounded) field angle at a point.
type angleFunc func(f *FlowField, x, y float64) float64

// modeAngle dispatches each mode tag to its angle formula.
var modeAngle = [numFieldModes]angleFunc{
	ModeFlow:     angleFlow,
	ModeGalaxy:   angleGalaxy,
	ModeVortex:   angleVortex,
	ModeChaos:    angleChaos,
	ModeWave:     angleWave,
	ModeMagnetic: angleMagnetic,
}

// modeTimeSpeed is the per-frame time increment for each mode.
var modeTimeSpeed = [numFieldModes]float64{
	ModeFlow:     0.0003,
	ModeGalaxy:   0.0001,
	ModeVortex:   0.0005,
	ModeChaos:    0.001,
	ModeWave:     0.0002,
	ModeMagnetic: 0.0003,
}

// FlowField maps plane positions to unit direction vectors. The angle at a
// point comes from the active mode's formula, perturbed near the pointer
// while pointer interaction is active. Mode, scale, and pointer state are
// mutated between frames only; VectorAt itself is side-effect free.
type FlowField struct {
	Width  float64
	Height float64
	Scale  float64

	noise     *PerlinNoise
	mode      FieldMode
	time      float64
	timeSpeed float64

	pointerX      float64
	pointerY      float64
	PointerRadius float64
	PointerForce  float64
	pointerActive bool
}

// NewFlowField creates a field over the given bounds. The noise table is
// seeded once; reseeding means constructing a new field.
func NewFlowField(width, height, scale float64, seed int64) *FlowField {
	return &FlowField{
		Width:         width,
		Height:        height,
		Scale:         scale,
		noise:         NewPerlinNoise(seed),
		mode:          ModeFlow,
		timeSpeed:     modeTimeSpeed[ModeFlow],
		pointerX:      width / 2,
		pointerY:      height / 2,
		PointerRadius: 120,
		PointerForce:  0.8,
	}
}

// VectorAt returns the unit direction vector at (x, y).
func (f *FlowField) VectorAt(x, y float64) (float64, float64) {
	angle := 0.0
	if f.mode < numFieldModes {
		angle = modeAngle[f.mode](f, x, y)
	}

	if f.pointerActive {
		dx := x - f.pointerX
		dy := y - f.pointerY
		dist := math.Sqrt(dx*dx + dy*dy)
		if dist < f.PointerRadius {
			repel := math.Atan2(dy, dx) + math.Pi
			influence := 1 - dist/f.PointerRadius
			mix := influence * f.PointerForce
			// Linear angle mix, not the angular mean; wraps near ±π are
			// part of the intended look.
			angle = angle*(1-mix) + repel*mix
		}
	}

	return math.Cos(angle), math.Sin(angle)
}

// Update advances the field clock. Called exactly once per frame.
func (f *FlowField) Update() {
	f.time += f.timeSpeed
}

// SetMode switches the topology and resets the clock speed for it.
func (f *FlowField) SetMode(mode FieldMode) {
	f.mode = mode
	if mode < numFieldModes {
		f.timeSpeed = modeTimeSpeed[mode]
	}
}

// Mode returns the active topology.
func (f *FlowField) Mode() FieldMode {
	return f.mode
}

// Time returns the field clock.
func (f *FlowField) Time() float64 {
	return f.time
}

// Noise exposes the field's noise table for preview tooling and tests.
func (f *FlowField) Noise() *PerlinNoise {
	return f.noise
}

// SetPointer moves the pointer in raw surface coordinates.
func (f *FlowField) SetPointer(x, y float64) {
	f.pointerX = x
	f.pointerY = y
}

// SetPointerActive enables or disables pointer perturbation.
func (f *FlowField) SetPointerActive(active bool) {
	f.pointerActive = active
}

// Resize updates the bounds and recenters the default pointer position.
// The noise table is not reseeded.
func (f *FlowField) Resize(width, height float64) {
	f.Width = width
	f.Height = height
	f.pointerX = width / 2
	f.pointerY = height / 2
}

func angleFlow(f *FlowField, x, y float64) float64 {
	return f.noise.Noise2D(x/f.Scale, y/f.Scale+f.time) * math.Pi * 2
}

func angleGalaxy(f *FlowField, x, y float64) float64 {
	dx := x - f.Width/2
	dy := y - f.Height/2
	dist := math.Sqrt(dx*dx + dy*dy)
	return math.Atan2(dy, dx) + dist*0.01 + f.noise.Noise2D(x/f.Scale, y/f.Scale)*0.5
}

func angleVortex(f *FlowField, x, y float64) float64 {
	dx := x - f.Width/2
	dy := y - f.Height/2
	dist := math.Sqrt(dx*dx + dy*dy)
	s := f.Scale * 0.5
	return math.Atan2(dy, dx) + math.Pi/2 + dist*0.005 + f.noise.Noise2D(x/s, y/s+f.time)*1.5
}

func angleChaos(f *FlowField, x, y float64) float64 {
	s3 := f.Scale * 0.3
	s5 := f.Scale * 0.5
	return f.noise.Noise2D(x/s3, y/s3+f.time*2)*math.Pi*4 +
		f.noise.Noise2D(x/s5, y/s5-f.time)*math.Pi*2
}

func angleWave(f *FlowField, x, y float64) float64 {
	return math.Sin((y+f.time*200)*0.01)*math.Pi +
		math.Sin((x-f.time*140)*0.01)*math.Pi +
		f.noise.Noise2D(x/f.Scale, y/f.Scale+f.time*0.5)*0.3
}

func angleMagnetic(f *FlowField, x, y float64) float64 {
	// One attracting and one repelling pole, force falling off as 1/d.
	p1x, p1y := f.Width*0.3, f.Height*0.5
	p2x, p2y := f.Width*0.7, f.Height*0.5

	d1x := p1x - x
	d1y := p1y - y
	d1 := math.Sqrt(d1x*d1x + d1y*d1y)
	a1 := math.Atan2(d1y, d1x)
	m1 := 100 / (d1 + 1)

	d2x := p2x - x
	d2y := p2y - y
	d2 := math.Sqrt(d2x*d2x + d2y*d2y)
	a2 := math.Atan2(d2y, d2x)
	m2 := 100 / (d2 + 1)

	fx := math.Cos(a1)*m1 - math.Cos(a2)*m2
	fy := math.Sin(a1)*m1 - math.Sin(a2)*m2

	s := f.Scale * 2
	return math.Atan2(fy, fx) + f.noise.Noise2D(x/s, y/s+f.time)*0.5
}
