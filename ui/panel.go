// Package ui provides the raygui control panel.
package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/drift/systems"
)

// State mirrors the simulation controls the panel exposes. The game applies
// whatever the panel changed after drawing it.
type State struct {
	Mode          systems.FieldMode
	ParticleCount int
	Speed         float32
	TrailAlpha    float32
	Scale         float32
	PointerForce  float32

	// ResetRequested is set for one frame when the reset button fires.
	ResetRequested bool
}

// Panel renders the control panel and edits a State in place.
type Panel struct {
	x, y         int32
	width        int32
	maxParticles int
	visible      bool
}

// NewPanel creates a control panel anchored at (x, y).
func NewPanel(x, y, width int32, maxParticles int) *Panel {
	return &Panel{
		x:            x,
		y:            y,
		width:        width,
		maxParticles: maxParticles,
		visible:      true,
	}
}

// Toggle switches panel visibility.
func (p *Panel) Toggle() bool {
	p.visible = !p.visible
	return p.visible
}

// IsVisible returns whether the panel is shown.
func (p *Panel) IsVisible() bool {
	return p.visible
}

// height of the drawn panel; keep in sync with Draw's layout.
func (p *Panel) height() int32 {
	return 10 + 25 + 3*34 + 10 + 5*38 + 42
}

// Contains reports whether a surface point lies over the visible panel.
// Pointer interaction is suppressed while the mouse is on the panel.
func (p *Panel) Contains(x, y float32) bool {
	if !p.visible {
		return false
	}
	return x >= float32(p.x) && x <= float32(p.x+p.width) &&
		y >= float32(p.y) && y <= float32(p.y+p.height())
}

// Draw renders the panel and updates state with any edits.
func (p *Panel) Draw(state *State) {
	state.ResetRequested = false
	if !p.visible {
		return
	}

	x := float32(p.x)
	y := float32(p.y)
	w := float32(p.width)

	rl.DrawRectangle(p.x-10, p.y-10, p.width+20, p.height(), rl.Color{R: 20, G: 22, B: 30, A: 220})

	rl.DrawText("Field", int32(x), int32(y), 16, rl.White)
	y += 25

	// Mode buttons, two per row
	modes := systems.FieldModes()
	bw := (w - 10) / 2
	for i, mode := range modes {
		bx := x + float32(i%2)*(bw+10)
		label := mode.String()
		if mode == state.Mode {
			label = "> " + label
		}
		if gui.Button(rl.Rectangle{X: bx, Y: y, Width: bw, Height: 26}, label) {
			state.Mode = mode
		}
		if i%2 == 1 {
			y += 34
		}
	}
	y += 10

	state.ParticleCount = int(p.sliderF(x, &y, w, "Particles", float32(state.ParticleCount), 0, float32(p.maxParticles), "%.0f"))
	state.Speed = p.sliderF(x, &y, w, "Speed", state.Speed, 0, 2, "%.2f")
	state.TrailAlpha = p.sliderF(x, &y, w, "Trail", state.TrailAlpha, 0, 1, "%.2f")
	state.Scale = p.sliderF(x, &y, w, "Scale", state.Scale, 10, 400, "%.0f")
	state.PointerForce = p.sliderF(x, &y, w, "Pointer", state.PointerForce, 0, 1, "%.2f")

	if gui.Button(rl.Rectangle{X: x, Y: y, Width: w, Height: 30}, "Reset") {
		state.ResetRequested = true
	}
}

// sliderF draws a labeled slider row and advances the layout cursor.
func (p *Panel) sliderF(x float32, y *float32, w float32, label string, value, min, max float32, format string) float32 {
	rl.DrawText(label, int32(x), int32(*y), 12, rl.Gray)
	v := gui.SliderBar(
		rl.Rectangle{X: x, Y: *y + 14, Width: w - 56, Height: 18},
		"", "",
		value, min, max,
	)
	rl.DrawText(fmt.Sprintf(format, v), int32(x+w-50), int32(*y+16), 14, rl.RayWhite)
	*y += 38
	return v
}
