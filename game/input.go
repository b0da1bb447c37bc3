package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/drift/systems"
)

// handleInput processes keyboard and pointer input.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	if rl.IsKeyPressed(rl.KeyR) {
		g.sim.Reset(g.trail)
	}

	if rl.IsKeyPressed(rl.KeyH) {
		g.panel.Toggle()
	}

	// Number keys select field modes
	for i, mode := range systems.FieldModes() {
		if rl.IsKeyPressed(int32(rl.KeyOne) + int32(i)) {
			g.state.Mode = mode
			g.sim.SetMode(mode)
		}
	}

	g.handlePointer()
}

// handlePointer forwards the mouse to the field as pointer interaction.
// Holding the left button perturbs the field; the panel captures the mouse
// while hovered.
func (g *Game) handlePointer() {
	pos := rl.GetMousePosition()

	if g.panel.Contains(pos.X, pos.Y) {
		g.sim.SetPointerActive(false)
		return
	}

	g.sim.SetPointerPosition(float64(pos.X), float64(pos.Y))
	g.sim.SetPointerActive(rl.IsMouseButtonDown(rl.MouseButtonLeft))
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h

	g.sim.Resize(float64(w), float64(h))
	g.trail.Resize(int32(w), int32(h))
}
