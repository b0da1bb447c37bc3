// Package renderer provides the raylib rendering backend.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// background is the canvas base color; fade rectangles composite it over
// old frames to decay trails.
var background = rl.Color{R: 8, G: 10, B: 18, A: 255}

// TrailRenderer draws simulation primitives into an offscreen canvas so
// trails persist across frames. Each frame the simulation composites a
// translucent fade rectangle, then the frame's points and line segments.
type TrailRenderer struct {
	width  int32
	height int32
	canvas rl.RenderTexture2D
}

// NewTrailRenderer creates a renderer with a canvas of the given size.
func NewTrailRenderer(width, height int32) *TrailRenderer {
	r := &TrailRenderer{
		width:  width,
		height: height,
		canvas: rl.LoadRenderTexture(width, height),
	}
	r.Clear()
	return r
}

// Begin opens the canvas for a frame's primitives.
func (r *TrailRenderer) Begin() {
	rl.BeginTextureMode(r.canvas)
}

// End closes the canvas.
func (r *TrailRenderer) End() {
	rl.EndTextureMode()
}

// Fade composites a translucent background rectangle over the canvas.
// Must be called between Begin and End.
func (r *TrailRenderer) Fade(alpha float32) {
	if alpha <= 0 {
		return
	}
	rl.DrawRectangle(0, 0, r.width, r.height, rl.Fade(background, alpha))
}

// DrawPoint draws a particle dot. Must be called between Begin and End.
func (r *TrailRenderer) DrawPoint(x, y, radius, hue, alpha float32) {
	rl.DrawCircleV(rl.Vector2{X: x, Y: y}, radius, particleColor(hue, alpha))
}

// DrawLine draws a trail segment. Must be called between Begin and End.
func (r *TrailRenderer) DrawLine(x1, y1, x2, y2, hue, alpha float32) {
	rl.DrawLineEx(
		rl.Vector2{X: x1, Y: y1},
		rl.Vector2{X: x2, Y: y2},
		1,
		particleColor(hue, alpha),
	)
}

// Clear wipes the canvas to the background color. Must be called outside
// Begin/End.
func (r *TrailRenderer) Clear() {
	rl.BeginTextureMode(r.canvas)
	rl.ClearBackground(background)
	rl.EndTextureMode()
}

// Draw blits the canvas to the screen. Render textures are Y-flipped, so
// the source rectangle uses a negative height.
func (r *TrailRenderer) Draw() {
	rl.DrawTextureRec(
		r.canvas.Texture,
		rl.Rectangle{X: 0, Y: 0, Width: float32(r.width), Height: -float32(r.height)},
		rl.Vector2{X: 0, Y: 0},
		rl.White,
	)
}

// Resize recreates the canvas at the new size. Trail history on the old
// canvas is discarded.
func (r *TrailRenderer) Resize(width, height int32) {
	if width == r.width && height == r.height {
		return
	}
	rl.UnloadRenderTexture(r.canvas)
	r.width = width
	r.height = height
	r.canvas = rl.LoadRenderTexture(width, height)
	r.Clear()
}

// Unload frees the canvas texture.
func (r *TrailRenderer) Unload() {
	rl.UnloadRenderTexture(r.canvas)
}

// particleColor maps a speed hue (0 = slow, 120 = fast) onto a cyan-to-
// magenta sweep.
func particleColor(hue, alpha float32) rl.Color {
	return rl.Fade(rl.ColorFromHSV(200+hue, 0.75, 1.0), alpha)
}
