// Field topology preview tool - renders the flow field's direction angle as
// a hue texture, with sliders for the field parameters.
//
// Usage: go run ./cmd/fieldpreview
package main

import (
	"fmt"
	"image/color"
	"math"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/drift/systems"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	previewSize  = 512
	panelWidth   = windowWidth - previewSize - 30
	gridSize     = 256
)

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Field Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	scale := float32(100.0)
	seed := int64(12345)
	animating := false

	field := systems.NewFlowField(gridSize, gridSize, float64(scale), seed)

	img := rl.GenImageColor(gridSize, gridSize, rl.Black)
	texture := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	defer rl.UnloadTexture(texture)

	pixels := make([]color.RGBA, gridSize*gridSize)
	renderField(field, pixels)
	rl.UpdateTexture(texture, pixels)

	needsRegen := false

	for !rl.WindowShouldClose() {
		if animating {
			// Preview runs several field frames per drawn frame so slow
			// mode clocks stay visible.
			for i := 0; i < 20; i++ {
				field.Update()
			}
			needsRegen = true
		}

		if needsRegen {
			renderField(field, pixels)
			rl.UpdateTexture(texture, pixels)
			needsRegen = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		rl.DrawTexturePro(
			texture,
			rl.Rectangle{X: 0, Y: 0, Width: float32(gridSize), Height: float32(gridSize)},
			rl.Rectangle{X: 10, Y: 10, Width: previewSize, Height: previewSize},
			rl.Vector2{X: 0, Y: 0},
			0,
			rl.White,
		)
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		statsY := int32(previewSize + 25)
		rl.DrawText(fmt.Sprintf("Mode: %s  Time: %.4f", field.Mode(), field.Time()), 15, statsY, 16, rl.DarkGray)

		// Control panel
		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Field Topology", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		for _, mode := range systems.FieldModes() {
			label := mode.String()
			if mode == field.Mode() {
				label = "> " + label
			}
			if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 150, Height: 26}, label) {
				field.SetMode(mode)
				needsRegen = true
			}
			panelY += 32
		}
		panelY += 10

		rl.DrawText("Scale (spatial frequency divisor)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newScale := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"10", "400",
			scale, 10, 400,
		)
		rl.DrawText(fmt.Sprintf("%.0f", scale), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if newScale != scale {
			scale = newScale
			field.Scale = float64(scale)
			needsRegen = true
		}
		panelY += 45

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(animating, "Stop", "Animate")) {
			animating = !animating
		}

		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Random Seed") {
			seed = int64(rl.GetRandomValue(0, 99999))
			field = systems.NewFlowField(gridSize, gridSize, float64(scale), seed)
			needsRegen = true
		}

		rl.EndDrawing()
	}
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}

// renderField colors each grid cell by its field direction (hue = angle).
func renderField(field *systems.FlowField, pixels []color.RGBA) {
	for y := 0; y < gridSize; y++ {
		for x := 0; x < gridSize; x++ {
			vx, vy := field.VectorAt(float64(x), float64(y))
			angle := math.Atan2(vy, vx)
			hue := float32(angle+math.Pi) / (2 * math.Pi) * 360
			pixels[y*gridSize+x] = rl.ColorFromHSV(hue, 0.7, 0.95)
		}
	}
}
