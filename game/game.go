// Package game wires the simulation core to the raylib host loop, input,
// UI, and telemetry.
package game

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/drift/config"
	"github.com/pthm-cable/drift/renderer"
	"github.com/pthm-cable/drift/systems"
	"github.com/pthm-cable/drift/telemetry"
	"github.com/pthm-cable/drift/ui"
)

// Options holds startup parameters from CLI flags.
type Options struct {
	Seed           int64
	Headless       bool
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
}

// Game holds the complete application state.
type Game struct {
	sim   *systems.Simulation
	trail *renderer.TrailRenderer
	panel *ui.Panel
	state ui.State

	collector *telemetry.Collector
	output    *telemetry.OutputManager

	tick     int32
	paused   bool
	headless bool
	logStats bool

	screenWidth  float32
	screenHeight float32
}

// NewGame creates the game from the loaded config and options.
func NewGame(opts Options) *Game {
	cfg := config.Cfg()

	sim := systems.NewSimulation(
		float64(cfg.Screen.Width), float64(cfg.Screen.Height),
		cfg.Particles.Count, cfg.Field.Scale, opts.Seed,
	)
	sim.Speed = cfg.Particles.Speed
	sim.TrailAlpha = cfg.Render.TrailAlpha
	sim.SetMode(systems.FieldModeFromName(cfg.Field.Mode))
	sim.Field.PointerRadius = cfg.Field.PointerRadius
	sim.Field.PointerForce = cfg.Field.PointerForce

	g := &Game{
		sim:      sim,
		headless: opts.Headless,
		logStats: opts.LogStats,
		state: ui.State{
			Mode:          sim.Field.Mode(),
			ParticleCount: sim.Count(),
			Speed:         float32(sim.Speed),
			TrailAlpha:    float32(sim.TrailAlpha),
			Scale:         float32(sim.Field.Scale),
			PointerForce:  float32(sim.Field.PointerForce),
		},
		screenWidth:  cfg.Derived.ScreenW32,
		screenHeight: cfg.Derived.ScreenH32,
	}

	dt := 1.0 / float64(cfg.Screen.TargetFPS)
	g.collector = telemetry.NewCollector(opts.StatsWindowSec, dt)

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("telemetry output disabled", "error", err)
	} else {
		g.output = output
		if err := g.output.WriteConfig(cfg); err != nil {
			slog.Error("failed to write config snapshot", "error", err)
		}
	}

	if !opts.Headless {
		g.trail = renderer.NewTrailRenderer(int32(cfg.Screen.Width), int32(cfg.Screen.Height))
		g.panel = ui.NewPanel(20, 20, 220, cfg.Particles.MaxCount)
	}

	return g
}

// Update runs one interactive frame: input, then a simulation step into the
// trail canvas.
func (g *Game) Update() {
	g.handleInput()

	if g.paused {
		return
	}

	g.trail.Begin()
	stats := g.sim.Step(g.trail)
	g.trail.End()

	g.recordFrame(stats)
}

// UpdateHeadless runs one simulation step without rendering.
func (g *Game) UpdateHeadless() {
	stats := g.sim.Step(nil)
	g.recordFrame(stats)
}

// recordFrame advances the tick and feeds telemetry.
func (g *Game) recordFrame(stats systems.StepStats) {
	g.tick++
	window, ok := g.collector.RecordFrame(g.tick, stats, g.sim)
	if !ok {
		return
	}
	if g.logStats {
		window.Log()
	}
	if err := g.output.WriteStats(window); err != nil {
		slog.Error("failed to write stats", "error", err)
	}
}

// Draw renders the trail canvas, HUD, and control panel.
func (g *Game) Draw() {
	rl.BeginDrawing()

	g.trail.Draw()
	g.drawHUD()
	g.panel.Draw(&g.state)
	g.applyControls()

	rl.EndDrawing()
}

// drawHUD renders the status line.
func (g *Game) drawHUD() {
	status := fmt.Sprintf("%s | %d particles | %d fps", g.sim.Field.Mode(), g.sim.Count(), rl.GetFPS())
	if g.paused {
		status += " | paused"
	}
	rl.DrawText(status, 20, int32(g.screenHeight)-28, 16, rl.Gray)
	rl.DrawText("[1-6] mode  [space] pause  [r] reset  [h] panel", 20, int32(g.screenHeight)-50, 12, rl.DarkGray)
}

// applyControls pushes panel edits into the simulation.
func (g *Game) applyControls() {
	if g.state.Mode != g.sim.Field.Mode() {
		g.sim.SetMode(g.state.Mode)
	}
	if g.state.ParticleCount != g.sim.Count() {
		g.sim.SetParticleCount(g.state.ParticleCount)
	}
	g.sim.Speed = float64(g.state.Speed)
	g.sim.TrailAlpha = float64(g.state.TrailAlpha)
	g.sim.Field.Scale = float64(g.state.Scale)
	g.sim.Field.PointerForce = float64(g.state.PointerForce)

	if g.state.ResetRequested {
		g.sim.Reset(g.trail)
	}
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int32 {
	return g.tick
}

// Unload releases rendering and output resources.
func (g *Game) Unload() {
	if g.trail != nil {
		g.trail.Unload()
	}
	if err := g.output.Close(); err != nil {
		slog.Error("failed to close telemetry output", "error", err)
	}
}
