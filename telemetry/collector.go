package telemetry

import "github.com/pthm-cable/drift/systems"

// Collector accumulates per-frame events and produces WindowStats once per
// window.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int32
	dt                  float64

	windowStartTick int32

	// Event counters for current window
	frames         int
	bounces        int
	particleFrames int

	// Reusable speed sample buffer
	speeds []float64
}

// NewCollector creates a stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowDurationSec float64, dt float64) *Collector {
	ticksPerWindow := int32(windowDurationSec / dt)
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// RecordFrame accumulates one frame's events. When the window closes it
// samples the simulation and returns the finished WindowStats with true.
func (c *Collector) RecordFrame(tick int32, step systems.StepStats, sim *systems.Simulation) (WindowStats, bool) {
	c.frames++
	c.bounces += step.Bounces
	c.particleFrames += step.Particles

	if tick-c.windowStartTick < c.windowDurationTicks {
		return WindowStats{}, false
	}

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   tick,
		SimTimeSec:      float64(tick) * c.dt,
		Mode:            sim.Field.Mode().String(),
		Particles:       sim.Count(),
		Frames:          c.frames,
		Bounces:         c.bounces,
	}
	if c.particleFrames > 0 {
		stats.BounceRate = float64(c.bounces) / float64(c.particleFrames)
	}

	c.speeds = sim.AppendSpeeds(c.speeds[:0])
	stats.speedDistribution(c.speeds)

	c.windowStartTick = tick
	c.frames = 0
	c.bounces = 0
	c.particleFrames = 0

	return stats, true
}
