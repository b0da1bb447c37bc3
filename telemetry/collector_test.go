package telemetry

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/drift/systems"
)

func TestCollectorWindowBoundary(t *testing.T) {
	sim := systems.NewSimulation(800, 600, 10, 100, 42)
	c := NewCollector(1.0, 1.0/64.0) // 64-tick windows

	emitted := 0
	for tick := int32(1); tick <= 128; tick++ {
		step := sim.Step(nil)
		if stats, ok := c.RecordFrame(tick, step, sim); ok {
			emitted++
			if stats.Particles != 10 {
				t.Errorf("particles = %d, want 10", stats.Particles)
			}
			if stats.Frames != 64 {
				t.Errorf("frames = %d, want 64", stats.Frames)
			}
		}
	}

	if emitted != 2 {
		t.Errorf("emitted %d windows over 128 ticks, want 2", emitted)
	}
}

func TestCollectorSpeedDistribution(t *testing.T) {
	sim := systems.NewSimulation(800, 600, 4, 100, 42)
	for i := range sim.Particles {
		sim.Particles[i].VelX = float64(i + 1) // speeds 1, 2, 3, 4
		sim.Particles[i].VelY = 0
	}

	c := NewCollector(1, 1) // 1-tick windows
	stats, ok := c.RecordFrame(1, systems.StepStats{Particles: 4}, sim)
	if !ok {
		t.Fatal("expected a window to close")
	}

	if math.Abs(stats.SpeedMean-2.5) > 1e-12 {
		t.Errorf("mean = %f, want 2.5", stats.SpeedMean)
	}
	// Sample standard deviation of 1..4
	want := math.Sqrt((1.5*1.5 + 0.5*0.5 + 0.5*0.5 + 1.5*1.5) / 3)
	if math.Abs(stats.SpeedStd-want) > 1e-12 {
		t.Errorf("stddev = %f, want %f", stats.SpeedStd, want)
	}
	if stats.SpeedP50 < 1 || stats.SpeedP50 > 4 {
		t.Errorf("median = %f outside sample range", stats.SpeedP50)
	}
}

func TestCollectorBounceRate(t *testing.T) {
	sim := systems.NewSimulation(800, 600, 10, 100, 42)
	c := NewCollector(1, 1)

	stats, ok := c.RecordFrame(1, systems.StepStats{Particles: 10, Bounces: 5}, sim)
	if !ok {
		t.Fatal("expected a window to close")
	}
	if math.Abs(stats.BounceRate-0.5) > 1e-12 {
		t.Errorf("bounce rate = %f, want 0.5", stats.BounceRate)
	}
}

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatal(err)
	}
	if om != nil {
		t.Fatal("expected nil manager for empty dir")
	}
	// All methods must be nil-safe.
	if err := om.WriteStats(WindowStats{}); err != nil {
		t.Error(err)
	}
	if err := om.Close(); err != nil {
		t.Error(err)
	}
}

func TestOutputManagerWritesCSV(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatal(err)
	}

	if err := om.WriteStats(WindowStats{WindowEndTick: 60, Mode: "flow", Particles: 100}); err != nil {
		t.Fatal(err)
	}
	if err := om.WriteStats(WindowStats{WindowEndTick: 120, Mode: "flow", Particles: 100}); err != nil {
		t.Fatal(err)
	}
	if err := om.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "stats.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2 records", len(lines))
	}
	if !strings.Contains(lines[0], "window_end") {
		t.Errorf("header missing window_end: %q", lines[0])
	}
	if strings.Contains(lines[1], "window_end") {
		t.Error("header repeated in record line")
	}
}
