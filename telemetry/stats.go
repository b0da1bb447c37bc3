// Package telemetry aggregates per-frame simulation statistics into
// fixed-duration windows for logging and CSV output.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// State at window end
	Mode      string `csv:"mode"`
	Particles int    `csv:"particles"`

	// Events during window
	Frames     int     `csv:"frames"`
	Bounces    int     `csv:"bounces"`
	BounceRate float64 `csv:"bounce_rate"` // bounces per particle per frame

	// Speed distribution (sampled at window end)
	SpeedMean float64 `csv:"speed_mean"`
	SpeedStd  float64 `csv:"speed_std"`
	SpeedP10  float64 `csv:"speed_p10"`
	SpeedP50  float64 `csv:"speed_p50"`
	SpeedP90  float64 `csv:"speed_p90"`
}

// Log emits the window via slog.
func (w WindowStats) Log() {
	slog.Info("window stats",
		"tick", w.WindowEndTick,
		"sim_time", w.SimTimeSec,
		"mode", w.Mode,
		"particles", w.Particles,
		"bounce_rate", w.BounceRate,
		"speed_mean", w.SpeedMean,
		"speed_std", w.SpeedStd,
	)
}

// speedDistribution fills the distribution fields from a sample of speeds.
// The input slice is sorted in place.
func (w *WindowStats) speedDistribution(speeds []float64) {
	if len(speeds) == 0 {
		return
	}
	sort.Float64s(speeds)
	w.SpeedMean = stat.Mean(speeds, nil)
	if len(speeds) > 1 {
		w.SpeedStd = stat.StdDev(speeds, nil)
	}
	w.SpeedP10 = stat.Quantile(0.1, stat.Empirical, speeds, nil)
	w.SpeedP50 = stat.Quantile(0.5, stat.Empirical, speeds, nil)
	w.SpeedP90 = stat.Quantile(0.9, stat.Empirical, speeds, nil)
}
