package systems

import (
	"math"
	"testing"
)

func TestNoise2DRange(t *testing.T) {
	n := NewPerlinNoise(42)

	for y := -50; y < 50; y++ {
		for x := -50; x < 50; x++ {
			v := n.Noise2D(float64(x)*0.173, float64(y)*0.131)
			if v < -1 || v > 1 {
				t.Fatalf("noise out of range at (%d, %d): %f", x, y, v)
			}
			if math.IsNaN(v) {
				t.Fatalf("noise is NaN at (%d, %d)", x, y)
			}
		}
	}
}

func TestNoise2DDeterministic(t *testing.T) {
	a := NewPerlinNoise(1234)
	b := NewPerlinNoise(1234)

	for i := 0; i < 100; i++ {
		x := float64(i) * 0.37
		y := float64(i) * 0.73
		if a.Noise2D(x, y) != b.Noise2D(x, y) {
			t.Fatalf("same seed produced different noise at (%f, %f)", x, y)
		}
	}

	c := NewPerlinNoise(5678)
	same := true
	for i := 0; i < 100; i++ {
		x := float64(i) * 0.37
		y := float64(i) * 0.73
		if a.Noise2D(x, y) != c.Noise2D(x, y) {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical noise")
	}
}

func TestNoise2DZeroAtLattice(t *testing.T) {
	n := NewPerlinNoise(7)

	// Gradient noise vanishes at integer lattice points.
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if v := n.Noise2D(float64(x), float64(y)); v != 0 {
				t.Errorf("expected 0 at lattice point (%d, %d), got %f", x, y, v)
			}
		}
	}
}

func TestNoise2DContinuity(t *testing.T) {
	n := NewPerlinNoise(99)

	// Tiny steps should produce tiny value changes.
	const step = 1e-4
	prev := n.Noise2D(0.5, 0.5)
	for i := 1; i <= 1000; i++ {
		v := n.Noise2D(0.5+float64(i)*step, 0.5)
		if math.Abs(v-prev) > 0.01 {
			t.Fatalf("discontinuity at step %d: %f -> %f", i, prev, v)
		}
		prev = v
	}
}
