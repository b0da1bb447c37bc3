package systems

import (
	"math"
	"math/rand"
)

// PerlinNoise generates coherent 2D gradient noise.
type PerlinNoise struct {
	perm [512]int
}

// NewPerlinNoise creates a new Perlin noise generator.
func NewPerlinNoise(seed int64) *PerlinNoise {
	p := &PerlinNoise{}
	rng := rand.New(rand.NewSource(seed))

	// Initialize permutation table
	var perm [256]int
	for i := range perm {
		perm[i] = i
	}

	// Shuffle
	for i := len(perm) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}

	// Duplicate
	for i := 0; i < 256; i++ {
		p.perm[i] = perm[i]
		p.perm[i+256] = perm[i]
	}

	return p
}

// Noise2D returns a noise value in [-1, 1] for 2D coordinates.
func (p *PerlinNoise) Noise2D(x, y float64) float64 {
	// Find unit square
	X := int(math.Floor(x)) & 255
	Y := int(math.Floor(y)) & 255

	// Find relative position in square
	x -= math.Floor(x)
	y -= math.Floor(y)

	// Compute fade curves
	u := fade(x)
	v := fade(y)

	// Hash coordinates of square corners
	aa := p.perm[p.perm[X]+Y]
	ab := p.perm[p.perm[X]+Y+1]
	ba := p.perm[p.perm[X+1]+Y]
	bb := p.perm[p.perm[X+1]+Y+1]

	// Blend results from 4 corners
	return lerp(v,
		lerp(u, grad2D(aa, x, y), grad2D(ba, x-1, y)),
		lerp(u, grad2D(ab, x, y-1), grad2D(bb, x-1, y-1)))
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

func grad2D(hash int, x, y float64) float64 {
	h := hash & 3
	u, v := x, y
	if h >= 2 {
		u, v = y, x
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}
