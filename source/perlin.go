package source

import (
	"github.com/on-the-ground/noisefn/noise"

	"github.com/aquilax/go-perlin"
)

// PerlinPoint is the subset of noise.Point the Perlin kernel supports.
type PerlinPoint interface {
	~[1]float64 | ~[2]float64 | ~[3]float64
}

// Perlin is classic multi-octave Perlin noise.
//
// The kernel divides octave i by alpha^i and scales its input by beta^i, so
// persistence maps to alpha = 1/persistence and lacunarity maps to beta.
// Frequency scales the input point.
type Perlin[P PerlinPoint] struct {
	seed   uint32
	params fractalParams
	kernel *perlin.Perlin
}

func NewPerlin[P PerlinPoint](seed uint32) Perlin[P] {
	return Perlin[P]{}.SetSeed(seed)
}

func (p Perlin[P]) rebuild() Perlin[P] {
	p.params = p.params.withDefaults()
	p.kernel = perlin.NewPerlin(1/p.params.persistence, p.params.lacunarity, int32(p.params.octaves), int64(p.seed))
	return p
}

func (p Perlin[P]) SetSeed(seed uint32) Perlin[P] {
	p.seed = seed
	return p.rebuild()
}

func (p Perlin[P]) Seed() uint32 {
	return p.seed
}

// SetOctaves clamps octaves to [1, noise.MaxOctaves].
func (p Perlin[P]) SetOctaves(octaves int) Perlin[P] {
	p.params = p.params.withDefaults()
	p.params.octaves = noise.ClampOctaves(octaves)
	return p.rebuild()
}

func (p Perlin[P]) SetFrequency(frequency float64) Perlin[P] {
	p.params = p.params.withDefaults()
	p.params.frequency = frequency
	return p
}

func (p Perlin[P]) SetLacunarity(lacunarity float64) Perlin[P] {
	p.params = p.params.withDefaults()
	p.params.lacunarity = lacunarity
	return p.rebuild()
}

// SetPersistence replaces a non-positive or NaN persistence with
// noise.DefaultPersistence, which Persistence then reports.
func (p Perlin[P]) SetPersistence(persistence float64) Perlin[P] {
	if !(persistence > 0) {
		persistence = noise.DefaultPersistence
	}
	p.params = p.params.withDefaults()
	p.params.persistence = persistence
	return p.rebuild()
}

func (p Perlin[P]) Octaves() int { return p.params.withDefaults().octaves }
func (p Perlin[P]) Frequency() float64 { return p.params.withDefaults().frequency }
func (p Perlin[P]) Lacunarity() float64 { return p.params.withDefaults().lacunarity }
func (p Perlin[P]) Persistence() float64 { return p.params.withDefaults().persistence }

func (p Perlin[P]) Get(point P) float64 {
	if p.kernel == nil {
		p = p.rebuild()
	}
	c, n := widen(point)
	f := p.params.frequency
	switch n {
	case 1:
		return p.kernel.Noise1D(c[0] * f)
	case 2:
		return p.kernel.Noise2D(c[0]*f, c[1]*f)
	default:
		return p.kernel.Noise3D(c[0]*f, c[1]*f, c[2]*f)
	}
}
