package source

import (
	"github.com/on-the-ground/noisefn/noise"

	"github.com/ojrac/opensimplex-go"
)

// Fbm is fractal Brownian motion: the weighted sum of several OpenSimplex
// octaves. Octave i is sampled at frequency*lacunarity^i with amplitude
// persistence^i and seeded with seed+i. The sum is normalized by the total
// amplitude, so outputs stay roughly in [-1, 1].
type Fbm[P noise.Point] struct {
	seed    uint32
	params  fractalParams
	kernels []opensimplex.Noise
}

func NewFbm[P noise.Point](seed uint32) Fbm[P] {
	return Fbm[P]{}.SetSeed(seed)
}

func (f Fbm[P]) rebuild() Fbm[P] {
	f.params = f.params.withDefaults()
	kernels := make([]opensimplex.Noise, f.params.octaves)
	for i := range kernels {
		kernels[i] = newKernel(f.seed + uint32(i))
	}
	f.kernels = kernels
	return f
}

func (f Fbm[P]) SetSeed(seed uint32) Fbm[P] {
	f.seed = seed
	return f.rebuild()
}

func (f Fbm[P]) Seed() uint32 {
	return f.seed
}

// SetOctaves clamps octaves to [1, noise.MaxOctaves].
func (f Fbm[P]) SetOctaves(octaves int) Fbm[P] {
	f.params = f.params.withDefaults()
	f.params.octaves = noise.ClampOctaves(octaves)
	return f.rebuild()
}

func (f Fbm[P]) SetFrequency(frequency float64) Fbm[P] {
	f.params = f.params.withDefaults()
	f.params.frequency = frequency
	return f
}

func (f Fbm[P]) SetLacunarity(lacunarity float64) Fbm[P] {
	f.params = f.params.withDefaults()
	f.params.lacunarity = lacunarity
	return f
}

func (f Fbm[P]) SetPersistence(persistence float64) Fbm[P] {
	f.params = f.params.withDefaults()
	f.params.persistence = persistence
	return f
}

func (f Fbm[P]) Octaves() int { return f.params.withDefaults().octaves }
func (f Fbm[P]) Frequency() float64 { return f.params.withDefaults().frequency }
func (f Fbm[P]) Lacunarity() float64 { return f.params.withDefaults().lacunarity }
func (f Fbm[P]) Persistence() float64 { return f.params.withDefaults().persistence }

func (f Fbm[P]) Get(point P) float64 {
	if f.kernels == nil {
		f = f.rebuild()
	}
	c, n := widen(point)

	frequency := f.params.frequency
	amplitude := 1.0
	var sum, norm float64
	for _, k := range f.kernels {
		sum += amplitude * evalSimplex(k, c, n, frequency)
		norm += amplitude
		frequency *= f.params.lacunarity
		amplitude *= f.params.persistence
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}
