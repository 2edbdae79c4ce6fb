package source

import (
	"github.com/on-the-ground/noisefn/noise"

	"github.com/ojrac/opensimplex-go"
)

// Simplex is single-octave OpenSimplex noise. Outputs lie roughly in [-1, 1].
type Simplex[P noise.Point] struct {
	seed   uint32
	kernel opensimplex.Noise
}

func NewSimplex[P noise.Point](seed uint32) Simplex[P] {
	return Simplex[P]{}.SetSeed(seed)
}

func (s Simplex[P]) SetSeed(seed uint32) Simplex[P] {
	return Simplex[P]{seed: seed, kernel: newKernel(seed)}
}

func (s Simplex[P]) Seed() uint32 {
	return s.seed
}

func (s Simplex[P]) Get(point P) float64 {
	k := s.kernel
	if k == nil {
		k = newKernel(s.seed)
	}
	c, n := widen(point)
	return evalSimplex(k, c, n, 1)
}
