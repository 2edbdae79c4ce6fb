package source

import (
	"github.com/on-the-ground/noisefn/noise"

	"github.com/ojrac/opensimplex-go"
)

// widen copies point into a fixed 4-vector and reports its dimension.
func widen[P noise.Point](point P) ([4]float64, int) {
	var w [4]float64
	n := len(point)
	for i := 0; i < n; i++ {
		w[i] = point[i]
	}
	return w, n
}

// evalSimplex samples k at c scaled by frequency. One-dimensional points are
// evaluated on the x axis of the 2D kernel.
func evalSimplex(k opensimplex.Noise, c [4]float64, n int, frequency float64) float64 {
	x, y, z, w := c[0]*frequency, c[1]*frequency, c[2]*frequency, c[3]*frequency
	switch n {
	case 1, 2:
		return k.Eval2(x, y)
	case 3:
		return k.Eval3(x, y, z)
	default:
		return k.Eval4(x, y, z, w)
	}
}

func newKernel(seed uint32) opensimplex.Noise {
	return opensimplex.New(int64(seed))
}

// fractalParams holds the parameters shared by the multi-octave generators.
type fractalParams struct {
	octaves     int
	frequency   float64
	lacunarity  float64
	persistence float64
	configured  bool
}

func (f fractalParams) withDefaults() fractalParams {
	if f.configured {
		return f
	}
	return fractalParams{
		octaves:     noise.DefaultOctaves,
		frequency:   noise.DefaultFrequency,
		lacunarity:  noise.DefaultLacunarity,
		persistence: noise.DefaultPersistence,
		configured:  true,
	}
}
