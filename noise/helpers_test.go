package noise_test

import (
	"sync/atomic"

	"github.com/on-the-ground/noisefn/noise"
)

// counter is an instrumented 2D source. It is seedable and multi-fractal, and
// its output depends on every parameter so stale memo reads are visible.
type counter struct {
	calls *atomic.Int64

	seed        uint32
	octaves     int
	frequency   float64
	lacunarity  float64
	persistence float64
}

func newCounter() counter {
	return counter{
		calls:       &atomic.Int64{},
		octaves:     noise.DefaultOctaves,
		frequency:   noise.DefaultFrequency,
		lacunarity:  noise.DefaultLacunarity,
		persistence: noise.DefaultPersistence,
	}
}

func (c counter) Get(p noise.Point2) float64 {
	c.calls.Add(1)
	return float64(c.seed)*1000 +
		(p[0]+p[1]*10)*c.frequency +
		float64(c.octaves)*0.1 +
		c.lacunarity*0.01 +
		c.persistence*0.001
}

func (c counter) SetSeed(seed uint32) counter {
	c.seed = seed
	return c
}

func (c counter) Seed() uint32 {
	return c.seed
}

func (c counter) SetOctaves(octaves int) counter {
	c.octaves = octaves
	return c
}

func (c counter) SetFrequency(frequency float64) counter {
	c.frequency = frequency
	return c
}

func (c counter) SetLacunarity(lacunarity float64) counter {
	c.lacunarity = lacunarity
	return c
}

func (c counter) SetPersistence(persistence float64) counter {
	c.persistence = persistence
	return c
}

func (c counter) Octaves() int { return c.octaves }

func (c counter) Calls() int64 { return c.calls.Load() }

// plain is an instrumented source with no capabilities.
type plain struct {
	calls *atomic.Int64
	fn    func(noise.Point2) float64
}

func newPlain(fn func(noise.Point2) float64) plain {
	return plain{calls: &atomic.Int64{}, fn: fn}
}

func (p plain) Get(point noise.Point2) float64 {
	p.calls.Add(1)
	return p.fn(point)
}

func (p plain) Calls() int64 { return p.calls.Load() }
