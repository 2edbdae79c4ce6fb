package main

import (
	"github.com/on-the-ground/noisefn/internal/configkeys"
	"github.com/on-the-ground/noisefn/noise"
	"github.com/on-the-ground/noisefn/sampler"
	"github.com/on-the-ground/noisefn/source"

	"github.com/spf13/viper"
)

type (
	sourceFbm    = source.Fbm[noise.Point2]
	sourcePerlin = source.Perlin[noise.Point2]

	// demoTree is Cache(Min(Cache(Fbm(seed)), Cache(Perlin(seed+1)))).
	demoTree = noise.Cache[noise.Point2, noise.Min[noise.Point2,
		*noise.Cache[noise.Point2, sourceFbm],
		*noise.Cache[noise.Point2, sourcePerlin],
	]]
)

type treeParams struct {
	Seed        uint32
	Octaves     int
	Frequency   float64
	Lacunarity  float64
	Persistence float64
}

func treeParamsFrom(v *viper.Viper) treeParams {
	return treeParams{
		Seed:        v.GetUint32(configkeys.NoiseSeed),
		Octaves:     v.GetInt(configkeys.NoiseOctaves),
		Frequency:   v.GetFloat64(configkeys.NoiseFrequency),
		Lacunarity:  v.GetFloat64(configkeys.NoiseLacunarity),
		Persistence: v.GetFloat64(configkeys.NoisePersistence),
	}
}

// build assembles the demo tree. The fractal parameters reach Fbm through its
// Cache.
func (p treeParams) build() *demoTree {
	fbm := noise.NewSeededCache[noise.Point2, sourceFbm](p.Seed).
		SetOctaves(p.Octaves).
		SetFrequency(p.Frequency).
		SetLacunarity(p.Lacunarity).
		SetPersistence(p.Persistence)
	perlin := noise.NewCache[noise.Point2](noise.NewSeeded[sourcePerlin](p.Seed + 1))
	return noise.NewCache[noise.Point2](noise.NewMin[noise.Point2](fbm, perlin))
}

func (p treeParams) builder() sampler.Builder {
	return func() noise.NoiseFn[noise.Point2] {
		return p.build()
	}
}
