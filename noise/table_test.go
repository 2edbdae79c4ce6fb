package noise_test

import (
	"sync"
	"testing"

	"github.com/on-the-ground/noisefn/noise"

	"github.com/stretchr/testify/assert"
)

func TestTable_RemembersSeveralPoints(t *testing.T) {
	src := newCounter()
	table := noise.NewTable[noise.Point2](src, 8)

	p1 := noise.Point2{0, 0}
	p2 := noise.Point2{1, 0}

	v1 := table.Get(p1)
	table.Get(p2)
	assert.Equal(t, v1, table.Get(p1)) // unlike Cache, p1 survives
	assert.Equal(t, int64(2), src.Calls())
}

func TestTable_BoundedByGenerations(t *testing.T) {
	src := newCounter()
	table := noise.NewTable[noise.Point2](src, 2)

	for i := 0; i < 6; i++ {
		table.Get(noise.Point2{float64(i), 0})
	}
	assert.Equal(t, int64(6), src.Calls())

	// the oldest generation has been dropped
	table.Get(noise.Point2{0, 0})
	assert.Equal(t, int64(7), src.Calls())
}

func TestTable_ForwardingStartsEmpty(t *testing.T) {
	src := newCounter()
	table := noise.NewTable[noise.Point2](src, 4)
	p := noise.Point2{2, 3}

	table.Get(p)
	reseeded := table.SetSeed(11)
	reseeded.Get(p)
	assert.Equal(t, int64(2), src.Calls())
	assert.Equal(t, uint32(11), reseeded.Seed())
	assert.Equal(t, uint32(4), reseeded.Size())

	tuned := reseeded.SetOctaves(2).SetFrequency(3).SetLacunarity(2).SetPersistence(0.5)
	assert.Equal(t, 2, tuned.Source().Octaves())
}

func TestTable_Concurrent(t *testing.T) {
	src := newCounter()
	table := noise.NewTable[noise.Point2](src, 64)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 32; j++ {
				p := noise.Point2{float64(j), float64(j % 3)}
				assert.Equal(t, src.Get(p), table.Get(p))
			}
		}()
	}
	wg.Wait()
}
