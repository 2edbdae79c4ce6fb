package noise

import "sync"

// SyncCache is a Cache whose memo slot is guarded by a mutex, so one tree can
// be evaluated from several goroutines. Every Get takes the lock, including
// hits, and the source is evaluated while the lock is held. Prefer one Cache
// per goroutine when trees are cheap to build.
type SyncCache[P Point, S NoiseFn[P]] struct {
	source S

	mu    sync.Mutex
	point P
	value float64
	valid bool
}

func NewSyncCache[P Point, S NoiseFn[P]](source S) *SyncCache[P, S] {
	return &SyncCache[P, S]{source: source}
}

func (c *SyncCache[P, S]) Get(point P) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.valid && c.point == point {
		return c.value
	}
	value := c.source.Get(point)
	c.point, c.value, c.valid = point, value, true
	return value
}

func (c *SyncCache[P, S]) Source() S {
	return c.source
}

func (c *SyncCache[P, S]) SetSeed(seed uint32) *SyncCache[P, S] {
	return NewSyncCache[P](seedable(c.source).SetSeed(seed))
}

func (c *SyncCache[P, S]) Seed() uint32 {
	return seedable(c.source).Seed()
}

func (c *SyncCache[P, S]) SetOctaves(octaves int) *SyncCache[P, S] {
	return NewSyncCache[P](multiFractal(c.source).SetOctaves(octaves))
}

func (c *SyncCache[P, S]) SetFrequency(frequency float64) *SyncCache[P, S] {
	return NewSyncCache[P](multiFractal(c.source).SetFrequency(frequency))
}

func (c *SyncCache[P, S]) SetLacunarity(lacunarity float64) *SyncCache[P, S] {
	return NewSyncCache[P](multiFractal(c.source).SetLacunarity(lacunarity))
}

func (c *SyncCache[P, S]) SetPersistence(persistence float64) *SyncCache[P, S] {
	return NewSyncCache[P](multiFractal(c.source).SetPersistence(persistence))
}
