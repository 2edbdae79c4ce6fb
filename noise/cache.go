package noise

// Cache remembers the output of its source for the most recently requested
// point.
//
// If Get is called with the same point as the previous call, the remembered
// value is returned without evaluating the source. Otherwise the source is
// evaluated, and the new (point, value) pair replaces the old one. There is
// exactly one slot: a second distinct point always evicts the first.
//
// Caching pays off when one source feeds several consumers of the same tree,
// which would otherwise evaluate it once per consumer for every point.
//
// Points are matched with ==, so a NaN coordinate never hits and -0 matches +0.
//
// Get looks like a read but writes the memo. A Cache must not be shared between
// goroutines; use SyncCache for that.
//
// Seed and fractal forwarding needs S to be the concrete source type. With an
// interface type argument such as NoiseFn[P], CanSeed and CanFractal report
// false and the setters panic, even when the dynamic source has the methods.
type Cache[P Point, S NoiseFn[P]] struct {
	source S

	point P
	value float64
	valid bool
}

func NewCache[P Point, S NoiseFn[P]](source S) *Cache[P, S] {
	return &Cache[P, S]{source: source}
}

// NewSeededCache wraps a freshly seeded S.
func NewSeededCache[P Point, S interface {
	NoiseFn[P]
	Seedable[S]
}](seed uint32) *Cache[P, S] {
	return NewCache[P](NewSeeded[S](seed))
}

func (c *Cache[P, S]) Get(point P) float64 {
	if c.valid && c.point == point {
		return c.value
	}
	value := c.source.Get(point)
	c.point, c.value, c.valid = point, value, true
	return value
}

// Source returns the wrapped source.
func (c *Cache[P, S]) Source() S {
	return c.source
}

// CanSeed reports whether SetSeed and Seed are supported by the source.
func (c *Cache[P, S]) CanSeed() bool {
	return canSeed(c.source)
}

// CanFractal reports whether the fractal setters are supported by the source.
func (c *Cache[P, S]) CanFractal() bool {
	return canFractal(c.source)
}

// SetSeed returns a Cache over the reseeded source with an empty memo.
// It panics with ErrNotSeedable if the source has no seed.
func (c *Cache[P, S]) SetSeed(seed uint32) *Cache[P, S] {
	return NewCache[P](seedable(c.source).SetSeed(seed))
}

// Seed reports the seed of the source.
// It panics with ErrNotSeedable if the source has no seed.
func (c *Cache[P, S]) Seed() uint32 {
	return seedable(c.source).Seed()
}

// The fractal setters change the function the source computes, so each of
// them returns a Cache with an empty memo. They panic with ErrNotMultiFractal
// if the source has no fractal parameters.

func (c *Cache[P, S]) SetOctaves(octaves int) *Cache[P, S] {
	return NewCache[P](multiFractal(c.source).SetOctaves(octaves))
}

func (c *Cache[P, S]) SetFrequency(frequency float64) *Cache[P, S] {
	return NewCache[P](multiFractal(c.source).SetFrequency(frequency))
}

func (c *Cache[P, S]) SetLacunarity(lacunarity float64) *Cache[P, S] {
	return NewCache[P](multiFractal(c.source).SetLacunarity(lacunarity))
}

func (c *Cache[P, S]) SetPersistence(persistence float64) *Cache[P, S] {
	return NewCache[P](multiFractal(c.source).SetPersistence(persistence))
}
