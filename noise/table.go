package noise

import "github.com/on-the-ground/noisefn/memo"

// Table remembers the outputs of its source for up to roughly twice size
// recently stored points (two generations of size entries each).
//
// Unlike Cache it is safe for concurrent use, but the source is then
// evaluated concurrently on misses and must tolerate that. NaN coordinates
// never hit.
type Table[P Point, S NoiseFn[P]] struct {
	source S
	size   uint32
	memo   *memo.Trie[float64, float64]
}

// NewTable panics if size is zero.
func NewTable[P Point, S NoiseFn[P]](source S, size uint32) *Table[P, S] {
	return &Table[P, S]{
		source: source,
		size:   size,
		memo:   memo.NewTrie[float64, float64](size),
	}
}

func (t *Table[P, S]) Get(point P) float64 {
	keys := Coordinates(point)
	if v, ok := t.memo.Load(keys); ok {
		return v
	}
	v := t.source.Get(point)
	t.memo.Store(keys, v)
	return v
}

func (t *Table[P, S]) Source() S {
	return t.source
}

func (t *Table[P, S]) Size() uint32 {
	return t.size
}

// SetSeed and the fractal setters return a Table with an empty memo, like Cache.

func (t *Table[P, S]) SetSeed(seed uint32) *Table[P, S] {
	return NewTable[P](seedable(t.source).SetSeed(seed), t.size)
}

func (t *Table[P, S]) Seed() uint32 {
	return seedable(t.source).Seed()
}

func (t *Table[P, S]) SetOctaves(octaves int) *Table[P, S] {
	return NewTable[P](multiFractal(t.source).SetOctaves(octaves), t.size)
}

func (t *Table[P, S]) SetFrequency(frequency float64) *Table[P, S] {
	return NewTable[P](multiFractal(t.source).SetFrequency(frequency), t.size)
}

func (t *Table[P, S]) SetLacunarity(lacunarity float64) *Table[P, S] {
	return NewTable[P](multiFractal(t.source).SetLacunarity(lacunarity), t.size)
}

func (t *Table[P, S]) SetPersistence(persistence float64) *Table[P, S] {
	return NewTable[P](multiFractal(t.source).SetPersistence(persistence), t.size)
}
