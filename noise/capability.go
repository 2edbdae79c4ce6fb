package noise

import (
	"errors"
	"fmt"
)

// Defaults applied by generators that support the capabilities below.
const (
	DefaultSeed        uint32  = 0
	DefaultOctaves     int     = 6
	DefaultFrequency   float64 = 1.0
	DefaultLacunarity  float64 = 2.0
	DefaultPersistence float64 = 0.5

	// MaxOctaves bounds the octave count a generator accepts.
	MaxOctaves int = 32
)

var (
	// ErrNotSeedable is raised when a decorator is reseeded but its source cannot be.
	ErrNotSeedable = errors.New("source is not seedable")

	// ErrNotMultiFractal is raised when a fractal parameter is forwarded to a source
	// that has none.
	ErrNotMultiFractal = errors.New("source is not multi-fractal")
)

// Seedable is implemented by sources parameterized by a 32-bit seed.
// SetSeed returns a reseeded value and leaves the receiver untouched.
type Seedable[S any] interface {
	SetSeed(seed uint32) S
	Seed() uint32
}

// MultiFractal is implemented by sources built from several octaves.
// Each setter returns a reconfigured value and leaves the receiver untouched.
type MultiFractal[S any] interface {
	SetOctaves(octaves int) S
	SetFrequency(frequency float64) S
	SetLacunarity(lacunarity float64) S
	SetPersistence(persistence float64) S
}

// NewSeeded constructs a fresh S for seed by reseeding its zero value.
// The zero value of S must therefore be a valid SetSeed receiver.
func NewSeeded[S Seedable[S]](seed uint32) S {
	var zero S
	return zero.SetSeed(seed)
}

// ClampOctaves bounds octaves to [1, MaxOctaves].
func ClampOctaves(octaves int) int {
	return max(1, min(octaves, MaxOctaves))
}

// Go cannot attach methods to a decorator only when its type argument has
// them, so decorators assert the capability on the source and panic when it
// is missing. Calling them on the wrong source is a programming error.

func seedable[S any](source S) Seedable[S] {
	s, ok := any(source).(Seedable[S])
	if !ok {
		panic(fmt.Errorf("%w: %T", ErrNotSeedable, source))
	}
	return s
}

func multiFractal[S any](source S) MultiFractal[S] {
	f, ok := any(source).(MultiFractal[S])
	if !ok {
		panic(fmt.Errorf("%w: %T", ErrNotMultiFractal, source))
	}
	return f
}

func canSeed[S any](source S) bool {
	_, ok := any(source).(Seedable[S])
	return ok
}

func canFractal[S any](source S) bool {
	_, ok := any(source).(MultiFractal[S])
	return ok
}
