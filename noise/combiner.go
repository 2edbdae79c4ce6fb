package noise

import "math"

// pair is the skeleton shared by all two-source combinators: evaluate both
// sources, Source1 first, then merge the outputs. Neither source is ever
// skipped, even when the merge could be decided from one output.
type pair[P Point, S1 NoiseFn[P], S2 NoiseFn[P]] struct {
	// Source1 outputs a value.
	Source1 S1

	// Source2 outputs a value.
	Source2 S2
}

func (p pair[P, S1, S2]) merge(point P, op func(a, b float64) float64) float64 {
	a := p.Source1.Get(point)
	b := p.Source2.Get(point)
	return op(a, b)
}

// Min outputs the smaller of the outputs of its two sources.
//
// Ordering follows math.Min: if either output is NaN the result is NaN, and
// -0 is smaller than +0.
type Min[P Point, S1 NoiseFn[P], S2 NoiseFn[P]] struct {
	pair[P, S1, S2]
}

func NewMin[P Point, S1 NoiseFn[P], S2 NoiseFn[P]](source1 S1, source2 S2) Min[P, S1, S2] {
	return Min[P, S1, S2]{pair[P, S1, S2]{Source1: source1, Source2: source2}}
}

func (m Min[P, S1, S2]) Get(point P) float64 {
	return m.merge(point, math.Min)
}

// Max outputs the larger of the outputs of its two sources.
// NaN and signed zeros follow math.Max.
type Max[P Point, S1 NoiseFn[P], S2 NoiseFn[P]] struct {
	pair[P, S1, S2]
}

func NewMax[P Point, S1 NoiseFn[P], S2 NoiseFn[P]](source1 S1, source2 S2) Max[P, S1, S2] {
	return Max[P, S1, S2]{pair[P, S1, S2]{Source1: source1, Source2: source2}}
}

func (m Max[P, S1, S2]) Get(point P) float64 {
	return m.merge(point, math.Max)
}

// Add outputs the sum of the outputs of its two sources.
type Add[P Point, S1 NoiseFn[P], S2 NoiseFn[P]] struct {
	pair[P, S1, S2]
}

func NewAdd[P Point, S1 NoiseFn[P], S2 NoiseFn[P]](source1 S1, source2 S2) Add[P, S1, S2] {
	return Add[P, S1, S2]{pair[P, S1, S2]{Source1: source1, Source2: source2}}
}

func (a Add[P, S1, S2]) Get(point P) float64 {
	return a.merge(point, func(x, y float64) float64 { return x + y })
}

// Multiply outputs the product of the outputs of its two sources.
type Multiply[P Point, S1 NoiseFn[P], S2 NoiseFn[P]] struct {
	pair[P, S1, S2]
}

func NewMultiply[P Point, S1 NoiseFn[P], S2 NoiseFn[P]](source1 S1, source2 S2) Multiply[P, S1, S2] {
	return Multiply[P, S1, S2]{pair[P, S1, S2]{Source1: source1, Source2: source2}}
}

func (m Multiply[P, S1, S2]) Get(point P) float64 {
	return m.merge(point, func(x, y float64) float64 { return x * y })
}

// Power raises the output of Source1 to the output of Source2, per math.Pow.
type Power[P Point, S1 NoiseFn[P], S2 NoiseFn[P]] struct {
	pair[P, S1, S2]
}

func NewPower[P Point, S1 NoiseFn[P], S2 NoiseFn[P]](source1 S1, source2 S2) Power[P, S1, S2] {
	return Power[P, S1, S2]{pair[P, S1, S2]{Source1: source1, Source2: source2}}
}

func (p Power[P, S1, S2]) Get(point P) float64 {
	return p.merge(point, math.Pow)
}
