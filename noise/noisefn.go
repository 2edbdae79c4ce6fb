package noise

// NoiseFn is the contract shared by every node of a noise tree.
// Get must be total and deterministic: the same point and the same
// configuration always yield the same value. NaN handling belongs to the
// concrete generator, not to the nodes that combine it.
type NoiseFn[P Point] interface {
	Get(point P) float64
}

// Func adapts a plain function to NoiseFn.
type Func[P Point] func(point P) float64

func (f Func[P]) Get(point P) float64 {
	return f(point)
}

// Constant outputs Value for every point.
type Constant[P Point] struct {
	Value float64
}

func NewConstant[P Point](value float64) Constant[P] {
	return Constant[P]{Value: value}
}

func (c Constant[P]) Get(_ P) float64 {
	return c.Value
}
