package noise

// Point is the closed set of coordinate arrays a tree can be evaluated at.
// The dimension is part of the type, so all nodes of one tree agree on it.
type Point interface {
	~[1]float64 | ~[2]float64 | ~[3]float64 | ~[4]float64
}

type (
	Point1 = [1]float64
	Point2 = [2]float64
	Point3 = [3]float64
	Point4 = [4]float64
)

// Coordinates copies the components of point into a new slice.
func Coordinates[P Point](point P) []float64 {
	coords := make([]float64, len(point))
	for i := range coords {
		coords[i] = point[i]
	}
	return coords
}
