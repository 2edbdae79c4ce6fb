package noise

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Digest evaluates fn at each point in order and hashes the IEEE bits of the
// outputs. Two trees with the same structure, seeds and parameters produce the
// same digest for the same points.
func Digest[P Point](fn NoiseFn[P], points []P) uint64 {
	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = fn.Get(p)
	}
	return DigestValues(values)
}

// DigestValues hashes the IEEE bits of values in order.
func DigestValues(values []float64) uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, v := range values {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}
