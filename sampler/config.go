package sampler

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is returned by Sample when the grid cannot be sampled.
var ErrInvalidConfig = errors.New("invalid sampler config")

// Config describes a Width x Height grid. Cell (x, y) is sampled at the point
// (x*Scale, y*Scale).
type Config struct {
	Width  int
	Height int
	Scale  float64

	NumWorkers int // default: 1
	BufferSize int // default: 1, per worker
}

func NewConfig(width, height int, scale float64, numWorkers int) Config {
	if numWorkers <= 0 {
		numWorkers = 1
	}
	return Config{
		Width:      width,
		Height:     height,
		Scale:      scale,
		NumWorkers: numWorkers,
		BufferSize: 1,
	}
}

func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.Scale <= 0 || math.IsNaN(c.Scale) || math.IsInf(c.Scale, 0):
		return fmt.Errorf("%w: scale %v", ErrInvalidConfig, c.Scale)
	case c.NumWorkers <= 0:
		return fmt.Errorf("%w: %d workers", ErrInvalidConfig, c.NumWorkers)
	case c.BufferSize < 0:
		return fmt.Errorf("%w: buffer size %d", ErrInvalidConfig, c.BufferSize)
	}
	return nil
}
