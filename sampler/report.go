package sampler

import (
	"fmt"
	"math"
	"strings"

	"github.com/on-the-ground/noisefn/noise"

	"github.com/rickb777/date/v2/timespan"
	"gopkg.in/yaml.v3"
)

// Report is the outcome of one Sample run.
type Report struct {
	RunID   string  `yaml:"run_id"`
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	Scale   float64 `yaml:"scale"`
	Workers int     `yaml:"workers"`
	Min     float64 `yaml:"min"`
	Max     float64 `yaml:"max"`

	// Digest is noise.DigestValues over the grid in row-major order, in hex.
	Digest  string `yaml:"digest"`
	Elapsed string `yaml:"elapsed"`

	Grid [][]float64       `yaml:"-"`
	Span timespan.TimeSpan `yaml:"-"`
}

func newReport(runID string, cfg Config, grid [][]float64, span timespan.TimeSpan) *Report {
	values := make([]float64, 0, cfg.Width*cfg.Height)
	for _, row := range grid {
		values = append(values, row...)
	}
	lo, hi := bounds(grid)
	return &Report{
		RunID:   runID,
		Width:   cfg.Width,
		Height:  cfg.Height,
		Scale:   cfg.Scale,
		Workers: cfg.NumWorkers,
		Min:     lo,
		Max:     hi,
		Digest:  FormatDigest(noise.DigestValues(values)),
		Elapsed: span.Duration().String(),
		Grid:    grid,
		Span:    span,
	}
}

func FormatDigest(d uint64) string {
	return fmt.Sprintf("%016x", d)
}

func (r *Report) YAML() ([]byte, error) {
	return yaml.Marshal(r)
}

const ramp = " .:-=+*#%@"

// ASCII renders the grid as a heightmap, one character per cell, scaled
// between Min and Max. NaN cells render as '?'.
func (r *Report) ASCII() string {
	var b strings.Builder
	span := r.Max - r.Min
	for _, row := range r.Grid {
		for _, v := range row {
			switch {
			case math.IsNaN(v):
				b.WriteByte('?')
			case span <= 0:
				b.WriteByte(ramp[0])
			default:
				idx := int((v - r.Min) / span * float64(len(ramp)-1))
				b.WriteByte(ramp[max(0, min(idx, len(ramp)-1))])
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
