// Package sampler evaluates a 2D noise tree over a grid with a pool of workers.
//
// A Cache is not safe for concurrent use, so the sampler never shares a tree:
// every worker calls the Builder once and evaluates only its own tree. Rows are
// partitioned across workers by hashing the row key.
package sampler

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/on-the-ground/noisefn/noise"

	"github.com/google/uuid"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Builder returns a freshly built tree. It is called once per worker, possibly
// concurrently, and must not return trees that share mutable nodes.
type Builder func() noise.NoiseFn[noise.Point2]

// Sample evaluates the tree returned by build at every cell of the grid.
// A nil logger disables logging.
func Sample(
	ctx context.Context,
	cfg Config,
	build Builder,
	logger *zap.Logger,
) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	runID := uuid.New().String()
	logger = logger.With(zap.String("run_id", runID))
	start := time.Now()
	logger.Info("sampling started",
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Float64("scale", cfg.Scale),
		zap.Int("workers", cfg.NumWorkers),
	)

	jobs := make([]rowJob, cfg.Height)
	for y := range jobs {
		jobs[y] = rowJob{y: y}
	}
	grid := make([][]float64, cfg.Height)
	queue := newPartitionedQueue[rowJob](cfg.NumWorkers, cfg.BufferSize)

	g, gctx := errgroup.WithContext(ctx)
	for w, ch := range queue.chs {
		w, ch := w, ch
		g.Go(func() error {
			tree := build()
			rows := 0
			for job := range ch {
				if err := gctx.Err(); err != nil {
					return err
				}
				grid[job.y] = sampleRow(tree, cfg, job.y)
				rows++
			}
			logger.Debug("worker finished", zap.Int("worker", w), zap.Int("rows", rows))
			return nil
		})
	}
	g.Go(func() error {
		return queue.dispatch(gctx, jobs)
	})
	if err := g.Wait(); err != nil {
		logger.Warn("sampling aborted", zap.Error(err))
		return nil, fmt.Errorf("sample grid: %w", err)
	}

	report := newReport(runID, cfg, grid, timespan.BetweenTimes(start, time.Now()))
	logger.Info("sampling finished",
		zap.String("digest", report.Digest),
		zap.Float64("min", report.Min),
		zap.Float64("max", report.Max),
		zap.Duration("span", report.Span.Duration()),
	)
	return report, nil
}

// Points returns the grid's sample points in row-major order.
func Points(cfg Config) []noise.Point2 {
	points := make([]noise.Point2, 0, cfg.Width*cfg.Height)
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			points = append(points, pointAt(cfg, x, y))
		}
	}
	return points
}

func pointAt(cfg Config, x, y int) noise.Point2 {
	return noise.Point2{float64(x) * cfg.Scale, float64(y) * cfg.Scale}
}

func sampleRow(tree noise.NoiseFn[noise.Point2], cfg Config, y int) []float64 {
	row := make([]float64, cfg.Width)
	for x := range row {
		row[x] = tree.Get(pointAt(cfg, x, y))
	}
	return row
}

// bounds skips NaN cells. A grid with no other cells reports NaN for both.
func bounds(grid [][]float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	seen := false
	for _, row := range grid {
		for _, v := range row {
			if math.IsNaN(v) {
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
			seen = true
		}
	}
	if !seen {
		return math.NaN(), math.NaN()
	}
	return lo, hi
}
