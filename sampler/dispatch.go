package sampler

import (
	"context"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

type partitionable interface {
	PartitionKey() string
}

// rowJob asks a worker to fill row y of the grid.
type rowJob struct {
	y int
}

func (j rowJob) PartitionKey() string {
	return "row-" + strconv.Itoa(j.y)
}

func getIndexByHash(job partitionable, numChs int) int {
	switch numChs {
	case 0:
		panic("number of channels cannot be 0")
	case 1:
		return 0
	default:
		return int(xxhash.Sum64String(job.PartitionKey()) % uint64(numChs))
	}
}

// partitionedQueue holds one channel per worker; a job always lands on the
// channel its partition key hashes to.
type partitionedQueue[T partitionable] struct {
	chs []chan T
}

func newPartitionedQueue[T partitionable](numWorkers, bufferSize int) partitionedQueue[T] {
	chs := make([]chan T, numWorkers)
	for i := range chs {
		chs[i] = make(chan T, bufferSize)
	}
	return partitionedQueue[T]{chs: chs}
}

func (q partitionedQueue[T]) channelOf(job T) chan T {
	return q.chs[getIndexByHash(job, len(q.chs))]
}

// dispatch sends every job to its channel and closes all channels when done
// or when ctx is canceled.
func (q partitionedQueue[T]) dispatch(ctx context.Context, jobs []T) error {
	defer func() {
		for _, ch := range q.chs {
			close(ch)
		}
	}()
	for _, job := range jobs {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case q.channelOf(job) <- job:
		}
	}
	return nil
}
