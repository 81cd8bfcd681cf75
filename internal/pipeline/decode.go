// Package pipeline wires together the four read-side stages: framing
// (internal/core), parallel record decoding, single-threaded structural
// parsing into cells and elements, and reference resolution against the
// library's cell arena (internal/graph).
package pipeline

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/layoutkit/gdsii/internal/core"
)

// DefaultWorkers is the decode stage's default worker count: the number
// of logical CPUs reported by runtime.NumCPU. This counts hardware
// threads, not physical cores.
func DefaultWorkers() int {
	return runtime.NumCPU()
}

// Decode turns buf into an ordered slice of typed records. Frame decoding
// is embarrassingly parallel: each frame is interpreted independently,
// so workers write into a pre-assigned slot and no lock is needed beyond
// the errgroup's own bookkeeping. workers <= 0 means DefaultWorkers().
func Decode(buf []byte, workers int) ([]core.Record, error) {
	frames, err := core.FrameAll(buf)
	if err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = DefaultWorkers()
	}

	records := make([]core.Record, len(frames))
	g := new(errgroup.Group)
	g.SetLimit(workers)

	for i, f := range frames {
		i, f := i, f
		g.Go(func() error {
			rec, err := core.DecodeRecord(f)
			if err != nil {
				return err
			}
			records[i] = rec
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}
