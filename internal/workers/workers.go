package workers

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type Workers struct {
	workers []Worker
}

// New groups ws into one aggregate. Nil workers are skipped.
func New(ws ...Worker) *Workers {
	agg := &Workers{}
	for _, w := range ws {
		if w != nil {
			agg.workers = append(agg.workers, w)
		}
	}
	return agg
}

// Run starts every worker concurrently and blocks until all of them have
// returned. The first error cancels the others and is returned.
func (w *Workers) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(gctx)
		})
	}
	return g.Wait()
}

// Len reports how many workers are registered.
func (w *Workers) Len() int {
	return len(w.workers)
}
