package workers

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type Workers struct {
	workers []Worker
}

func New(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts all workers and waits for them. The first worker to return
// cancels the context of the others. The first error is returned.
func (w *Workers) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		worker := worker
		g.Go(func() error {
			defer cancel()
			return worker.Run(gctx)
		})
	}

	return g.Wait()
}
