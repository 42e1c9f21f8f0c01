package solarglide

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// EvaluateAll computes a Report for every observation concurrently, using at
// most workers goroutines (runtime.NumCPU() when workers <= 0). Results keep
// the order of obs.
//
// Observations share no state, so the only failure is ctx being cancelled,
// in which case the context's error is returned.
func EvaluateAll(ctx context.Context, obs []Observation, workers int) ([]Report, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	reports := make([]Report, len(obs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range obs {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			reports[i] = obs[i].Report()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return reports, nil
}
