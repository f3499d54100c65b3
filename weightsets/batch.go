// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package weightsets

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// MapAll calls fn for each of the independent sets concurrently, and returns the results in the same
// order.
//
// If any call fails, or ctx is cancelled, it returns the first error and no results. Calls not yet
// started when that happens are skipped.
func MapAll(ctx context.Context, sets []*WeightSet, fn func(ws *WeightSet) (*WeightSet, error)) ([]*WeightSet, error) {
	results := make([]*WeightSet, len(sets))
	g, gCtx := errgroup.WithContext(ctx)
	limit := getEngine().config.MaxParallelism
	if limit == 0 {
		limit = 1 // Sequential.
	}
	g.SetLimit(limit) // Negative means no limit.
	for ii, ws := range sets {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			result, err := fn(ws)
			if err != nil {
				return errors.WithMessagef(err, "MapAll: set #%d", ii)
			}
			results[ii] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
