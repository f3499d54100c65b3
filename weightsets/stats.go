// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package weightsets

import (
	"math"

	"github.com/pkg/errors"
)

// minMax scans weights once, skipping NaNs. Both are NaN if all weights are NaN.
func minMax(weights []float32) (lo, hi float32) {
	lo, hi = float32(math.NaN()), float32(math.NaN())
	found := false
	for _, x := range weights {
		if math.IsNaN(float64(x)) {
			continue
		}
		if !found {
			lo, hi, found = x, x, true
			continue
		}
		lo = min(lo, x)
		hi = max(hi, x)
	}
	return
}

// Range returns the smallest and the largest weight, NaN weights are ignored. It fails with ErrEmptyInput on an empty set.
func Range(value *WeightSet) (lo, hi float32, err error) {
	const op = "Range"
	if err = requirePresent(op, value); err != nil {
		return
	}
	if value.Size() == 0 {
		err = fail(op, errors.WithStack(ErrEmptyInput))
		return
	}
	lo, hi = minMax(value.weights)
	return
}

// Sum returns the sum of the weights, accumulated in float64. The sum of an empty set is 0.
func Sum(value *WeightSet) (float64, error) {
	if err := requirePresent("Sum", value); err != nil {
		return 0, err
	}
	var sum float64
	for _, x := range value.weights {
		sum += float64(x)
	}
	return sum, nil
}

// Mean returns the average weight. It fails with ErrEmptyInput on an empty set.
func Mean(value *WeightSet) (float64, error) {
	const op = "Mean"
	if err := requirePresent(op, value); err != nil {
		return 0, err
	}
	if value.Size() == 0 {
		return 0, fail(op, errors.WithStack(ErrEmptyInput))
	}
	sum, _ := Sum(value)
	return sum / float64(value.Size()), nil
}
