// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package weightsets

import (
	"math"

	"github.com/pkg/errors"
)

// Curve is a function y = f(x) defined over the domain returned by Range.
//
// See package curves for implementations.
type Curve interface {
	// Range returns the start and end of the curve's domain.
	Range() (start, end float32)

	// Evaluate returns the value of the curve at x.
	Evaluate(x float32) float32
}

// ConcurrentCurve is a Curve whose Evaluate can be called from several goroutines at once.
//
// RemapToCurve only splits large sets across goroutines for curves that implement it and return true
// in IsConcurrent. Other curves are evaluated sequentially, from the calling goroutine.
type ConcurrentCurve interface {
	Curve
	IsConcurrent() bool
}

// RemapToRange linearly rescales the weights so the smallest becomes lo and the largest becomes hi.
//
// NaN weights don't take part in finding the smallest and largest weights, and stay NaN. If all weights
// are equal, every weight becomes lo. It fails with ErrEmptyInput on an empty set,
// since there is no minimum or maximum.
func RemapToRange(value *WeightSet, lo, hi float32) (*WeightSet, error) {
	const op = "RemapToRange"
	if err := requirePresent(op, value); err != nil {
		return nil, err
	}
	if value.Size() == 0 {
		return nil, fail(op, errors.WithStack(ErrEmptyInput))
	}
	curMin, curMax := minMax(value.weights)
	if curMin == curMax {
		return mapUnary(value, func(out, _ []float32) {
			for ii := range out {
				out[ii] = lo
			}
		}), nil
	}
	scale := (hi - lo) / (curMax - curMin)
	return mapUnary(value, func(out, in []float32) {
		for ii, x := range in {
			out[ii] = (x-curMin)*scale + lo
		}
	}), nil
}

// RemapToCurve maps every weight through curve: weight 0 reads the curve at 0 and weight 1 reads
// it at the end of its domain, that is result = curve.Evaluate(weight * end).
//
// The start of the curve's domain is not used for the scaling. Evaluate is only called concurrently if
// curve is a ConcurrentCurve.
func RemapToCurve(value *WeightSet, curve Curve) (*WeightSet, error) {
	const op = "RemapToCurve"
	if err := requirePresent(op, value); err != nil {
		return nil, err
	}
	if curve == nil {
		return nil, fail(op, errors.Wrap(ErrMissingOperand, "no Curve provided"))
	}
	_, end := curve.Range()
	kernel := func(out, in []float32) {
		for ii, x := range in {
			out[ii] = curve.Evaluate(x * end)
		}
	}
	if concurrent, ok := curve.(ConcurrentCurve); ok && concurrent.IsConcurrent() {
		return mapUnary(value, kernel), nil
	}
	result := newZeroed(value.Size())
	kernel(result.weights, value.weights)
	return result, nil
}

// RemapRipple creates a repeating pattern: each weight is scaled by numRipples and only its
// fractional part is kept (a sawtooth). If upAndDown is set, the odd bands are reversed so the
// pattern goes up and down (a triangle wave).
//
// The fractional part follows math.Mod, so it is negative for negative scaled weights, and
// negative bands are never taken as odd.
func RemapRipple(value *WeightSet, numRipples int, upAndDown bool) (*WeightSet, error) {
	if err := requirePresent("RemapRipple", value); err != nil {
		return nil, err
	}
	ripples := float32(numRipples)
	return mapUnary(value, func(out, in []float32) {
		for ii, x := range in {
			out[ii] = ripple(x*ripples, upAndDown)
		}
	}), nil
}

// ripple returns the sawtooth (or triangle, if upAndDown) value for the already scaled weight.
func ripple(scaled float32, upAndDown bool) float32 {
	frac := float32(math.Mod(float64(scaled), 1))
	band := int64(math.Floor(float64(scaled)))
	if upAndDown && band%2 == 1 {
		return 1 - frac
	}
	return frac
}
